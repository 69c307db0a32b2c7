// Package lesson defines the unit of teaching material the CLI runs.
// A lesson is a named, deterministic routine that produces a flat sequence of
// output lines, each tagged with the language feature it demonstrates.
package lesson

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	apperrors "basics/cli/internal/errors"
)

// Step is a single printed line and the topic it illustrates.
type Step struct {
	Topic string `json:"topic"`
	Line  string `json:"line"`
}

// Lesson is a named demonstration.
type Lesson struct {
	Name    string
	Title   string
	Summary string
	Run     func() []Step
}

// Lines runs the lesson and returns only its output text.
func (l Lesson) Lines() []string {
	steps := l.Run()
	out := make([]string, len(steps))
	for i, s := range steps {
		out[i] = s.Line
	}
	return out
}

// Recorder collects steps under the current topic. It is also an io.Writer:
// each newline-terminated chunk written to it becomes one step.
type Recorder struct {
	topic   string
	steps   []Step
	partial []byte
}

// Write splits p into lines. A trailing fragment without a newline is held
// until the next Write or Steps call.
func (r *Recorder) Write(p []byte) (int, error) {
	r.partial = append(r.partial, p...)
	for {
		i := bytes.IndexByte(r.partial, '\n')
		if i < 0 {
			break
		}
		r.steps = append(r.steps, Step{Topic: r.topic, Line: string(r.partial[:i])})
		r.partial = r.partial[i+1:]
	}
	return len(p), nil
}

// Topic switches the topic attached to subsequent lines.
func (r *Recorder) Topic(name string) { r.topic = name }

// Printf records one formatted line.
func (r *Recorder) Printf(format string, args ...any) {
	r.flush()
	r.steps = append(r.steps, Step{Topic: r.topic, Line: fmt.Sprintf(format, args...)})
}

func (r *Recorder) flush() {
	if len(r.partial) > 0 {
		r.steps = append(r.steps, Step{Topic: r.topic, Line: string(r.partial)})
		r.partial = nil
	}
}

// Steps flushes any pending fragment and returns everything recorded so far.
func (r *Recorder) Steps() []Step {
	r.flush()
	return r.steps
}

// Registry holds lessons in registration order.
type Registry struct {
	order  []string
	byName map[string]Lesson
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Lesson)}
}

// Register adds l. Registering a name twice replaces the lesson in place.
func (r *Registry) Register(l Lesson) {
	key := strings.ToLower(l.Name)
	if _, ok := r.byName[key]; !ok {
		r.order = append(r.order, key)
	}
	r.byName[key] = l
}

// Lookup finds a lesson by case-insensitive name.
func (r *Registry) Lookup(name string) (Lesson, error) {
	l, ok := r.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Lesson{}, apperrors.New(apperrors.UnknownLesson,
			fmt.Sprintf("no lesson named %q (available: %s)", name, strings.Join(r.sortedNames(), ", ")))
	}
	return l, nil
}

// Resolve looks up each name in turn. With no names it returns every lesson.
func (r *Registry) Resolve(names []string) ([]Lesson, error) {
	if len(names) == 0 {
		return r.All(), nil
	}
	out := make([]Lesson, 0, len(names))
	for _, n := range names {
		l, err := r.Lookup(n)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, nil
}

// All returns lessons in registration order.
func (r *Registry) All() []Lesson {
	out := make([]Lesson, 0, len(r.order))
	for _, k := range r.order {
		out = append(out, r.byName[k])
	}
	return out
}

// Names returns lesson names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

func (r *Registry) sortedNames() []string {
	names := r.Names()
	sort.Strings(names)
	return names
}
