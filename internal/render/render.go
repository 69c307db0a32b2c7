// Package render writes lesson output in one of the supported formats.
//
// The text format is the canonical surface: exactly the lines a lesson prints,
// one per line, with nothing added. The pretty format decorates the same lines
// with pterm section headers and topic labels, and the json format emits a
// single machine-readable document once all lessons have run.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	apperrors "basics/cli/internal/errors"
	"basics/cli/internal/lesson"

	"github.com/pterm/pterm"
)

// Format names an output format.
type Format string

const (
	FormatText   Format = "text"
	FormatPretty Format = "pretty"
	FormatJSON   Format = "json"
)

// Formats lists the supported formats.
func Formats() []Format { return []Format{FormatText, FormatPretty, FormatJSON} }

// ParseFormat validates s as a format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}
	return "", apperrors.New(apperrors.UnknownFormat,
		fmt.Sprintf("unsupported format %q (use text, pretty or json)", s))
}

// Renderer receives lessons one at a time.
type Renderer interface {
	// Lesson writes one lesson's steps.
	Lesson(l lesson.Lesson, steps []lesson.Step) error
	// Close flushes anything still buffered.
	Close() error
	// Streaming reports whether output appears as each lesson is rendered.
	Streaming() bool
}

// New returns a renderer for f writing to w.
func New(f Format, w io.Writer) (Renderer, error) {
	switch f {
	case FormatText, "":
		return &textRenderer{w: w}, nil
	case FormatPretty:
		return &prettyRenderer{w: w}, nil
	case FormatJSON:
		return &jsonRenderer{w: w}, nil
	}
	return nil, apperrors.New(apperrors.UnknownFormat, fmt.Sprintf("unsupported format %q", f))
}

type textRenderer struct {
	w io.Writer
}

func (r *textRenderer) Lesson(_ lesson.Lesson, steps []lesson.Step) error {
	for _, s := range steps {
		if _, err := fmt.Fprintln(r.w, s.Line); err != nil {
			return apperrors.Wrap(apperrors.RenderFailed, "write line", err)
		}
	}
	return nil
}

func (r *textRenderer) Close() error    { return nil }
func (r *textRenderer) Streaming() bool { return true }

type prettyRenderer struct {
	w io.Writer
}

func (r *prettyRenderer) Lesson(l lesson.Lesson, steps []lesson.Step) error {
	var b strings.Builder
	b.WriteString(pterm.DefaultSection.Sprint(l.Title))
	if l.Summary != "" {
		b.WriteString(pterm.NewStyle(pterm.FgGray).Sprint(l.Summary))
		b.WriteString("\n\n")
	}
	topic := ""
	for i, s := range steps {
		if s.Topic != topic || i == 0 {
			topic = s.Topic
			b.WriteString(pterm.NewStyle(pterm.FgLightCyan, pterm.Bold).Sprint(topic))
			b.WriteString("\n")
		}
		b.WriteString("  ")
		b.WriteString(s.Line)
		b.WriteString("\n")
	}
	if _, err := io.WriteString(r.w, b.String()); err != nil {
		return apperrors.Wrap(apperrors.RenderFailed, "write lesson "+l.Name, err)
	}
	return nil
}

func (r *prettyRenderer) Close() error    { return nil }
func (r *prettyRenderer) Streaming() bool { return true }

// Document is the json format's top-level value.
type Document struct {
	Lessons []LessonDoc `json:"lessons"`
}

// LessonDoc is one lesson inside a Document.
type LessonDoc struct {
	Name  string        `json:"name"`
	Title string        `json:"title"`
	Steps []lesson.Step `json:"steps"`
}

type jsonRenderer struct {
	w   io.Writer
	doc Document
}

func (r *jsonRenderer) Lesson(l lesson.Lesson, steps []lesson.Step) error {
	if steps == nil {
		steps = []lesson.Step{}
	}
	r.doc.Lessons = append(r.doc.Lessons, LessonDoc{Name: l.Name, Title: l.Title, Steps: steps})
	return nil
}

func (r *jsonRenderer) Close() error {
	if r.doc.Lessons == nil {
		r.doc.Lessons = []LessonDoc{}
	}
	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r.doc); err != nil {
		return apperrors.Wrap(apperrors.RenderFailed, "encode json", err)
	}
	return nil
}

func (r *jsonRenderer) Streaming() bool { return false }
