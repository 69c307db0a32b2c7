// Package catalog assembles the built-in lessons.
package catalog

import (
	"basics/cli/internal/lesson"
	"basics/cli/internal/lesson/functions"
	"basics/cli/internal/lesson/variables"
)

// Default returns a registry holding every built-in lesson in teaching order.
func Default() *lesson.Registry {
	reg := lesson.NewRegistry()
	reg.Register(variables.Lesson())
	reg.Register(functions.Lesson())
	return reg
}
