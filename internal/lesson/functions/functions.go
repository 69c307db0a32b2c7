// Package functions demonstrates function definitions, parameters, return values,
// multiple results, early return and higher-order functions.
package functions

import (
	"fmt"
	"io"

	"basics/cli/internal/display"
	apperrors "basics/cli/internal/errors"
	"basics/cli/internal/lesson"
)

// BinaryOp is an integer function of two arguments.
type BinaryOp func(a, b int32) int32

// SayHello writes a fixed greeting.
func SayHello(w io.Writer) {
	fmt.Fprintln(w, "Hello, Rust world!")
}

// Greet writes a greeting for name.
func Greet(w io.Writer, name string) {
	fmt.Fprintf(w, "Hello, %s!\n", name)
}

func Add(a, b int32) int32 {
	return a + b
}

func RectangleArea(width, height float64) float64 {
	return width * height
}

// DivideAndRemainder returns the truncated quotient and remainder.
// A zero divisor is reported as a DivisionByZero error.
func DivideAndRemainder(dividend, divisor int32) (int32, int32, error) {
	if divisor == 0 {
		return 0, 0, apperrors.New(apperrors.DivisionByZero, fmt.Sprintf("divide %d by zero", dividend))
	}
	return dividend / divisor, dividend % divisor, nil
}

func IsEven(num int32) bool {
	if num%2 == 0 {
		return true
	}
	return false
}

// ExplicitNoReturn has no result values.
func ExplicitNoReturn(w io.Writer) {
	fmt.Fprintln(w, "This function returns unit")
}

// ApplyFn calls f with a and b.
func ApplyFn(f BinaryOp, a, b int32) int32 {
	return f(a, b)
}

// CreateMultiplier returns a closure that multiplies its argument by factor.
func CreateMultiplier(factor int32) func(int32) int32 {
	return func(x int32) int32 {
		return x * factor
	}
}

// Lesson returns the functions lesson.
func Lesson() lesson.Lesson {
	return lesson.Lesson{
		Name:    "functions",
		Title:   "Functions",
		Summary: "parameters, return values, multiple results and closures",
		Run:     run,
	}
}

func run() []lesson.Step {
	var r lesson.Recorder
	w := &r

	r.Topic("Function without parameters")
	SayHello(w)

	r.Topic("Function with a parameter")
	Greet(w, "Alice")

	r.Topic("Return value")
	sum := Add(2, 3)
	r.Printf("Sum: %d", sum)

	area := RectangleArea(2.5, 3.5)
	r.Printf("Area: %s", display.Float(area))

	r.Topic("Multiple return values")
	quotient, remainder, err := DivideAndRemainder(10, 3)
	if err != nil {
		r.Printf("Error: %v", err)
	} else {
		r.Printf("Quotient: %d, Remainder: %d", quotient, remainder)
	}

	r.Topic("Early return")
	isEvenNumber := IsEven(5)
	r.Printf("Is 5 even? %s", display.Bool(isEvenNumber))

	r.Topic("No return value")
	ExplicitNoReturn(w)

	r.Topic("Function as argument")
	result := ApplyFn(Add, 2, 3)
	r.Printf("Result: %d", result)

	r.Topic("Closure")
	double := CreateMultiplier(2)
	triple := CreateMultiplier(3)
	r.Printf("Double: %d", double(5))
	r.Printf("Triple: %d", triple(5))

	return r.Steps()
}
