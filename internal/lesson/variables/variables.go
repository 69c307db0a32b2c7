// Package variables demonstrates declaration, mutability, shadowing, constants,
// block scope, type inference and the basic value types.
package variables

import (
	"strconv"

	"basics/cli/internal/display"
	"basics/cli/internal/lesson"
)

// maxPoints is a typed constant.
const maxPoints uint32 = 100_000

// Lesson returns the variables lesson.
func Lesson() lesson.Lesson {
	return lesson.Lesson{
		Name:    "variables",
		Title:   "Variables",
		Summary: "mutability, shadowing, constants, scope and basic types",
		Run:     run,
	}
}

func run() []lesson.Step {
	var r lesson.Recorder

	r.Topic("Immutable variable")
	const x = 5
	r.Printf("The value of x is: %d", x)

	r.Topic("Mutable variable")
	y := 10
	r.Printf("The value of y is: %d", y)
	y += 5
	r.Printf("The new value of y is: %d", y)

	r.Topic("Shadowing")
	z := 20
	{
		z := z + 10
		r.Printf("The value of z is: %d", z)
	}

	r.Topic("Constants")
	r.Printf("The maximum points are: %d", maxPoints)

	r.Topic("Scope")
	{
		a := 30
		r.Printf("The value of a is: %d", a)
	}
	// r.Printf("The value of a is: %d", a) // undefined: a
	// var small uint8 = 256 // constant 256 overflows uint8

	r.Topic("Type inference")
	b := 3.14 // float64
	r.Printf("The value of b is: %s", display.Float(b))

	r.Topic("Explicit type annotation")
	var c int32 = 42
	r.Printf("The value of c is: %d", c)

	r.Topic("Strings")
	stringVar := []byte("Hello, Rust!") // owned, mutable buffer
	strVar := "Hello, World!"           // immutable string
	r.Printf("String variable: %s", stringVar)
	r.Printf("String slice variable: %s", strVar)

	r.Topic("Boolean")
	isRustFun := true
	r.Printf("Is Rust fun? %s", display.Bool(isRustFun))

	r.Topic("Character")
	var charVar rune = 'R'
	r.Printf("Character variable: %s", display.Char(charVar))

	r.Topic("Array")
	arr := [5]int{1, 2, 3, 4, 5}
	r.Printf("Array variable: %s", display.Ints(arr[:]))

	r.Topic("Tuple")
	tuple := struct {
		n int32
		f float64
		c rune
	}{42, 3.14, 'R'}
	r.Printf("Tuple variable: %s", display.Tuple(
		strconv.Itoa(int(tuple.n)),
		display.DebugFloat(tuple.f),
		display.DebugChar(tuple.c),
	))

	return r.Steps()
}
