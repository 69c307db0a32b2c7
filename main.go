// Copyright (c) 2025 The basics Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package main is the entry point for the basics CLI application.
// It runs short lessons on variables and functions.
package main

import (
	"basics/cli/cmd"
)

// main is the entry point for the basics CLI application.
// It initializes and executes the command-line interface.
func main() {
	cmd.Execute()
}
