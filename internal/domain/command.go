package domain

import "strings"

// ExecCommand represents an external command to be executed.
// This type is used to pass command information between layers
// without exposing implementation details.
type ExecCommand struct {
	Program string
	Dir     string
	Args    []string
}

// String returns the command as a single shell-style line.
// Used for the "Running: <command>" banner.
func (c ExecCommand) String() string {
	return strings.Join(append([]string{c.Program}, c.Args...), " ")
}
