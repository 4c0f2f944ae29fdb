// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package dispatch

// ExecutionContext carries the state needed to resolve one parameter of a
// command invocation: the command being executed, the parameter under
// resolution, the raw argument list, the position of the next unconsumed
// argument, and the values resolved so far.
type ExecutionContext struct {
	Command    *RegisteredCommand
	Parameter  *CommandParameter
	Issuer     CommandIssuer
	Args       []string
	Index      int
	PassedArgs map[string]any
}

// Pop consumes and returns the next unconsumed argument. It returns false
// when no arguments remain.
func (e *ExecutionContext) Pop() (string, bool) {
	if e.Index >= len(e.Args) {
		return "", false
	}

	arg := e.Args[e.Index]
	e.Index++

	return arg, true
}

// OperationContext describes one in-flight command invocation.
type OperationContext struct {
	Command *BaseCommand
	Issuer  CommandIssuer
	Label   string
	Args    []string
	Async   bool
}

// CompletionContext carries the state needed to resolve tab-completion
// suggestions for a partially typed argument.
type CompletionContext struct {
	Command *RegisteredCommand
	Issuer  CommandIssuer
	Input   string
	Config  string
	Args    []string
}

// ConditionContext carries the state needed to evaluate a command
// precondition.
type ConditionContext struct {
	Issuer CommandIssuer
	Config string
}
