// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package dispatch

// MessageType categorises a message sent to a command issuer. Each type is
// mapped by the platform adapter to a distinct text styling configuration.
type MessageType int

const (
	// MessageError is used for command failures.
	MessageError MessageType = iota
	// MessageSyntax is used for usage and syntax errors.
	MessageSyntax
	// MessageInfo is used for informational output.
	MessageInfo
	// MessageHelp is used for help listings.
	MessageHelp
)

// String implements the Stringer interface for MessageType.
func (mt MessageType) String() string {
	switch mt {
	case MessageError:
		return "error"
	case MessageSyntax:
		return "syntax"
	case MessageInfo:
		return "info"
	case MessageHelp:
		return "help"
	default:
		return "unknown"
	}
}

// LogLevel is the severity of a framework log line. Only LogInfo and
// LogError are recognised by adapters; any other value produces no output.
type LogLevel int

const (
	// LogInfo is the informational severity.
	LogInfo LogLevel = iota
	// LogError is the error severity.
	LogError
)

// LogPrefix is prepended to every log line written through Manager.Log.
const LogPrefix = "[commands] "
