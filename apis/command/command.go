/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package command defines the small control-command sum type that rides
// alongside every record flowing through the pipeline.
package command

import "dirpx.dev/logflow/internal/barrier"

// Kind identifies which of the three record commands a Command carries.
type Kind uint8

const (
	// Emit is an ordinary log record to be formatted and fanned out.
	Emit Kind = iota

	// Exit is the poison pill: once observed, a worker finishes the
	// batch it is in and stops.
	Exit

	// Flush asks every stage to drain everything queued ahead of it
	// before letting the attached token's reference go.
	Flush
)

// Command is attached to every record as it moves through the
// pipeline. Only Flush carries a payload.
type Command struct {
	Kind  Kind
	Token *barrier.Token // non-nil only when Kind == Flush
}

// NewEmit returns the command for an ordinary record.
func NewEmit() Command { return Command{Kind: Emit} }

// NewExit returns the poison-pill command.
func NewExit() Command { return Command{Kind: Exit} }

// NewFlush returns a Flush command carrying tok. Callers are expected
// to have already accounted for their own reference to tok; this
// function does not clone it.
func NewFlush(tok *barrier.Token) Command { return Command{Kind: Flush, Token: tok} }
