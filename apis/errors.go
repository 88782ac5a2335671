/*
   Copyright 2025 The errata Authors

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

package apis

import "github.com/shukitchan/errata/severity"

// LeveledError represents an error that carries an aggregate severity.
//
// The severity answers the question "how bad is this?" on the ordered errata
// scale. It is the primary value the transport adapters use to decide which
// status code to return to the client.
//
// Implementations are expected to return a defined level from the
// errata/severity package; adapters should treat out-of-range values as the
// most severe case they know how to express.
type LeveledError interface {
	error

	// ErrorSeverity returns the aggregate severity of the error.
	ErrorSeverity() severity.Severity
}

// NotedError represents an error that exposes its individual notes in
// most-recent-first order.
//
// While the severity answers "how bad?", the notes answer "what exactly
// happened, step by step?". Adapters use them to populate detail payloads.
//
// Implementations SHOULD return a slice that is safe to iterate over and that
// will not be modified by the callee. Returning nil is allowed and simply
// means "no notes".
type NotedError interface {
	error

	// ErrorNotes returns the note snapshots, most recent first. May return
	// nil.
	ErrorNotes() []NoteView
}
