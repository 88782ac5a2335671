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

// ViewProvider is implemented by errors that can produce a transport-friendly,
// self-contained snapshot of themselves.
//
// This is useful for HTTP/gRPC adapters that want to send "the canonical form"
// of a trail to the client without having to know about the concrete error
// type.
//
// The returned view MUST be safe to marshal to JSON and MUST NOT alias
// storage that dies with the trail.
type ViewProvider interface {
	error

	// ErrorView returns a transport-friendly snapshot of the trail.
	ErrorView() ErrorView
}

// ErrorView is a minimal, serializable snapshot of a trail.
//
// This is *not* the live handle — it is the shape we are comfortable exposing
// over the wire or logging after the trail itself is gone. All text is copied
// out of the trail's storage.
type ErrorView struct {
	// Severity is the canonical upper-case name of the aggregate severity,
	// e.g. "ERROR".
	Severity string `json:"severity"`

	// Failure reports whether the aggregate severity reached the failure
	// threshold. Mirrors the trail's IsOK predicate, inverted.
	Failure bool `json:"failure"`

	// Notes holds the individual notes, most recent first.
	Notes []NoteView `json:"notes,omitempty"`
}

// NoteView is one note inside an ErrorView.
type NoteView struct {
	// Severity is the canonical upper-case name of the note's level.
	Severity string `json:"severity"`

	// Text is the note text.
	Text string `json:"text"`
}
