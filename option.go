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

package errata

import "github.com/shukitchan/errata/severity"

// Option is a functional option for constructing an Errata. It always takes
// an *Errata and returns a (possibly same) *Errata.
type Option func(*Errata) *Errata

// WithNoteOption adds one more note on construction.
// Intended to be used with New(...).
func WithNoteOption(level severity.Severity, text string) Option {
	return func(e *Errata) *Errata {
		return e.Note(level, text)
	}
}

// WithNotefOption adds one more formatted note on construction.
// Intended to be used with New(...).
func WithNotefOption(level severity.Severity, format string, args ...any) Option {
	return func(e *Errata) *Errata {
		return e.Notef(level, format, args...)
	}
}

// WithAllOption replays every note of that on construction, with NoteAll
// semantics. Intended to be used with New(...).
func WithAllOption(that *Errata) Option {
	return func(e *Errata) *Errata {
		return e.NoteAll(that)
	}
}
