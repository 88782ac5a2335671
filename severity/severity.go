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

package severity

import (
	"bytes"
	"encoding"
	"errors"
	"strings"
)

// Severity is the canonical, validated representation of a diagnostic level.
//
// It is defined as a dedicated ordinal type (not a bare int or string) so that
// other packages can explicitly declare which values they expect and so the
// ordering is part of the type's contract: a higher value is more severe.
type Severity uint8

// The full scale, ascending. The zero value is Diag, the least severe level,
// which makes the zero value of containing structs a benign default.
const (
	// Diag is for developer-facing diagnostics that are normally discarded.
	Diag Severity = iota

	// Debug is for messages useful when debugging a specific subsystem.
	Debug

	// Info is for routine informational messages.
	Info

	// Note is for messages that should be seen but indicate no problem.
	Note

	// Warning indicates a suspicious condition that did not prevent the
	// operation from completing.
	Warning

	// Error indicates the operation failed.
	Error

	// Fatal indicates a failure the current task cannot recover from.
	Fatal

	// Alert indicates a failure that requires operator attention.
	Alert

	// Emergency indicates the process is in an unusable state.
	Emergency
)

// Count is the number of defined levels. Useful for sizing lookup tables
// indexed by Severity.
const Count = int(Emergency) + 1

// names is the canonical, index-matched name table. Rendering and parsing
// both go through this table so the two can never drift apart.
var names = [Count]string{
	"DIAG",
	"DEBUG",
	"INFO",
	"NOTE",
	"WARNING",
	"ERROR",
	"FATAL",
	"ALERT",
	"EMERGENCY",
}

var (
	// ErrInvalid is returned when a value cannot be parsed or validated as a
	// severity level.
	//
	// Having a dedicated sentinel error makes it easy for callers and tests to
	// detect "this is about the severity scale" vs "some other error".
	ErrInvalid = errors.New("severity: invalid level")
)

// Ensure Severity implements encoding.TextMarshaler / encoding.TextUnmarshaler
// so it can be embedded into larger config or API structs.
var (
	_ encoding.TextMarshaler   = (*Severity)(nil)
	_ encoding.TextUnmarshaler = (*Severity)(nil)
)

// Parse takes a user-provided string, normalizes it and validates it.
// On success it returns the matching Severity value.
func Parse(s string) (Severity, error) {
	s = Normalize(s)
	for i, name := range names {
		if s == name {
			return Severity(i), nil
		}
	}
	return Diag, ErrInvalid
}

// MustParse is the panic-on-error variant of Parse. It is useful for
// declaring package-level constants in init() or var blocks.
func MustParse(s string) Severity {
	level, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return level
}

// Normalize takes an arbitrary string and brings it closer to the canonical
// upper-case form.
//
// This function is intentionally conservative: it only trims surrounding
// spaces and upper-cases the value. It does NOT guarantee that the result is
// a defined level — callers should still call Parse/Validate.
func Normalize(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// Validate checks whether the provided Severity is a defined level.
// Arithmetic on Severity values can produce out-of-range ordinals; Validate
// rejects those.
func Validate(level Severity) error {
	if int(level) >= Count {
		return ErrInvalid
	}
	return nil
}

// Max returns the more severe of a and b. This is the aggregation operator
// for a trail of notes.
func Max(a, b Severity) Severity {
	if b > a {
		return b
	}
	return a
}

// String returns the canonical upper-case name of the level, index-matched to
// the scale. Out-of-range values render as "UNKNOWN".
func (s Severity) String() string {
	if int(s) < Count {
		return names[s]
	}
	return "UNKNOWN"
}

// MarshalText implements encoding.TextMarshaler.
//
// It always returns the canonical upper-case name.
func (s Severity) MarshalText() ([]byte, error) {
	if err := Validate(s); err != nil {
		return nil, err
	}
	return []byte(names[s]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// It normalizes and validates the provided text before assigning.
func (s *Severity) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
