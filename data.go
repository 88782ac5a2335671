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

import (
	"github.com/shukitchan/errata/arena"
	"github.com/shukitchan/errata/severity"
)

// Annotation is one severity-tagged note in a trail. It is immutable once
// created; its text lives in the owning record's arena and is released with
// the record, never individually.
type Annotation struct {
	level severity.Severity
	text  []byte
}

// Severity returns the level of this note.
func (a Annotation) Severity() severity.Severity { return a.level }

// Text returns the note text.
//
// The returned string copies out of the record's arena, so it remains valid
// after the record is gone.
func (a Annotation) Text() string { return string(a.text) }

// node is one element of a record's prepend-ordered note list.
type node struct {
	Annotation
	next *node
}

// initialArenaSize is the arena reservation made when a record is created.
// Most trails are a handful of short notes; one block usually suffices.
const initialArenaSize = 512

// record is the shared payload behind one or more Errata handles.
//
// It owns the arena, the note list and the aggregate severity, and it counts
// the handles referencing it. It is never reached except through an Errata.
type record struct {
	arena *arena.Arena

	// head is the most recently added note; the list is prepend-ordered.
	head  *node
	count int

	// level is the maximum severity over all notes ever added. It only
	// decreases by clearing.
	level severity.Severity

	refs int
}

func newRecord() *record {
	return &record{
		arena: arena.New(initialArenaSize),
		level: DefaultSeverity,
		refs:  1,
	}
}

// localize copies text into the record's arena so the note never depends on
// caller-owned memory outlasting the call.
func (r *record) localize(text string) []byte {
	return r.arena.CopyString(text)
}

// prepend adds a note at the head of the list and folds its level into the
// aggregate severity.
func (r *record) prepend(level severity.Severity, text []byte) {
	r.head = &node{Annotation: Annotation{level: level, text: text}, next: r.head}
	r.count++
	r.level = severity.Max(r.level, level)
}

// empty reports whether the record holds no notes. This predicate gates the
// abandonment check: only non-empty records notify sinks on release.
func (r *record) empty() bool { return r.count == 0 }

// reset discards all notes without touching the reference count.
func (r *record) reset() {
	r.head = nil
	r.count = 0
	r.level = DefaultSeverity
}

// drop severs the record from its storage after the last reference is gone
// and any sinks have run.
func (r *record) drop() {
	r.head = nil
	r.count = 0
	r.arena = nil
}
