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
	"errors"
	"fmt"
	"iter"

	"github.com/shukitchan/errata/severity"
)

// Errata is a handle to a trail of severity-tagged notes describing the
// outcome of one logical operation.
//
// It carries:
//   - an aggregate severity: the maximum level over all notes;
//   - the notes themselves, iterated most-recent-first;
//   - a success predicate (IsOK) gated on a failure threshold.
//
// The zero value is the canonical "everything is fine" result and never
// allocates. Storage is created lazily on the first note and shared between
// copies of the handle by reference counting:
//
//	e := errata.New(severity.Error, "disk full")
//	e.Note(severity.Info, "while writing checkpoint")
//	return e
//
// Copy shares the trail cheaply; Release drops this handle's reference. When
// the last reference to a trail that still holds notes is released, every
// registered sink observes the trail before it is destroyed — so a failure
// nobody handled is never silently lost. Clear is the explicit "I handled it"
// signal that discards the notes without notifying sinks.
//
// Sharing is for transport, not for concurrent mutation: only a handle that
// is the sole owner of its trail may add notes or clear it. See
// ErrSharedMutation.
type Errata struct {
	rec *record
}

// DefaultSeverity is the aggregate severity of a trail with no notes.
const DefaultSeverity = severity.Diag

// FailureSeverity is the threshold at or above which a non-empty trail is
// considered a failure by IsOK.
const FailureSeverity = severity.Error

// ErrSharedMutation is the panic value raised when a mutating operation
// (Note, Notef, NoteLocalized, Alloc, Clear) is attempted on a trail that is
// referenced by more than one handle.
//
// There is no good use case for shared write access to a trail: sharing
// exists to make function returns cheap, and explicit copying of notes is
// easy via NoteAll. A shared mutation is therefore a defect in the calling
// code, not a recoverable condition, and is signaled as a panic rather than
// an error return.
var ErrSharedMutation = errors.New("errata: mutation of a shared trail")

// New returns a fresh Errata holding a single note and applies all provided
// options in order.
//
// Usage:
//
//	return errata.New(severity.Error, "disk full",
//	    errata.WithNoteOption(severity.Info, "while writing checkpoint"),
//	)
func New(level severity.Severity, text string, opts ...Option) *Errata {
	e := (&Errata{}).Note(level, text)
	for _, opt := range opts {
		e = opt(e)
	}
	return e
}

// Newf is New with fmt.Sprintf formatting of the note text.
func Newf(level severity.Severity, format string, args ...any) *Errata {
	e := &Errata{}
	return e.Notef(level, format, args...)
}

// IsOK reports whether the trail represents success: no storage, no notes, or
// an aggregate severity below FailureSeverity.
func (e *Errata) IsOK() bool {
	return e == nil || e.rec == nil || e.rec.count == 0 || e.rec.level < FailureSeverity
}

// Severity returns the aggregate severity of the trail: the maximum level
// over all notes, or DefaultSeverity if there are none.
func (e *Errata) Severity() severity.Severity {
	if e == nil || e.rec == nil {
		return DefaultSeverity
	}
	return e.rec.level
}

// Count returns the number of notes in the trail.
func (e *Errata) Count() int {
	if e == nil || e.rec == nil {
		return 0
	}
	return e.rec.count
}

// Empty reports whether the trail holds no notes.
func (e *Errata) Empty() bool { return e.Count() == 0 }

// Note adds a note to the trail and returns the handle for chaining.
//
// The text is copied into the trail's own storage, so the caller's buffer may
// be reused or discarded immediately. The new note becomes the head of the
// trail (iteration is most-recent-first) and its level is folded into the
// aggregate severity.
//
// Note panics with ErrSharedMutation if the trail is shared.
func (e *Errata) Note(level severity.Severity, text string) *Errata {
	r := e.writable()
	r.prepend(level, r.localize(text))
	return e
}

// Notef is Note with fmt.Sprintf formatting.
func (e *Errata) Notef(level severity.Severity, format string, args ...any) *Errata {
	return e.Note(level, fmt.Sprintf(format, args...))
}

// NoteLocalized is Note for text that already lives in this trail's storage,
// i.e. a span previously obtained from Alloc. No copy is made.
//
// NoteLocalized panics with ErrSharedMutation if the trail is shared.
func (e *Errata) NoteLocalized(level severity.Severity, span []byte) *Errata {
	e.writable().prepend(level, span)
	return e
}

// Alloc returns a span of n bytes from the trail's own storage, creating the
// storage if needed. Callers use this to build note text in place and then
// attach it with NoteLocalized.
//
// Alloc panics with ErrSharedMutation if the trail is shared.
func (e *Errata) Alloc(n int) []byte {
	return e.writable().arena.Alloc(n)
}

// NoteAll replays every note currently in that through this handle's Note, in
// that's most-recent-first order. The set of notes and the aggregate severity
// transfer exactly; because each replay itself prepends, that's most recent
// note ends up deepest among the newly inserted notes. Callers that care
// about position should add their own notes after merging.
//
// NoteAll panics with ErrSharedMutation if the receiving trail is shared.
func (e *Errata) NoteAll(that *Errata) *Errata {
	for a := range that.Notes() {
		e.Note(a.level, string(a.text))
	}
	return e
}

// Clear discards every note in the trail without notifying sinks — the
// explicit signal that the caller has handled the notes — and then releases
// this handle's reference. The handle behaves as a fresh empty Errata
// afterward.
//
// Clear panics with ErrSharedMutation if the trail is shared.
func (e *Errata) Clear() *Errata {
	if e == nil || e.rec == nil {
		return e
	}
	if e.rec.refs > 1 {
		panic(ErrSharedMutation)
	}
	e.rec.reset() // prevent sink processing
	e.Release()
	return e
}

// Copy returns a new handle sharing this trail. The trail's reference count
// is incremented; no notes are copied. The shared trail is read-only until
// all but one handle release it.
func (e *Errata) Copy() *Errata {
	if e == nil || e.rec == nil {
		return &Errata{}
	}
	e.rec.refs++
	return &Errata{rec: e.rec}
}

// Release drops this handle's reference to the trail and leaves the handle
// empty. When the last reference goes, a trail that still holds notes is
// first presented to every registered sink, in registration order, and then
// destroyed. Empty or cleared trails are destroyed without notification.
//
// Release on an empty handle is a no-op, and a released handle may be reused
// as a fresh one.
func (e *Errata) Release() {
	if e == nil || e.rec == nil {
		return
	}
	r := e.rec
	e.rec = nil
	r.refs--
	if r.refs > 0 {
		return
	}
	// Destruction must complete even if a sink panics.
	defer r.drop()
	if !r.empty() {
		view := &Errata{rec: r}
		for _, s := range sinkSnapshot() {
			s(view)
		}
	}
}

// Notes returns an iterator over the trail's notes, most recent first.
//
//	for a := range e.Notes() {
//	    log.Printf("%s: %s", a.Severity(), a.Text())
//	}
func (e *Errata) Notes() iter.Seq[Annotation] {
	return func(yield func(Annotation) bool) {
		if e == nil || e.rec == nil {
			return
		}
		for n := e.rec.head; n != nil; n = n.next {
			if !yield(n.Annotation) {
				return
			}
		}
	}
}

// Front returns the most recently added note, if any.
func (e *Errata) Front() (Annotation, bool) {
	if e == nil || e.rec == nil || e.rec.head == nil {
		return Annotation{}, false
	}
	return e.rec.head.Annotation, true
}

// writable returns the trail's record for mutation, creating it if the handle
// is empty. A record referenced by more than one handle is off limits.
func (e *Errata) writable() *record {
	if e.rec == nil {
		e.rec = newRecord()
	} else if e.rec.refs > 1 {
		panic(ErrSharedMutation)
	}
	return e.rec
}
