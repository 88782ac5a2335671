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

// Package adapter converts between errata trails and the portable shapes the
// transport layers ship over the wire.
package adapter

import (
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	spb "google.golang.org/genproto/googleapis/rpc/status"
	"google.golang.org/protobuf/types/known/anypb"

	"github.com/shukitchan/errata"
	"github.com/shukitchan/errata/apis"
)

// ToView converts a trail into a public ErrorView snapshot. All text is
// copied, so the view stays valid after the trail is released.
//
// No automatic redaction or filtering is performed here; it exposes exactly
// what the trail contains. Higher-level handlers should apply policies if
// needed.
func ToView(e *errata.Errata) apis.ErrorView {
	v := apis.ErrorView{
		Severity: e.Severity().String(),
		Failure:  !e.IsOK(),
	}
	for a := range e.Notes() {
		v.Notes = append(v.Notes, apis.NoteView{
			Severity: a.Severity().String(),
			Text:     a.Text(),
		})
	}
	return v
}

// ToDebugInfo converts a trail into a google.rpc.DebugInfo detail: one stack
// entry per note in the trail's most-recent-first order, rendered as
// "[<LEVEL>]: <text>", with the aggregate severity as the detail string.
//
// DebugInfo is the closest canonical detail type to "an ordered list of
// diagnostic lines"; it keeps clients free of any errata-specific proto.
func ToDebugInfo(e *errata.Errata) *errdetails.DebugInfo {
	info := &errdetails.DebugInfo{
		Detail: e.Severity().String(),
	}
	for a := range e.Notes() {
		info.StackEntries = append(info.StackEntries, "["+a.Severity().String()+"]: "+a.Text())
	}
	return info
}

// ToStatusProto converts a trail together with its resolved transport status
// into a google.rpc.Status carrying the trail as a DebugInfo detail.
//
// The message is the most recent note's text — the summary a caller reads
// first — with the full trail preserved in the details.
func ToStatusProto(e *errata.Errata, st apis.Status) *spb.Status {
	msg := ""
	if front, ok := e.Front(); ok {
		msg = front.Text()
	}
	out := &spb.Status{
		Code:    int32(st.GRPC),
		Message: msg,
	}
	if detail, err := anypb.New(ToDebugInfo(e)); err == nil {
		out.Details = append(out.Details, detail)
	}
	return out
}

// From lifts a plain error into a single-note trail. An error that already is
// a trail is returned as-is, without copying; a nil error yields an empty, ok
// trail.
//
// If the error implements apis.LeveledError its own severity is used for the
// note; otherwise the note is recorded at FailureSeverity.
func From(err error) *errata.Errata {
	if err == nil {
		return &errata.Errata{}
	}
	if e, ok := err.(*errata.Errata); ok {
		return e
	}
	level := errata.FailureSeverity
	if le, ok := err.(apis.LeveledError); ok {
		level = le.ErrorSeverity()
	}
	return errata.New(level, err.Error())
}
