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

package adapter

import (
	"errors"
	"testing"

	"google.golang.org/grpc/codes"

	"github.com/shukitchan/errata"
	"github.com/shukitchan/errata/apis"
	"github.com/shukitchan/errata/severity"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
)

func TestToView(t *testing.T) {
	e := errata.New(severity.Error, "disk full").
		Note(severity.Info, "while writing checkpoint")

	v := ToView(e)
	e.Clear()

	if v.Severity != "ERROR" || !v.Failure {
		t.Fatalf("view header = %+v", v)
	}
	if len(v.Notes) != 2 {
		t.Fatalf("len(Notes) = %d, want 2", len(v.Notes))
	}
	// Most recent first, and text survives the trail's release.
	if v.Notes[0].Text != "while writing checkpoint" || v.Notes[0].Severity != "INFO" {
		t.Fatalf("Notes[0] = %+v", v.Notes[0])
	}
	if v.Notes[1].Text != "disk full" || v.Notes[1].Severity != "ERROR" {
		t.Fatalf("Notes[1] = %+v", v.Notes[1])
	}
}

func TestToView_Empty(t *testing.T) {
	var e errata.Errata
	v := ToView(&e)
	if v.Failure || v.Severity != "DIAG" || len(v.Notes) != 0 {
		t.Fatalf("empty view = %+v", v)
	}
}

func TestToDebugInfo(t *testing.T) {
	e := errata.New(severity.Error, "disk full").
		Note(severity.Info, "retrying")

	info := ToDebugInfo(e)
	e.Clear()

	if info.Detail != "ERROR" {
		t.Fatalf("Detail = %q", info.Detail)
	}
	want := []string{"[INFO]: retrying", "[ERROR]: disk full"}
	if len(info.StackEntries) != len(want) {
		t.Fatalf("StackEntries = %v", info.StackEntries)
	}
	for i, entry := range want {
		if info.StackEntries[i] != entry {
			t.Fatalf("StackEntries[%d] = %q, want %q", i, info.StackEntries[i], entry)
		}
	}
}

func TestToStatusProto(t *testing.T) {
	e := errata.New(severity.Fatal, "cannot start")
	st := apis.Status{HTTP: 500, GRPC: codes.Internal}

	sp := ToStatusProto(e, st)
	e.Clear()

	if sp.Code != int32(codes.Internal) {
		t.Fatalf("Code = %d", sp.Code)
	}
	if sp.Message != "cannot start" {
		t.Fatalf("Message = %q", sp.Message)
	}
	if len(sp.Details) != 1 {
		t.Fatalf("len(Details) = %d, want 1", len(sp.Details))
	}
	var info errdetails.DebugInfo
	if err := sp.Details[0].UnmarshalTo(&info); err != nil {
		t.Fatalf("unpack detail: %v", err)
	}
	if info.Detail != "FATAL" {
		t.Fatalf("detail severity = %q", info.Detail)
	}
}

func TestFrom(t *testing.T) {
	if e := From(nil); e.Count() != 0 || !e.IsOK() {
		t.Fatal("From(nil) must be empty and ok")
	}

	plain := errors.New("plain failure")
	e := From(plain)
	if e.Count() != 1 || e.Severity() != errata.FailureSeverity {
		t.Fatalf("lifted trail = %d notes at %v", e.Count(), e.Severity())
	}
	if front, _ := e.Front(); front.Text() != "plain failure" {
		t.Fatalf("lifted text = %q", front.Text())
	}
	e.Clear()

	own := errata.New(severity.Error, "already a trail")
	if got := From(own); got != own {
		t.Fatal("From must pass a trail through unchanged")
	}
	own.Clear()
}

// leveledErr is a foreign error type that advertises its own severity.
type leveledErr struct{ level severity.Severity }

func (l leveledErr) Error() string                    { return "leveled" }
func (l leveledErr) ErrorSeverity() severity.Severity { return l.level }

func TestFrom_LeveledError(t *testing.T) {
	e := From(leveledErr{level: severity.Alert})
	if e.Severity() != severity.Alert || e.Count() != 1 {
		t.Fatalf("lifted leveled error = %d notes at %v", e.Count(), e.Severity())
	}
	e.Clear()
}
