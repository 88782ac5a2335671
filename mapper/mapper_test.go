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

package mapper

import (
	"net/http"
	"strings"
	"testing"

	"github.com/shukitchan/errata/severity"
	"google.golang.org/grpc/codes"
)

func TestDefaults(t *testing.T) {
	m := New()

	tests := []struct {
		name     string
		level    severity.Severity
		wantHTTP int
		wantGRPC codes.Code
	}{
		{"diag is success", severity.Diag, http.StatusOK, codes.OK},
		{"warning is success", severity.Warning, http.StatusOK, codes.OK},
		{"error is internal", severity.Error, http.StatusInternalServerError, codes.Internal},
		{"fatal is internal", severity.Fatal, http.StatusInternalServerError, codes.Internal},
		{"alert is unavailable", severity.Alert, http.StatusServiceUnavailable, codes.Unavailable},
		{"emergency is unavailable", severity.Emergency, http.StatusServiceUnavailable, codes.Unavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := m.Status(tt.level)
			if st.HTTP != tt.wantHTTP {
				t.Fatalf("HTTP = %d, want %d", st.HTTP, tt.wantHTTP)
			}
			if st.GRPC != tt.wantGRPC {
				t.Fatalf("GRPC = %s, want %s", st.GRPC, tt.wantGRPC)
			}
		})
	}
}

func TestOverrides(t *testing.T) {
	m := New(
		WithHTTP(severity.Warning, http.StatusMultiStatus),
		WithGRPC(severity.Alert, codes.Aborted),
	)

	if got := m.HTTPStatus(severity.Warning); got != http.StatusMultiStatus {
		t.Fatalf("overridden HTTP = %d", got)
	}
	if got := m.GRPCStatus(severity.Alert); got != codes.Aborted {
		t.Fatalf("overridden GRPC = %s", got)
	}
	// Untouched levels keep library defaults.
	if got := m.HTTPStatus(severity.Error); got != http.StatusInternalServerError {
		t.Fatalf("default HTTP leaked override = %d", got)
	}
}

func TestOutOfRangeFallback(t *testing.T) {
	m := New(
		WithFallbackHTTP(http.StatusBadGateway),
		WithFallbackGRPC(codes.Unknown),
	)
	bogus := severity.Severity(200)

	if got := m.HTTPStatus(bogus); got != http.StatusBadGateway {
		t.Fatalf("fallback HTTP = %d", got)
	}
	if got := m.GRPCStatus(bogus); got != codes.Unknown {
		t.Fatalf("fallback GRPC = %s", got)
	}
}

func TestImmutability_OptionsDoNotLeakAfterNew(t *testing.T) {
	opts := []Option{WithHTTP(severity.Error, http.StatusTeapot)}
	m1 := New(opts...)
	m2 := New()

	if m1.HTTPStatus(severity.Error) != http.StatusTeapot {
		t.Fatal("option not applied")
	}
	if m2.HTTPStatus(severity.Error) != http.StatusInternalServerError {
		t.Fatal("library defaults mutated by a previous New")
	}
}

func TestExplain(t *testing.T) {
	m := New()
	got := m.Explain(severity.Error)
	for _, sub := range []string{"ERROR", "500", "Internal"} {
		if !strings.Contains(got, sub) {
			t.Fatalf("Explain missing %q in %q", sub, got)
		}
	}
	if got := m.Explain(severity.Severity(99)); !strings.Contains(got, "out of range") {
		t.Fatalf("Explain for out of range = %q", got)
	}
}
