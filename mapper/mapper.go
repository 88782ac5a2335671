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
	"fmt"
	"net/http"

	"github.com/shukitchan/errata/apis"
	"github.com/shukitchan/errata/severity"
	"google.golang.org/grpc/codes"
)

// builder accumulates user adjustments on top of the library defaults before
// they are frozen into an immutable Mapper.
type builder struct {
	// http and grpc hold per-level statuses, pre-seeded with the library
	// defaults and adjusted by options.
	http map[severity.Severity]int
	grpc map[severity.Severity]codes.Code

	// global fallbacks used when the severity is out of range.
	fallbackHTTP int
	fallbackGRPC codes.Code
}

func newBuilder() *builder {
	b := &builder{
		http: make(map[severity.Severity]int, len(defaultHTTP)),
		grpc: make(map[severity.Severity]codes.Code, len(defaultGRPC)),

		// hard fallbacks if the level was never seen
		fallbackHTTP: http.StatusInternalServerError,
		fallbackGRPC: codes.Internal,
	}
	for level, st := range defaultHTTP {
		b.http[level] = st
	}
	for level, code := range defaultGRPC {
		b.grpc[level] = code
	}
	return b
}

// mapperImpl is the frozen form of the builder. The per-level tables are
// fixed-size arrays indexed by severity ordinal, so resolution is a bounds
// check and a load.
type mapperImpl struct {
	http [severity.Count]int
	grpc [severity.Count]codes.Code

	fallbackHTTP int
	fallbackGRPC codes.Code
}

// Ensure mapperImpl satisfies the contract the adapters consume.
var _ apis.Mapper = (*mapperImpl)(nil)

// New builds an immutable Mapper from the library defaults plus the provided
// options. The result is safe to share across handlers, goroutines, and
// requests.
func New(opts ...Option) apis.Mapper {
	b := newBuilder()
	for _, opt := range opts {
		opt(b)
	}

	m := &mapperImpl{
		fallbackHTTP: b.fallbackHTTP,
		fallbackGRPC: b.fallbackGRPC,
	}
	for i := range severity.Count {
		level := severity.Severity(i)
		if st, ok := b.http[level]; ok {
			m.http[i] = st
		} else {
			m.http[i] = b.fallbackHTTP
		}
		if code, ok := b.grpc[level]; ok {
			m.grpc[i] = code
		} else {
			m.grpc[i] = b.fallbackGRPC
		}
	}
	return m
}

// HTTPStatus implements apis.Mapper.
func (m *mapperImpl) HTTPStatus(level severity.Severity) int {
	if int(level) >= severity.Count {
		return m.fallbackHTTP
	}
	return m.http[level]
}

// GRPCStatus implements apis.Mapper.
func (m *mapperImpl) GRPCStatus(level severity.Severity) codes.Code {
	if int(level) >= severity.Count {
		return m.fallbackGRPC
	}
	return m.grpc[level]
}

// Status implements apis.Mapper.
func (m *mapperImpl) Status(level severity.Severity) apis.Status {
	return apis.Status{
		HTTP: m.HTTPStatus(level),
		GRPC: m.GRPCStatus(level),
	}
}

// Explain implements apis.Mapper. The output is for humans and tests; its
// exact wording is not a stable contract.
func (m *mapperImpl) Explain(level severity.Severity) string {
	if int(level) >= severity.Count {
		return fmt.Sprintf("severity %d out of range: fallback -> HTTP %d, gRPC %s",
			level, m.fallbackHTTP, m.fallbackGRPC)
	}
	return fmt.Sprintf("severity %s: level entry -> HTTP %d, gRPC %s",
		level, m.http[level], m.grpc[level])
}
