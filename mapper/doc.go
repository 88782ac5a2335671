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

// Package mapper provides deterministic, immutable mappings from the
// aggregate severity of an errata trail to transport-level statuses for HTTP
// and gRPC.
//
// # Overview
//
// Transport layers (HTTP handlers, gRPC servers) need to turn "this operation
// produced a trail with aggregate severity S" into concrete status codes.
// Package mapper does that in a way that is:
//
//   - immutable — a Mapper is a snapshot, safe for concurrent reuse;
//   - overridable — callers can change library defaults per level;
//   - dual — HTTP and gRPC are resolved with the same logic.
//
// # Resolution model
//
// A Mapper resolves statuses in the following order:
//
//  1. per-level entry (library default or user override);
//  2. global fallback (500 / codes.Internal) for out-of-range levels.
//
// # Library defaults
//
// Levels below the failure threshold resolve to success statuses (200 /
// codes.OK): a trail of warnings accompanies a result, it does not replace
// one. Error and Fatal are internal failures (500 / Internal); Alert and
// Emergency mean the process should not be serving and map to 503 /
// Unavailable.
//
// # Building a mapper
//
// A Mapper is created once and reused:
//
//	m := mapper.New(
//	    mapper.WithHTTP(severity.Warning, http.StatusMultiStatus),
//	    mapper.WithGRPC(severity.Alert, codes.Aborted),
//	)
//	st := m.Status(severity.Error)
//	// st.HTTP == 500, st.GRPC == codes.Internal
//
// # Diagnostics
//
// For debugging and tests, Mapper.Explain returns a human-readable trace of
// how a level was resolved. This is intended for inspection and logging, not
// for stable machine parsing.
package mapper
