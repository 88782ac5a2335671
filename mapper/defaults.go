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

	"github.com/shukitchan/errata/severity"
	"google.golang.org/grpc/codes"
)

// defaultHTTP defines the library's built-in HTTP mappings per severity
// level. These are only defaults: callers are expected to override them at
// the boundary where HTTP is actually produced (REST gateway, HTTP handler)
// when a different policy is required.
var defaultHTTP = map[severity.Severity]int{
	// Below the failure threshold a trail annotates a success; it does not
	// replace one.
	severity.Diag:    http.StatusOK,
	severity.Debug:   http.StatusOK,
	severity.Info:    http.StatusOK,
	severity.Note:    http.StatusOK,
	severity.Warning: http.StatusOK,

	// At or above the threshold the operation failed.
	severity.Error: http.StatusInternalServerError, // Generic failure; notes carry the specifics.
	severity.Fatal: http.StatusInternalServerError, // Task-level failure, same transport projection.

	// Alert/Emergency mean the process should not be serving at all.
	severity.Alert:     http.StatusServiceUnavailable,
	severity.Emergency: http.StatusServiceUnavailable,
}

// defaultGRPC defines the library's built-in gRPC mappings per severity
// level, aligned with canonical grpc/codes semantics the same way the HTTP
// table aligns with REST conventions.
var defaultGRPC = map[severity.Severity]codes.Code{
	severity.Diag:    codes.OK,
	severity.Debug:   codes.OK,
	severity.Info:    codes.OK,
	severity.Note:    codes.OK,
	severity.Warning: codes.OK,

	severity.Error: codes.Internal,
	severity.Fatal: codes.Internal,

	severity.Alert:     codes.Unavailable,
	severity.Emergency: codes.Unavailable,
}
