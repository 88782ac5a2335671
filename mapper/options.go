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
	"github.com/shukitchan/errata/severity"
	"google.golang.org/grpc/codes"
)

// Option configures the Mapper at build time.
// All options are applied to an internal builder and then frozen into
// an immutable Mapper.
type Option func(*builder)

// WithHTTP sets or replaces the HTTP status for the given severity level.
func WithHTTP(level severity.Severity, http int) Option {
	return func(b *builder) { b.http[level] = http }
}

// WithGRPC sets or replaces the gRPC status for the given severity level.
func WithGRPC(level severity.Severity, code codes.Code) Option {
	return func(b *builder) { b.grpc[level] = code }
}

// WithFallbackHTTP replaces the HTTP status used for out-of-range severity
// values.
func WithFallbackHTTP(http int) Option {
	return func(b *builder) { b.fallbackHTTP = http }
}

// WithFallbackGRPC replaces the gRPC status used for out-of-range severity
// values.
func WithFallbackGRPC(code codes.Code) Option {
	return func(b *builder) { b.fallbackGRPC = code }
}
