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

// Package grpcx surfaces errata trails over gRPC.
package grpcx

import (
	"context"
	"errors"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gstatus "google.golang.org/grpc/status"

	"github.com/shukitchan/errata"
	"github.com/shukitchan/errata/adapter"
	"github.com/shukitchan/errata/apis"
)

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that maps
// errata trails into gRPC errors carrying the full trail as a
// google.rpc.DebugInfo detail.
//
// The provided apis.Mapper resolves the trail's aggregate severity into the
// transport status code.
//
// A handler that returns a trail hands its reference to the interceptor: on
// the failure path the interceptor renders the trail into the status and
// clears it (the trail has been handled, so no sink fires); a trail below the
// failure threshold is likewise cleared and the response passes through
// untouched.
func UnaryServerInterceptor(m apis.Mapper) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}

		e, ok := err.(*errata.Errata)
		if !ok {
			// Not ours — return as-is.
			return nil, err
		}

		if e.IsOK() {
			e.Clear()
			return resp, nil
		}

		st := m.Status(e.Severity())
		sp := adapter.ToStatusProto(e, st)
		e.Clear()

		return nil, gstatus.FromProto(sp).Err()
	}
}

// ExtractDebugInfo pulls the google.rpc.DebugInfo detail out of a gRPC
// error, if present. Useful in tests and client code.
func ExtractDebugInfo(err error) (*errdetails.DebugInfo, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.DebugInfo); ok {
			return info, true
		}
	}
	return nil, false
}

// AsErrata reports whether err is (or wraps) an errata trail.
func AsErrata(err error) (*errata.Errata, bool) {
	var e *errata.Errata
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
