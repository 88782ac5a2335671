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

// Package httpx surfaces errata trails over HTTP.
package httpx

import (
	"net/http"
	"strconv"

	"google.golang.org/protobuf/encoding/protojson"

	"github.com/shukitchan/errata"
	"github.com/shukitchan/errata/adapter"
	"github.com/shukitchan/errata/apis"
)

// Meta carries extra context that the HTTP layer can add on top of a trail.
// All fields are optional and typically come from request context, headers,
// or router-level logic.
type Meta struct {
	RetryAfterSeconds int
}

// Writer is a thin adapter that knows how to turn an errata trail into an
// HTTP response using the provided status mapper.
type Writer struct {
	Mapper apis.Mapper
}

// Write serializes the trail as a google.rpc.Status JSON body and writes it
// to the response writer. The HTTP status is resolved via the Mapper; the
// body's embedded code is the gRPC projection of the same severity, so the
// two transports always agree about one trail.
//
// Write consumes the trail: it is cleared after rendering, so no abandonment
// sink fires for notes the client has been shown.
//
// No automatic redaction or filtering is performed here: whatever is present
// in the trail is exposed as-is. Higher-level handlers should apply policies
// if needed.
func (w Writer) Write(rw http.ResponseWriter, e *errata.Errata, meta Meta) {
	if e == nil {
		return
	}

	st := w.Mapper.Status(e.Severity())
	sp := adapter.ToStatusProto(e, st)
	e.Clear()

	rw.Header().Set("Content-Type", "application/json")
	if meta.RetryAfterSeconds > 0 {
		rw.Header().Set("Retry-After", strconv.Itoa(meta.RetryAfterSeconds))
	}
	rw.WriteHeader(st.HTTP)

	// IMPORTANT: google.rpc.Status must go through protojson, not
	// encoding/json, to serialize the Any-typed details with their type URLs
	// and json_name fields.
	b, _ := (protojson.MarshalOptions{
		EmitUnpopulated: false,
		UseProtoNames:   false, // use json_name
	}).Marshal(sp)
	_, _ = rw.Write(b)
}
