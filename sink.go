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

import "sync"

// Sink observes abandoned trails: it is invoked with a read-only view of a
// trail that still holds notes at the moment its last handle is released.
//
// A sink runs at most once per trail, synchronously on the goroutine that
// released the last handle, before the trail is destroyed. The view and
// anything derived from its storage must not be retained past the call;
// copy the text out if it needs to live on.
//
// Sinks must not mutate, copy, or release the view. Whatever a sink does with
// the trail is its own business: a panic inside a sink propagates to the
// releasing caller, but the trail's destruction still completes.
type Sink func(*Errata)

var (
	sinkMu   sync.RWMutex
	sinkList []Sink
)

// RegisterSink appends a sink to the process-wide registry. Sinks run in
// registration order and cannot be removed.
//
// The registry is intended to be populated during process initialization.
// Registration itself is safe for concurrent use, but a sink registered while
// other goroutines are already releasing trails may or may not observe those
// trails.
func RegisterSink(s Sink) {
	if s == nil {
		return
	}
	sinkMu.Lock()
	sinkList = append(sinkList, s)
	sinkMu.Unlock()
}

// sinkSnapshot returns the registered sinks in order. The registry is
// append-only, so the shared backing array is safe to iterate outside the
// lock.
func sinkSnapshot() []Sink {
	sinkMu.RLock()
	s := sinkList
	sinkMu.RUnlock()
	return s
}
