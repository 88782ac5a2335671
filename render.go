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

import (
	"io"
	"strings"
)

// Ensure Errata satisfies the interfaces rendering consumers rely on.
var (
	_ io.WriterTo = (*Errata)(nil)
	_ error       = (*Errata)(nil)
)

// WriteTo renders the trail onto w, one line per note in most-recent-first
// order:
//
//	[ERROR]: disk full
//	  [INFO]: while writing checkpoint
//
// The first line is unindented, every following line is indented two spaces,
// and each line is newline-terminated. An empty trail writes nothing.
func (e *Errata) WriteTo(w io.Writer) (int64, error) {
	var written int64
	lead := ""
	for a := range e.Notes() {
		n, err := io.WriteString(w, lead+"["+a.level.String()+"]: "+a.Text()+"\n")
		written += int64(n)
		if err != nil {
			return written, err
		}
		lead = "  "
	}
	return written, nil
}

// String returns the rendered trail, exactly as WriteTo would emit it.
func (e *Errata) String() string {
	var sb strings.Builder
	e.WriteTo(&sb) // strings.Builder never errors
	return sb.String()
}

// Error implements the error interface so an Errata can cross API boundaries
// that speak error. The message is the rendered trail without the final
// newline; an empty trail reports itself as "ok".
//
// Note that IsOK, not a nil comparison, is the success predicate: a non-nil
// Errata may still describe a successful operation.
func (e *Errata) Error() string {
	if e.Count() == 0 {
		return "ok"
	}
	return strings.TrimSuffix(e.String(), "\n")
}
