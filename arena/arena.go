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

// Package arena provides a bump allocator for byte spans with arena-scoped
// lifetime.
//
// An Arena hands out spans carved from a growable region. Spans are never
// freed individually: everything an arena allocated stays live until the
// arena itself is dropped, at which point it all goes at once. This matches
// the ownership model of an errata record, whose note text must outlive every
// individual call but never its record.
package arena

// Arena is a bump allocator over a chain of blocks.
//
// An Arena must not be copied after first use; pass it by pointer. The zero
// value is usable and allocates its first block on demand.
type Arena struct {
	// cur is the unused tail of the active block.
	cur []byte

	// next is the size of the next block to reserve.
	next int

	reserved  int
	allocated int
}

// DefaultBlockSize is the first block size used when an Arena is created
// without an explicit hint.
const DefaultBlockSize = 4096

// New returns an Arena whose first block reserves at least n bytes.
// A non-positive n falls back to DefaultBlockSize.
func New(n int) *Arena {
	if n <= 0 {
		n = DefaultBlockSize
	}
	return &Arena{next: n}
}

// Alloc returns a span of exactly n bytes with arena lifetime.
//
// The span has capacity n, so appending to it can never scribble over a
// neighboring allocation. Alloc(0) returns an empty, non-nil span without
// consuming space.
func (a *Arena) Alloc(n int) []byte {
	if n < 0 {
		panic("arena: negative allocation")
	}
	if n == 0 {
		return []byte{}
	}
	if len(a.cur) < n {
		a.grow(n)
	}
	span := a.cur[:n:n]
	a.cur = a.cur[n:]
	a.allocated += n
	return span
}

// Copy allocates a span and fills it with a copy of src. The returned span is
// independent of the caller's buffer.
func (a *Arena) Copy(src []byte) []byte {
	span := a.Alloc(len(src))
	copy(span, src)
	return span
}

// CopyString is Copy for string sources.
func (a *Arena) CopyString(src string) []byte {
	span := a.Alloc(len(src))
	copy(span, src)
	return span
}

// Reserved reports the total bytes reserved from the runtime, including the
// unused tail of the active block.
func (a *Arena) Reserved() int { return a.reserved }

// Allocated reports the total bytes handed out via Alloc.
func (a *Arena) Allocated() int { return a.allocated }

// grow reserves a fresh block large enough for n bytes. Blocks double each
// time so a long trail of small notes stays O(log n) in block count. The old
// block's tail is abandoned; spans already handed out remain valid because
// they alias the old block, not the Arena.
func (a *Arena) grow(n int) {
	size := a.next
	if size <= 0 {
		size = DefaultBlockSize
	}
	if size < n {
		size = n
	}
	a.cur = make([]byte, size)
	a.reserved += size
	a.next = size * 2
}
