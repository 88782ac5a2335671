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

package arena

import (
	"bytes"
	"testing"
)

func TestAlloc_SpansAreDisjoint(t *testing.T) {
	a := New(64)
	first := a.Alloc(8)
	second := a.Alloc(8)

	for i := range first {
		first[i] = 'x'
	}
	for i := range second {
		second[i] = 'y'
	}
	if bytes.Contains(first, []byte{'y'}) {
		t.Fatal("writes to the second span leaked into the first")
	}
	if len(first) != 8 || cap(first) != 8 {
		t.Fatalf("span len/cap = %d/%d, want 8/8", len(first), cap(first))
	}
}

func TestAlloc_GrowsPastInitialBlock(t *testing.T) {
	a := New(16)
	small := a.Copy([]byte("keep me"))
	big := a.Alloc(1024) // forces a new block

	if len(big) != 1024 {
		t.Fatalf("len(big) = %d, want 1024", len(big))
	}
	// The first span must survive the growth untouched.
	if string(small) != "keep me" {
		t.Fatalf("early span corrupted by growth: %q", small)
	}
	if a.Reserved() < 16+1024 {
		t.Fatalf("Reserved() = %d, want at least %d", a.Reserved(), 16+1024)
	}
}

func TestAlloc_OversizedRequest(t *testing.T) {
	a := New(8)
	span := a.Alloc(100)
	if len(span) != 100 {
		t.Fatalf("len = %d, want 100", len(span))
	}
}

func TestAlloc_Zero(t *testing.T) {
	a := New(8)
	span := a.Alloc(0)
	if span == nil || len(span) != 0 {
		t.Fatalf("Alloc(0) = %v, want empty non-nil span", span)
	}
	if a.Allocated() != 0 {
		t.Fatalf("Allocated() = %d after zero-size alloc", a.Allocated())
	}
}

func TestAlloc_Negative(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Alloc(-1) must panic")
		}
	}()
	New(8).Alloc(-1)
}

func TestCopyString_Independent(t *testing.T) {
	a := New(32)
	buf := []byte("volatile")
	span := a.Copy(buf)
	for i := range buf {
		buf[i] = '?'
	}
	if string(span) != "volatile" {
		t.Fatalf("span tracks the caller's buffer: %q", span)
	}

	s := a.CopyString("hello")
	if string(s) != "hello" {
		t.Fatalf("CopyString = %q", s)
	}
}

func TestZeroValueUsable(t *testing.T) {
	var a Arena
	span := a.Alloc(10)
	if len(span) != 10 {
		t.Fatalf("zero-value arena Alloc len = %d", len(span))
	}
	if a.Reserved() < DefaultBlockSize {
		t.Fatalf("zero-value arena reserved %d, want at least %d", a.Reserved(), DefaultBlockSize)
	}
}

func TestAllocatedAccounting(t *testing.T) {
	a := New(64)
	a.Alloc(10)
	a.Alloc(22)
	if got := a.Allocated(); got != 32 {
		t.Fatalf("Allocated() = %d, want 32", got)
	}
}
