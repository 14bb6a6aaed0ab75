// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package wire

import (
	"reflect"
	"testing"
)

func TestCompare_ShorterPrefixOrdersFirst(t *testing.T) {
	if Compare([]byte("a"), []byte("ab")) >= 0 {
		t.Error("\"a\" should order before \"ab\"")
	}
	if Compare([]byte("ab"), []byte("a")) <= 0 {
		t.Error("\"ab\" should order after \"a\"")
	}
	if Compare([]byte("a"), []byte("a")) != 0 {
		t.Error("equal strings should compare equal")
	}
}

func TestSortCanonical_SortsAndDedupes(t *testing.T) {
	input := [][]byte{
		[]byte("b"), []byte("a"), []byte("c"), []byte("a"),
	}

	got := SortCanonical(input)

	want := [][]byte{[]byte("a"), []byte("b"), []byte("c")}
	if len(got) != len(want) {
		t.Fatalf("SortCanonical returned %d elements, want %d", len(got), len(want))
	}
	for i := range want {
		if !reflect.DeepEqual(got[i], want[i]) {
			t.Errorf("element %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSortCanonical_Empty(t *testing.T) {
	got := SortCanonical(nil)
	if len(got) != 0 {
		t.Errorf("SortCanonical(nil) = %v, want empty", got)
	}
}

func TestIsStrictlyAscending(t *testing.T) {
	tests := []struct {
		name     string
		elements [][]byte
		want     bool
	}{
		{"empty", nil, true},
		{"single", [][]byte{[]byte("a")}, true},
		{"ascending", [][]byte{[]byte("a"), []byte("b"), []byte("c")}, true},
		{"duplicate", [][]byte{[]byte("a"), []byte("a")}, false},
		{"descending", [][]byte{[]byte("b"), []byte("a")}, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := IsStrictlyAscending(test.elements); got != test.want {
				t.Errorf("IsStrictlyAscending(%v) = %v, want %v", test.elements, got, test.want)
			}
		})
	}
}
