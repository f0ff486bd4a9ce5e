// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwtest

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// Normalize trims s and collapses runs of blanks into a single space.
//
func Normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Lines returns the non-empty lines of src, normalized.
//
func Lines(src string) []string {
	var ls []string
	for _, l := range strings.Split(src, "\n") {
		if l = Normalize(l); l != "" {
			ls = append(ls, l)
		}
	}
	return ls
}

// ContainsLines checks that the normalized lines want appear in src, in
// order but not necessarily adjacent.
//
func ContainsLines(t testing.TB, src string, want ...string) {
	t.Helper()
	ls := Lines(src)
	i := 0
	for _, w := range want {
		w = Normalize(w)
		for i < len(ls) && ls[i] != w {
			i++
		}
		if i == len(ls) {
			t.Errorf("line %q not found in order in:\n%s", w, src)
			return
		}
		i++
	}
}

// CompareText compares two sources line by line, ignoring spacing.
//
func CompareText(t testing.TB, want, got string) {
	t.Helper()
	if diff := cmp.Diff(Lines(want), Lines(got)); diff != "" {
		t.Errorf("text mismatch (-want +got):\n%s", diff)
	}
}
