// Copyright © 2023-2024 Marco van Zwetselaar <io@zwets.it>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package util

import "testing"

func TestSplitNByByte(t *testing.T) {
	tests := []struct {
		s        string
		n        int
		expected []string
	}{
		{"a\tb\tc", 3, []string{"a", "b", "c"}},
		{"a\tb\tc", 2, []string{"a", "b\tc"}},
		{"a\tb", 3, []string{"a", "b"}},
		{"", 3, []string{""}},
		{"a\t\tc", 3, []string{"a", "", "c"}},
	}

	for _, test := range tests {
		items := make([]string, test.n)
		SplitNByByte(test.s, '\t', test.n, &items)
		if len(items) != len(test.expected) {
			t.Errorf("split %q into %d: expected %d fields, got %d", test.s, test.n, len(test.expected), len(items))
			continue
		}
		for i := range items {
			if items[i] != test.expected[i] {
				t.Errorf("split %q into %d: field %d expected %q, got %q", test.s, test.n, i, test.expected[i], items[i])
			}
		}
	}

	SplitNByByte("x\ty", '\t', 2, nil) // nil target slice is allowed
}
