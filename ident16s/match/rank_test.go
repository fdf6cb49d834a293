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

package match

import "testing"

func TestSubjectCoverage(t *testing.T) {
	tests := []struct {
		alen, slen int
		expected   int
	}{
		{90, 100, 90},
		{89, 100, 89},
		{1450, 1500, 96}, // floor(96.66)
		{1, 1500, 0},
		{1500, 1500, 100},
		{100, 0, 0},  // never divide by zero
		{100, -1, 0}, // negative length also yields 0
	}

	for _, test := range tests {
		c := Candidate{AlignLen: test.alen, SubjectLen: test.slen}
		if cov := c.SubjectCoverage(); cov != test.expected {
			t.Errorf("coverage of %d/%d: expected %d, got %d", test.alen, test.slen, test.expected, cov)
		}
	}
}

func TestFilterRankDropsLowCoverage(t *testing.T) {
	cands := []Candidate{
		{Species: "a", AlignLen: 900, SubjectLen: 1500, NumIdentical: 890},  // cov 60
		{Species: "b", AlignLen: 899, SubjectLen: 1500, NumIdentical: 899},  // cov 59
		{Species: "c", AlignLen: 1500, SubjectLen: 1500, NumIdentical: 800}, // cov 100
		{Species: "d", AlignLen: 100, SubjectLen: 0, NumIdentical: 100},     // cov 0
	}

	kept := FilterRank(cands, 60, 10)
	if len(kept) != 2 {
		t.Fatalf("expected 2 candidates to pass, got %d", len(kept))
	}
	for _, c := range kept {
		if c.SubjectCoverage() < 60 {
			t.Errorf("candidate %s passed with coverage %d below threshold", c.Species, c.SubjectCoverage())
		}
	}
}

func TestFilterRankOrdering(t *testing.T) {
	// identical bases dominate: the short perfect fragment (b would win on
	// identity alone) must rank below the near-full-length hit
	cands := []Candidate{
		{Species: "a", NumIdentical: 1400, AlignLen: 1450, SubjectLen: 1520, PercentIdent: 96.55},
		{Species: "b", NumIdentical: 1490, AlignLen: 1500, SubjectLen: 1510, PercentIdent: 99.33},
		{Species: "c", NumIdentical: 1200, AlignLen: 1300, SubjectLen: 1600, PercentIdent: 92.31},
	}

	kept := FilterRank(cands, 60, 3)
	expected := []string{"b", "a", "c"}
	if len(kept) != 3 {
		t.Fatalf("expected 3 candidates, got %d", len(kept))
	}
	for i, name := range expected {
		if kept[i].Species != name {
			t.Errorf("rank %d: expected %s, got %s", i+1, name, kept[i].Species)
		}
	}

	// descending key property
	for i := 1; i < len(kept); i++ {
		if rankBefore(&kept[i], &kept[i-1]) {
			t.Errorf("rank %d outranks rank %d", i+1, i)
		}
	}
}

func TestFilterRankTruncates(t *testing.T) {
	cands := []Candidate{
		{Species: "a", NumIdentical: 1400, AlignLen: 1450, SubjectLen: 1500},
		{Species: "b", NumIdentical: 1490, AlignLen: 1500, SubjectLen: 1500},
		{Species: "c", NumIdentical: 1200, AlignLen: 1300, SubjectLen: 1500},
	}

	kept := FilterRank(cands, 60, 1)
	if len(kept) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(kept))
	}
	if kept[0].Species != "b" {
		t.Errorf("expected b, got %s", kept[0].Species)
	}
}

func TestFilterRankStableTies(t *testing.T) {
	// full ties keep the matcher's original order
	cands := []Candidate{
		{Species: "first", NumIdentical: 1400, AlignLen: 1450, SubjectLen: 1500},
		{Species: "second", NumIdentical: 1400, AlignLen: 1450, SubjectLen: 1500},
		{Species: "third", NumIdentical: 1400, AlignLen: 1450, SubjectLen: 1500},
	}

	kept := FilterRank(cands, 0, 3)
	expected := []string{"first", "second", "third"}
	for i, name := range expected {
		if kept[i].Species != name {
			t.Errorf("position %d: expected %s, got %s", i, name, kept[i].Species)
		}
	}
}

func TestFilterRankEmpty(t *testing.T) {
	if kept := FilterRank(nil, 60, 1); len(kept) != 0 {
		t.Errorf("expected empty result for no candidates, got %d", len(kept))
	}

	cands := []Candidate{
		{Species: "a", AlignLen: 100, SubjectLen: 1500, NumIdentical: 100},
	}
	if kept := FilterRank(cands, 60, 1); len(kept) != 0 {
		t.Errorf("expected empty result below threshold, got %d", len(kept))
	}
}
