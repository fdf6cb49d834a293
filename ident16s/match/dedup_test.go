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

func TestDeduplicateKeepsBestPerSpecies(t *testing.T) {
	// the same species found for gene 1 and gene 3; the globally best
	// record must win regardless of which gene produced it
	matches := []Match{
		{Candidate: Candidate{Species: "Escherichia coli", NumIdentical: 1490, AlignLen: 1500, SubjectLen: 1500}, Gene: "16S_rRNA_1_Origin_c1"},
		{Candidate: Candidate{Species: "Shigella sonnei", NumIdentical: 1450, AlignLen: 1490, SubjectLen: 1500}, Gene: "16S_rRNA_2_Origin_c1"},
		{Candidate: Candidate{Species: "Escherichia coli", NumIdentical: 1350, AlignLen: 1400, SubjectLen: 1500}, Gene: "16S_rRNA_3_Origin_c2"},
	}

	uniq := Deduplicate(matches)
	if len(uniq) != 2 {
		t.Fatalf("expected 2 species, got %d", len(uniq))
	}
	if uniq[0].Species != "Escherichia coli" || uniq[0].NumIdentical != 1490 {
		t.Errorf("expected best E. coli record (1490) first, got %s (%d)", uniq[0].Species, uniq[0].NumIdentical)
	}
	if uniq[0].Gene != "16S_rRNA_1_Origin_c1" {
		t.Errorf("kept record should come from gene 1, got %s", uniq[0].Gene)
	}
	if uniq[1].Species != "Shigella sonnei" {
		t.Errorf("expected Shigella sonnei second, got %s", uniq[1].Species)
	}
}

func TestDeduplicateWithoutDuplicates(t *testing.T) {
	// distinct species are only re-ranked, never dropped
	matches := []Match{
		{Candidate: Candidate{Species: "a", NumIdentical: 1200, AlignLen: 1300, SubjectLen: 1500}},
		{Candidate: Candidate{Species: "b", NumIdentical: 1490, AlignLen: 1500, SubjectLen: 1500}},
	}

	uniq := Deduplicate(matches)
	if len(uniq) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(uniq))
	}
	if uniq[0].Species != "b" || uniq[1].Species != "a" {
		t.Errorf("expected global rank order b, a; got %s, %s", uniq[0].Species, uniq[1].Species)
	}
}

func TestDeduplicateIdempotent(t *testing.T) {
	matches := []Match{
		{Candidate: Candidate{Species: "a", NumIdentical: 1400, AlignLen: 1450, SubjectLen: 1500}, Gene: "g1"},
		{Candidate: Candidate{Species: "b", NumIdentical: 1490, AlignLen: 1500, SubjectLen: 1500}, Gene: "g1"},
		{Candidate: Candidate{Species: "a", NumIdentical: 1420, AlignLen: 1460, SubjectLen: 1500}, Gene: "g2"},
	}

	once := Deduplicate(matches)
	twice := Deduplicate(once)

	if len(once) != len(twice) {
		t.Fatalf("dedup not idempotent: %d then %d matches", len(once), len(twice))
	}
	for i := range once {
		if once[i] != twice[i] {
			t.Errorf("dedup not idempotent at %d: %v != %v", i, once[i], twice[i])
		}
	}
}

func TestDeduplicateNeverAddsSpecies(t *testing.T) {
	matches := []Match{
		{Candidate: Candidate{Species: "a", NumIdentical: 10, AlignLen: 10, SubjectLen: 100}},
		{Candidate: Candidate{Species: "a", NumIdentical: 20, AlignLen: 20, SubjectLen: 100}},
		{Candidate: Candidate{Species: "b", NumIdentical: 15, AlignLen: 15, SubjectLen: 100}},
	}

	in := make(map[string]bool)
	for _, m := range matches {
		in[m.Species] = true
	}

	uniq := Deduplicate(matches)
	seen := make(map[string]bool)
	for _, m := range uniq {
		if !in[m.Species] {
			t.Errorf("species %s not present in input", m.Species)
		}
		if seen[m.Species] {
			t.Errorf("species %s reported twice", m.Species)
		}
		seen[m.Species] = true
	}
	if len(uniq) > len(matches) {
		t.Errorf("dedup increased match count: %d > %d", len(uniq), len(matches))
	}
}

func TestDeduplicateLeavesInputUntouched(t *testing.T) {
	matches := []Match{
		{Candidate: Candidate{Species: "a", NumIdentical: 10, AlignLen: 10, SubjectLen: 100}},
		{Candidate: Candidate{Species: "b", NumIdentical: 20, AlignLen: 20, SubjectLen: 100}},
	}

	Deduplicate(matches)
	if matches[0].Species != "a" || matches[1].Species != "b" {
		t.Errorf("input slice was reordered: %s, %s", matches[0].Species, matches[1].Species)
	}
}

func TestDeduplicateEmpty(t *testing.T) {
	if uniq := Deduplicate(nil); len(uniq) != 0 {
		t.Errorf("expected empty result, got %d", len(uniq))
	}
}
