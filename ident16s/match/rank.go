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

import "sort"

// FilterRank drops candidates whose subject coverage is below minCoverage,
// ranks the survivors and truncates the list to maxMatches entries.
//
// The sort is stable and descending on (identical bases, alignment length,
// subject coverage); ties keep the matcher's original output order, which
// is identity-ranked already. An empty result is valid: a gene with no
// qualifying hit simply contributes nothing.
func FilterRank(cands []Candidate, minCoverage int, maxMatches int) []Candidate {
	kept := make([]Candidate, 0, len(cands))
	for _, c := range cands {
		if c.SubjectCoverage() >= minCoverage {
			kept = append(kept, c)
		}
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return rankBefore(&kept[i], &kept[j])
	})

	if len(kept) > maxMatches {
		kept = kept[:maxMatches]
	}
	return kept
}
