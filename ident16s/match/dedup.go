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

// Deduplicate collapses the concatenated per-gene hit lists to one best
// match per distinct species name.
//
// Bacterial genomes commonly carry several 16S copies, so the same species
// tends to show up once per gene. The input is re-sorted globally by the
// ranking key, a second sort distinct from the per-gene one in FilterRank:
// after merging, the overall best record for a repeated species must win
// regardless of which gene produced it. Then a single pass keeps the first
// occurrence of each species name.
//
// Keying is on the species name only, not on accession or taxid.
// The input slice is not modified.
func Deduplicate(matches []Match) []Match {
	sorted := make([]Match, len(matches))
	copy(sorted, matches)

	sort.SliceStable(sorted, func(i, j int) bool {
		return rankBefore(&sorted[i].Candidate, &sorted[j].Candidate)
	})

	seen := make(map[string]interface{}, len(sorted))
	uniq := sorted[:0]
	for _, m := range sorted {
		if _, ok := seen[m.Species]; ok {
			continue
		}
		seen[m.Species] = struct{}{}
		uniq = append(uniq, m)
	}
	return uniq
}
