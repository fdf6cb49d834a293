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

// Package match holds the hit filtering, ranking and deduplication logic.
package match

// Candidate is one raw alignment record reported by the reference matcher
// for a single query sequence.
type Candidate struct {
	Species   string // scientific name of the subject
	TaxIDs    string // subject taxonomy id(s), semicolon separated as reported
	Accession string // subject accession.version

	QueryLen     int // query sequence length
	SubjectLen   int // subject (reference) sequence length
	AlignLen     int // alignment length
	NumIdentical int // number of identical bases

	PercentIdent float64
}

// SubjectCoverage returns the percentage of the reference sequence spanned
// by the alignment, rounded down. The reference length is used, not the
// query length: a contaminated or chimeric query must not inflate coverage.
func (c *Candidate) SubjectCoverage() int {
	if c.SubjectLen <= 0 {
		return 0
	}
	return c.AlignLen * 100 / c.SubjectLen
}

// Match is a candidate that survived filtering, tagged with the label of
// the gene it was found for.
type Match struct {
	Candidate

	Gene string
}

// GeneResult is the ranked, truncated hit list for one predicted gene.
type GeneResult struct {
	Gene    string
	Matches []Match
}

// rankBefore reports whether a outranks b.
//
// The number of identical bases dominates, as it jointly reflects coverage
// and identity: a short 100%-identity fragment must not outrank a
// near-full-length hit with slightly lower identity.
func rankBefore(a, b *Candidate) bool {
	if a.NumIdentical != b.NumIdentical {
		return a.NumIdentical > b.NumIdentical
	}
	if a.AlignLen != b.AlignLen {
		return a.AlignLen > b.AlignLen
	}
	return a.SubjectCoverage() > b.SubjectCoverage()
}
