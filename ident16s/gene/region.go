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

// Package gene locates predicted 16S rRNA regions in a contig set and
// extracts their sequences.
package gene

import "fmt"

// Region is one predicted 16S rRNA occurrence. Start and End are 1-based
// inclusive positions on the contig. Ordinal is a 1-based counter over all
// regions found in one run, in discovery order.
type Region struct {
	SeqID  string
	Start  int
	End    int
	Strand byte // '+' or '-'

	Ordinal int
}

// Label returns the synthetic identifier under which the region's sequence
// is queried and reported, e.g. "16S_rRNA_2_Origin_NODE_1".
func (r *Region) Label() string {
	return fmt.Sprintf("16S_rRNA_%d_Origin_%s", r.Ordinal, r.SeqID)
}
