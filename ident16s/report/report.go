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

// Package report renders the final match lists as text.
//
// The formatter never reorders rows; ordering is entirely decided by the
// filtering and deduplication stages.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/zwets/ident-16s/ident16s/match"
)

// Options selects the output shape.
type Options struct {
	// emit all 8 columns instead of the species name only
	Long bool

	// suppress '#'-prefixed header/title lines
	NoHeaders bool
}

const header = "#species\ttaxids\taccession\tqlen/slen\talen\tnident\tscov\tpident"

// WriteFlat writes one row per match, for deduplicated output. In long
// mode a single column-header line precedes the data unless suppressed.
func WriteFlat(w io.Writer, matches []match.Match, opt Options) error {
	if opt.Long && !opt.NoHeaders {
		if _, err := fmt.Fprintln(w, header); err != nil {
			return err
		}
	}
	for i := range matches {
		if _, err := fmt.Fprintln(w, row(&matches[i], opt.Long)); err != nil {
			return err
		}
	}
	return nil
}

// WriteByGene writes each gene's matches as a block, in the order genes
// were discovered, each block preceded by a comment line naming the gene
// unless headers are suppressed. Genes without matches produce no output.
func WriteByGene(w io.Writer, results []match.GeneResult, opt Options) error {
	for i := range results {
		r := &results[i]
		if len(r.Matches) == 0 {
			continue
		}
		if !opt.NoHeaders {
			if _, err := fmt.Fprintf(w, "# %s\n", r.Gene); err != nil {
				return err
			}
		}
		for j := range r.Matches {
			if _, err := fmt.Fprintln(w, row(&r.Matches[j], opt.Long)); err != nil {
				return err
			}
		}
	}
	return nil
}

func row(m *match.Match, long bool) string {
	if !long {
		return m.Species
	}
	return strings.Join([]string{
		m.Species,
		m.TaxIDs,
		m.Accession,
		fmt.Sprintf("%d/%d", m.QueryLen, m.SubjectLen),
		strconv.Itoa(m.AlignLen),
		strconv.Itoa(m.NumIdentical),
		strconv.Itoa(m.SubjectCoverage()),
		strconv.FormatFloat(m.PercentIdent, 'f', -1, 64),
	}, "\t")
}
