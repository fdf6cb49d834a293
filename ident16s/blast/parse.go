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

package blast

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/zwets/ident-16s/ident16s/match"
	"github.com/zwets/ident-16s/ident16s/util"
)

const ncols = 8

// parseTable reads the tabular hit records blastn was asked for via
// outFormat. The schema is validated strictly: a wrong column count or a
// non-numeric numeric field aborts the run rather than being skipped,
// since skipping records would silently distort the ranking.
func parseTable(r io.Reader) ([]match.Candidate, error) {
	var cands []match.Candidate

	items := make([]string, ncols)
	var line string
	var err error

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line = strings.TrimRight(scanner.Text(), "\r\n")
		if line == "" || line[0] == '#' {
			continue
		}

		util.SplitNByByte(line, '\t', ncols, &items)
		if len(items) < ncols {
			return nil, errors.Errorf("hit record has %d columns, expected %d: %s", len(items), ncols, line)
		}

		c := match.Candidate{
			Species:   items[0],
			TaxIDs:    items[1],
			Accession: items[2],
		}
		if c.QueryLen, err = strconv.Atoi(items[3]); err != nil {
			return nil, errors.Errorf("non-numeric query length %q: %s", items[3], line)
		}
		if c.SubjectLen, err = strconv.Atoi(items[4]); err != nil {
			return nil, errors.Errorf("non-numeric subject length %q: %s", items[4], line)
		}
		if c.AlignLen, err = strconv.Atoi(items[5]); err != nil {
			return nil, errors.Errorf("non-numeric alignment length %q: %s", items[5], line)
		}
		if c.NumIdentical, err = strconv.Atoi(items[6]); err != nil {
			return nil, errors.Errorf("non-numeric identity count %q: %s", items[6], line)
		}
		if c.PercentIdent, err = strconv.ParseFloat(items[7], 64); err != nil {
			return nil, errors.Errorf("non-numeric percent identity %q: %s", items[7], line)
		}

		cands = append(cands, c)
	}
	if err = scanner.Err(); err != nil {
		return nil, err
	}

	return cands, nil
}
