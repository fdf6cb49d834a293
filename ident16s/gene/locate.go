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

package gene

import (
	"bufio"
	"bytes"
	"io"
	"os/exec"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/zwets/ident-16s/ident16s/util"
)

// featureName is the annotation the locator's predictions are restricted to.
const featureName = "16S_rRNA"

// Locator wraps the barrnap rRNA predictor.
type Locator struct {
	// path or name of the barrnap executable
	Exe string

	// barrnap kingdom, "bac" for bacterial rRNA
	Kingdom string

	Threads int
}

// Check reports an error naming the missing dependency when the predictor
// executable is not available.
func (l *Locator) Check() error {
	if _, err := exec.LookPath(l.Exe); err != nil {
		return errors.Wrapf(err, "missing dependency: %s", l.Exe)
	}
	return nil
}

// Locate runs the predictor on a FASTA file and returns the 16S regions
// it reports, in output order (roughly genomic position), with ordinals
// assigned 1..n.
func (l *Locator) Locate(fastaFile string) ([]Region, error) {
	cmd := exec.Command(l.Exe,
		"--kingdom", l.Kingdom,
		"--threads", strconv.Itoa(l.Threads),
		"--quiet",
		fastaFile)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, errors.Wrap(err, l.Exe)
	}
	if err = cmd.Start(); err != nil {
		return nil, errors.Wrapf(err, "failed to run %s", l.Exe)
	}

	regions, perr := parseGFF(stdout)
	if perr != nil {
		// the predictor may still be writing; drain the pipe or Wait
		// can block on a child stuck on a full pipe buffer
		io.Copy(io.Discard, stdout)
	}

	if err = cmd.Wait(); err != nil {
		return nil, errors.Wrapf(err, "%s failed: %s", l.Exe, strings.TrimSpace(stderr.String()))
	}
	if perr != nil {
		return nil, errors.Wrapf(perr, "failed to parse %s output", l.Exe)
	}
	return regions, nil
}

// parseGFF reads GFF3 records and keeps those annotated as 16S rRNA.
// A malformed record is a fatal error, not something to skip: silently
// dropping predictions would yield misleadingly confident results.
func parseGFF(r io.Reader) ([]Region, error) {
	var regions []Region

	items := make([]string, 9)
	var line string
	var err error

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line = strings.TrimRight(scanner.Text(), "\r\n")
		if line == "" || line[0] == '#' {
			continue
		}

		util.SplitNByByte(line, '\t', 9, &items)
		if len(items) < 9 {
			return nil, errors.Errorf("GFF record has %d columns, expected 9: %s", len(items), line)
		}

		if !strings.Contains(items[8], "Name="+featureName) {
			continue
		}

		region := Region{SeqID: items[0], Strand: '+'}
		if region.Start, err = strconv.Atoi(items[3]); err != nil {
			return nil, errors.Errorf("non-numeric start position %q: %s", items[3], line)
		}
		if region.End, err = strconv.Atoi(items[4]); err != nil {
			return nil, errors.Errorf("non-numeric end position %q: %s", items[4], line)
		}
		if items[6] == "-" {
			region.Strand = '-'
		}

		region.Ordinal = len(regions) + 1
		regions = append(regions, region)
	}
	if err = scanner.Err(); err != nil {
		return nil, err
	}

	return regions, nil
}
