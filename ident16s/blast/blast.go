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

// Package blast wraps the blastn executable as the reference matcher.
package blast

import (
	"bytes"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/shenwei356/xopen"

	"github.com/zwets/ident-16s/ident16s/match"
)

// outFormat is the tabular output requested from blastn. Parsing in
// parseTable depends on these columns, in this order.
const outFormat = "6 sscinames staxids saccver qlen slen length nident pident"

// Blastn runs nucleotide queries against a reference database.
//
// The percent identity cutoff is applied by blastn itself as a hard
// pre-filter; subject coverage filtering is never delegated to it.
type Blastn struct {
	// path or name of the blastn executable
	Exe string

	// name of the reference database, resolved by blastn via BLASTDB
	DB string

	PercIdentity float64
	Threads      int
}

// Check verifies the executable and the reference database are available,
// naming the missing dependency. The database is probed with blastdbcmd
// since database names resolve through the BLASTDB search path.
func (b *Blastn) Check() error {
	if _, err := exec.LookPath(b.Exe); err != nil {
		return errors.Wrapf(err, "missing dependency: %s", b.Exe)
	}

	dbCmd := "blastdbcmd"
	if i := strings.LastIndex(b.Exe, "/"); i >= 0 {
		dbCmd = b.Exe[:i+1] + dbCmd
	}
	if _, err := exec.LookPath(dbCmd); err != nil {
		return errors.Wrapf(err, "missing dependency: %s", dbCmd)
	}

	cmd := exec.Command(dbCmd, "-db", b.DB, "-info")
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return errors.Errorf("missing dependency: reference database %s: %s",
			b.DB, strings.TrimSpace(stderr.String()))
	}
	return nil
}

// Search queries one gene sequence, read from queryFile, against the
// reference database and returns the raw candidates in blastn's output
// order.
func (b *Blastn) Search(queryFile string) ([]match.Candidate, error) {
	outFile := queryFile + ".hits"

	cmd := exec.Command(b.Exe,
		"-query", queryFile,
		"-db", b.DB,
		"-perc_identity", strconv.FormatFloat(b.PercIdentity, 'f', -1, 64),
		"-num_threads", strconv.Itoa(b.Threads),
		"-outfmt", outFormat,
		"-out", outFile)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, errors.Wrapf(err, "%s failed: %s", b.Exe, strings.TrimSpace(stderr.String()))
	}

	fh, err := xopen.Ropen(outFile)
	if err != nil {
		return nil, errors.Wrap(err, outFile)
	}
	defer fh.Close()

	cands, err := parseTable(fh)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s output: %s", b.Exe, err)
	}
	return cands, nil
}
