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
	"io"

	"github.com/pkg/errors"
	"github.com/shenwei356/bio/seqio/fastx"
	"github.com/shenwei356/xopen"
)

// Contigs is an in-memory contig set, keeping the input record order.
type Contigs struct {
	records map[string]*fastx.Record
	order   []string
}

// ReadContigs reads a (possibly gzip/xz/zstd/bzip2-compressed) FASTA file
// into memory. The file may be "-" for stdin.
func ReadContigs(file string) (*Contigs, error) {
	reader, err := fastx.NewReader(nil, file, "")
	if err != nil {
		return nil, errors.Wrap(err, file)
	}
	defer reader.Close()

	contigs := &Contigs{records: make(map[string]*fastx.Record, 64)}

	var record *fastx.Record
	for {
		record, err = reader.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, errors.Wrap(err, file)
		}

		id := string(record.ID)
		if _, ok := contigs.records[id]; ok {
			return nil, errors.Errorf("duplicate sequence ID in %s: %s", file, id)
		}
		contigs.records[id] = record.Clone()
		contigs.order = append(contigs.order, id)
	}

	return contigs, nil
}

// Len returns the number of contigs.
func (c *Contigs) Len() int {
	return len(c.order)
}

// WriteFile materializes the contig set as an uncompressed FASTA file,
// for handing to tools that cannot read from a stream.
func (c *Contigs) WriteFile(file string) error {
	w, err := xopen.Wopen(file)
	if err != nil {
		return errors.Wrap(err, file)
	}

	for _, id := range c.order {
		c.records[id].FormatToWriter(w, 60)
	}

	return w.Close()
}

// Extract returns the nucleotide sequence of a region, reverse-complemented
// for minus-strand regions.
func (c *Contigs) Extract(r *Region) ([]byte, error) {
	record, ok := c.records[r.SeqID]
	if !ok {
		return nil, errors.Errorf("unknown contig: %s", r.SeqID)
	}
	if r.Start < 1 || r.End < r.Start || r.End > len(record.Seq.Seq) {
		return nil, errors.Errorf("region %d:%d out of range for contig %s (%d bp)",
			r.Start, r.End, r.SeqID, len(record.Seq.Seq))
	}

	sub := record.Seq.SubSeq(r.Start, r.End)
	if r.Strand == '-' {
		sub.RevComInplace()
	}
	return sub.Seq, nil
}
