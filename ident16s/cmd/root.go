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

// Package cmd is the command line surface of ident-16s.
package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/shenwei356/bio/seq"
	"github.com/spf13/cobra"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"github.com/zwets/ident-16s/ident16s/blast"
	"github.com/zwets/ident-16s/ident16s/gene"
	"github.com/zwets/ident-16s/ident16s/match"
	"github.com/zwets/ident-16s/ident16s/report"
)

// RootCmd is the one and only command of ident-16s.
var RootCmd = &cobra.Command{
	Use:   "ident-16s [flags] [FILE]",
	Short: "Identify bacterial species from 16S rRNA genes in a contig set",
	Long: `Identify bacterial species from 16S rRNA genes in a contig set

ident-16s predicts 16S rRNA gene regions in a (possibly compressed) FASTA
file (default stdin), matches each against a 16S reference database, and
reports the best match(es) per gene.

External dependencies:
  1. barrnap, for rRNA gene prediction.
  2. blastn and blastdbcmd (NCBI BLAST+), plus a nucleotide database with
     taxonomy information, by default NCBI's 16S_ribosomal_RNA.

Matches are filtered on subject coverage (-c) after blastn has applied the
percent identity cutoff (-p), ranked by descending (identical bases,
alignment length, subject coverage), and truncated to -m per gene. The
number of identical bases ranks first since it reflects both coverage and
identity; either alone would let a short perfect fragment beat a
near-full-length hit.

With -u/--unique, the per-gene lists are merged, re-ranked globally, and
collapsed to the single best match per distinct species name. Without it,
matches are reported per gene, each block preceded by a '# <gene>' line
(unless -H).

Output columns with -l/--long (tab-separated):

    1. species    Scientific name of the matched reference.
    2. taxids     Taxonomy ID(s) of the matched reference.
    3. accession  Accession of the matched reference sequence.
    4. qlen/slen  Query length / reference sequence length.
    5. alen       Alignment length.
    6. nident     Number of identical bases.
    7. scov       Reference (subject) coverage percentage: 100*alen/slen.
    8. pident     Percentage of identical bases over the alignment.

Without -l, only the species name is printed, one per line.

A gene without qualifying matches, or an input without predicted genes,
produces no output and is not an error.

`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		opt := getOptions(cmd)
		seq.ValidateSeq = false

		outFile := getFlagString(cmd, "out-file")

		var fhLog *os.File
		if opt.Log2File {
			fhLog = addLog(opt.LogFile, opt.Verbose)
		}
		outputLog := opt.Verbose || opt.Log2File

		timeStart := time.Now()
		defer func() {
			if outputLog {
				log.Info()
				log.Infof("elapsed time: %s", time.Since(timeStart))
			}
			if opt.Log2File {
				fhLog.Close()
			}
		}()

		// ---------------------------------------------------------------
		// options

		minCoverage := getFlagNonNegativeInt(cmd, "min-coverage")
		minIdentity := getFlagFloat64(cmd, "min-identity")
		if minIdentity < 0 || minIdentity > 100 {
			checkError(fmt.Errorf("invalid value of -p/--min-identity: %v (should be in range [0, 100])", minIdentity))
		}
		maxMatches := getFlagPositiveInt(cmd, "max-matches")

		unique := getFlagBool(cmd, "unique")
		long := getFlagBool(cmd, "long")
		noHeaders := getFlagBool(cmd, "no-headers")
		genesOnly := getFlagBool(cmd, "genes-only")

		if genesOnly && (unique || long) {
			checkError(fmt.Errorf("flag -g/--genes-only is incompatible with -u/--unique and -l/--long"))
		}

		fconf, err := loadFileConfig()
		checkError(err)

		db := getFlagString(cmd, "db")
		if !cmd.Flags().Changed("db") && fconf.DB != "" {
			db = fconf.DB
		}
		barrnapExe := getFlagString(cmd, "barrnap")
		if !cmd.Flags().Changed("barrnap") && fconf.Barrnap != "" {
			barrnapExe = fconf.Barrnap
		}
		blastnExe := getFlagString(cmd, "blastn")
		if !cmd.Flags().Changed("blastn") && fconf.Blastn != "" {
			blastnExe = fconf.Blastn
		}

		file := "-"
		if len(args) > 0 {
			file = args[0]
		}

		// ---------------------------------------------------------------
		// check the external dependencies before doing any work

		locator := &gene.Locator{Exe: barrnapExe, Kingdom: "bac", Threads: opt.NumCPUs}
		checkError(locator.Check())

		matcher := &blast.Blastn{Exe: blastnExe, DB: db, PercIdentity: minIdentity, Threads: opt.NumCPUs}
		if !genesOnly {
			checkError(matcher.Check())
		}

		// ---------------------------------------------------------------
		// output file handler

		outfh, gw, w, err := outStream(outFile, strings.HasSuffix(outFile, ".gz"), opt.CompressionLevel)
		checkError(err)
		defer func() {
			outfh.Flush()
			if gw != nil {
				gw.Close()
			}
			w.Close()
		}()

		// ---------------------------------------------------------------
		// read contigs and materialize them for barrnap

		if opt.Verbose {
			if isStdin(file) {
				log.Info("reading contigs from stdin ...")
			} else {
				log.Infof("reading contigs from %s ...", file)
			}
		}
		contigs, err := gene.ReadContigs(file)
		checkError(err)
		if opt.Verbose {
			log.Infof("%d contig(s) loaded", contigs.Len())
		}

		// scratch space owned by this run, removed on success, failure
		// and interruption
		tmpDir, err := os.MkdirTemp("", "ident-16s")
		checkError(err)
		cleanup := func() { os.RemoveAll(tmpDir) }
		defer cleanup()
		atExit(cleanup)

		chSignal := make(chan os.Signal, 1)
		signal.Notify(chSignal, os.Interrupt, syscall.SIGTERM)
		go func() {
			<-chSignal
			cleanup()
			os.Exit(1)
		}()

		scratch := filepath.Join(tmpDir, "contigs.fasta")
		checkError(contigs.WriteFile(scratch))

		// ---------------------------------------------------------------
		// predict gene regions

		if opt.Verbose {
			log.Infof("predicting rRNA genes with %s ...", barrnapExe)
		}
		regions, err := locator.Locate(scratch)
		checkError(err)
		if opt.Verbose {
			log.Infof("%d 16S rRNA gene(s) predicted", len(regions))
		}
		if len(regions) == 0 {
			return
		}

		if genesOnly {
			for i := range regions {
				r := &regions[i]
				s, err := contigs.Extract(r)
				checkError(err)
				fmt.Fprintf(outfh, ">%s\n%s\n", r.Label(), s)
			}
			return
		}

		// ---------------------------------------------------------------
		// per gene: extract, match, filter and rank

		// process bar
		var pbs *mpb.Progress
		var bar *mpb.Bar
		if opt.Verbose {
			pbs = mpb.New(mpb.WithWidth(40), mpb.WithOutput(os.Stderr))
			bar = pbs.AddBar(int64(len(regions)),
				mpb.PrependDecorators(
					decor.Name("processed genes: ", decor.WC{W: len("processed genes: "), C: decor.DindentRight}),
					decor.CountersNoUnit("%d / %d", decor.WCSyncWidth),
				),
				mpb.AppendDecorators(
					decor.OnComplete(decor.Name(""), ". done"),
				),
			)
		}

		results := make([]match.GeneResult, 0, len(regions))
		var nMatches int
		for i := range regions {
			r := &regions[i]

			s, err := contigs.Extract(r)
			checkError(err)

			queryFile := filepath.Join(tmpDir, fmt.Sprintf("gene_%d.fasta", r.Ordinal))
			checkError(os.WriteFile(queryFile, []byte(fmt.Sprintf(">%s\n%s\n", r.Label(), s)), 0644))

			cands, err := matcher.Search(queryFile)
			checkError(err)

			kept := match.FilterRank(cands, minCoverage, maxMatches)
			matches := make([]match.Match, len(kept))
			for j, c := range kept {
				matches[j] = match.Match{Candidate: c, Gene: r.Label()}
			}
			nMatches += len(matches)
			results = append(results, match.GeneResult{Gene: r.Label(), Matches: matches})

			if opt.Verbose {
				bar.Increment()
			}
		}
		if opt.Verbose {
			pbs.Wait()
		}
		if outputLog {
			log.Infof("%d match(es) passed the filters", nMatches)
		}

		// ---------------------------------------------------------------
		// report

		ropt := report.Options{Long: long, NoHeaders: noHeaders}
		if unique {
			all := make([]match.Match, 0, nMatches)
			for i := range results {
				all = append(all, results[i].Matches...)
			}
			checkError(report.WriteFlat(outfh, match.Deduplicate(all), ropt))
		} else {
			checkError(report.WriteByGene(outfh, results, ropt))
		}
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	RootCmd.Flags().IntP("min-coverage", "c", 60,
		"minimum percentage of the reference covered by the alignment")
	RootCmd.Flags().Float64P("min-identity", "p", 98.0,
		"minimum percent identity, applied by blastn as a hard cutoff")
	RootCmd.Flags().IntP("max-matches", "m", 1,
		"maximum number of matches reported per gene")
	RootCmd.Flags().BoolP("unique", "u", false,
		"report only the globally best match per distinct species")
	RootCmd.Flags().BoolP("long", "l", false,
		"tab-separated output with all columns, instead of species names only")
	RootCmd.Flags().BoolP("no-headers", "H", false,
		"suppress header and gene title lines")
	RootCmd.Flags().BoolP("genes-only", "g", false,
		"only output the predicted 16S rRNA gene sequences, do no matching")

	RootCmd.Flags().StringP("db", "d", "16S_ribosomal_RNA",
		"name of the reference BLAST database (must have taxonomy attached)")
	RootCmd.Flags().String("barrnap", "barrnap", "path to the barrnap executable")
	RootCmd.Flags().String("blastn", "blastn", "path to the blastn executable")

	RootCmd.Flags().StringP("out-file", "o", "-",
		`out file ("-" for stdout, suffix .gz for gzipped out)`)
	RootCmd.Flags().IntP("threads", "j", 0, "number of CPUs to use (0 for all)")
	RootCmd.Flags().BoolP("quiet", "q", false, "do not print any verbose information")
	RootCmd.Flags().String("log", "", "log file (also keeps verbose messages)")
}
