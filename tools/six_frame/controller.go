// Package six_frame translates a FASTA nucleotide sequence in all six reading
// frames and writes the protein FASTA, HTML report and optional extras.
package six_frame

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/op/go-logging"

	"sixsequences_go/config"
	"sixsequences_go/tools/orf_finder"
	"sixsequences_go/translate"
	"sixsequences_go/utils"
)

var log = logging.MustGetLogger("six_frame")

type Options struct {
	InFile    string
	OutPrefix string
	Report    config.ReportConfig
	CSV       bool // write <prefix>_frames.csv
	ORFs      bool // write <prefix>_orfs.gff3 and <prefix>_orfs.faa
	NoHTML    bool
	Stdout    io.Writer // summary destination, os.Stdout when nil
}

// Result lists what a run produced.
type Result struct {
	Sequence string
	Frames   translate.Frames
	Stats    [translate.NumFrames]FrameStats
	ORFs     []orf_finder.ORF
	Outputs  []string
}

// Run executes a full six-frame translation. Any I/O failure aborts the run
// and is returned to the caller.
func Run(opts Options) (*Result, error) {
	if opts.InFile == "" {
		return nil, fmt.Errorf("input file is required")
	}
	if opts.OutPrefix == "" {
		opts.OutPrefix = "sixsequences"
	}
	if err := opts.Report.Validate(); err != nil {
		return nil, err
	}
	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	log.Noticef("Reading DNA/RNA sequence from: %s", opts.InFile)
	seq, err := common.ReadSequence(opts.InFile)
	if err != nil {
		return nil, err
	}
	seqReport := common.InspectSequence(seq)
	log.Noticef("Sequence length: %d bp", seqReport.Length)
	if seqReport.Length == 0 {
		log.Warning("Input contains no sequence; all frames will be empty")
	}
	if seqReport.Other > 0 {
		log.Warningf("%d non-ACGT bases found; affected codons translate to X", seqReport.Other)
	}

	res := &Result{Sequence: seq}
	res.Frames = translate.SixFrameTranslate(seq)

	minORF := opts.Report.MinORF
	res.ORFs = orf_finder.FindORFs(res.Frames, len(seq), minORF)
	res.Stats = ComputeFrameStats(res.Frames, res.ORFs)

	fastaOut := opts.OutPrefix + "_sixframes.fasta"
	if err := writeFile(fastaOut, func(w io.Writer) error {
		return WriteFastaOutput(w, res.Frames, opts.Report.FastaWrap)
	}); err != nil {
		return nil, err
	}
	res.Outputs = append(res.Outputs, fastaOut)
	log.Infof("Six-frame translation written to: %s", fastaOut)

	if !opts.NoHTML {
		data := ReportData{
			Title:        opts.Report.Title,
			Sequence:     seq,
			SeqReport:    seqReport,
			Frames:       res.Frames,
			Stats:        res.Stats,
			SequenceWrap: opts.Report.SequenceWrap,
			Version:      config.Six_Frame,
		}
		if opts.Report.Charts {
			data.SVGComp, data.SVGStops = renderCharts(res.Stats, opts.Report.ChartWidth, opts.Report.ChartHeight)
		}

		htmlOut := opts.OutPrefix + "_report.html"
		if err := writeFile(htmlOut, func(w io.Writer) error {
			return WriteHTMLReport(w, data)
		}); err != nil {
			return nil, err
		}
		res.Outputs = append(res.Outputs, htmlOut)
		log.Infof("HTML report generated: %s", htmlOut)
	}

	if opts.CSV {
		csvOut := opts.OutPrefix + "_frames.csv"
		if err := writeFile(csvOut, func(w io.Writer) error {
			return WriteFrameCSV(w, res.Stats)
		}); err != nil {
			return nil, err
		}
		res.Outputs = append(res.Outputs, csvOut)
		log.Infof("Frame statistics written to: %s", csvOut)
	}

	if opts.ORFs {
		seqID := sequenceID(opts.InFile)
		gffOut := opts.OutPrefix + "_orfs.gff3"
		if err := writeFile(gffOut, func(w io.Writer) error {
			return orf_finder.WriteGFF3(w, seqID, res.ORFs)
		}); err != nil {
			return nil, err
		}
		faaOut := opts.OutPrefix + "_orfs.faa"
		if err := writeFile(faaOut, func(w io.Writer) error {
			return orf_finder.WriteFaa(w, seqID, res.ORFs, 60)
		}); err != nil {
			return nil, err
		}
		res.Outputs = append(res.Outputs, gffOut, faaOut)
		log.Infof("Wrote %d ORFs (>= %d aa) to %s and %s", len(res.ORFs), minORF, gffOut, faaOut)
	}

	PrintSummary(stdout, seqReport, res.Frames, res.Stats, res.Outputs)
	return res, nil
}

// renderCharts draws both report charts concurrently. A failing chart is
// replaced by a placeholder rather than failing the run.
func renderCharts(stats [translate.NumFrames]FrameStats, width, height float64) (string, string) {
	var svgComp, svgStops string
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		if s, err := GenerateCompositionPlot(stats, width, height); err == nil {
			svgComp = s
		} else {
			log.Errorf("Failed to generate composition plot: %v", err)
			svgComp = graphUnavailable
		}
	}()

	go func() {
		defer wg.Done()
		if s, err := GenerateStopPositionPlot(stats, width, height); err == nil {
			svgStops = s
		} else {
			log.Errorf("Failed to generate stop position plot: %v", err)
			svgStops = graphUnavailable
		}
	}()

	wg.Wait()
	return svgComp, svgStops
}

// writeFile creates path and hands a buffered writer to write.
func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	writer := bufio.NewWriter(f)
	if err := write(writer); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := writer.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

// sequenceID derives a GFF3 seqid from the input file name.
func sequenceID(inFile string) string {
	base := filepath.Base(inFile)
	base = strings.TrimSuffix(base, ".gz")
	return strings.TrimSuffix(base, filepath.Ext(base))
}
