package six_frame

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"sixsequences_go/config"
	"sixsequences_go/tools/orf_finder"
	"sixsequences_go/translate"
	"sixsequences_go/utils"
)

const example = "ATGTTTTAA"

func TestWriteFastaOutput(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteFastaOutput(&buf, translate.SixFrameTranslate(example), 0); err != nil {
		t.Fatal(err)
	}
	want := ">Frame_1\nMF*\n>Frame_2\nLKH\n>Frame_3\nCF\n>Frame_4\n*N\n>Frame_5\nVL\n>Frame_6\nKT\n"
	if buf.String() != want {
		t.Errorf("WriteFastaOutput =\n%q\nwant\n%q", buf.String(), want)
	}
}

func TestWriteFastaOutputEmptyAndWrapped(t *testing.T) {
	var buf bytes.Buffer
	WriteFastaOutput(&buf, translate.SixFrameTranslate(""), 0)
	if buf.String() != ">Frame_1\n\n>Frame_2\n\n>Frame_3\n\n>Frame_4\n\n>Frame_5\n\n>Frame_6\n\n" {
		t.Errorf("empty frames = %q", buf.String())
	}

	buf.Reset()
	frames := translate.Frames{"MKKKKK"}
	WriteFastaOutput(&buf, frames, 4)
	if !strings.HasPrefix(buf.String(), ">Frame_1\nMKKK\nKK\n>Frame_2\n") {
		t.Errorf("wrapped output = %q", buf.String())
	}
}

func TestComputeFrameStats(t *testing.T) {
	frames := translate.SixFrameTranslate(example)
	orfs := orf_finder.FindORFs(frames, len(example), 1)
	stats := ComputeFrameStats(frames, orfs)

	f1 := stats[0]
	if f1.Label != "Frame_1" || f1.Strand != "+" || f1.Offset != 0 {
		t.Errorf("frame 1 identity = %+v", f1)
	}
	if f1.Length != 3 || f1.Stops != 1 || f1.LongestOpen != 2 || f1.ORFs != 1 {
		t.Errorf("frame 1 stats = %+v", f1)
	}
	if f1.MeanORF != 2 || f1.StdORF != 0 {
		t.Errorf("frame 1 ORF stats = %v/%v, want 2/0", f1.MeanORF, f1.StdORF)
	}
	if len(f1.StopPositions) != 1 || f1.StopPositions[0] != 2 {
		t.Errorf("frame 1 stop positions = %v", f1.StopPositions)
	}
	if f1.Composition['M'] != 1 || f1.Composition['F'] != 1 || f1.Composition['*'] != 1 {
		t.Errorf("frame 1 composition = %v", f1.Composition)
	}

	f4 := stats[3]
	if f4.Strand != "-" || f4.Offset != 1 || f4.Stops != 1 || f4.LongestOpen != 1 || f4.ORFs != 0 {
		t.Errorf("frame 4 stats = %+v", f4)
	}
}

func TestAnalyzeFrameUnknownAndORFSpread(t *testing.T) {
	s := analyzeFrame("MXX*AB", []float64{2, 4, 6})
	if s.Unknown != 2 || s.Stops != 1 || s.LongestOpen != 3 {
		t.Errorf("analyzeFrame = %+v", s)
	}
	if s.MeanORF != 4 || s.StdORF != 2 {
		t.Errorf("ORF mean/std = %v/%v, want 4/2", s.MeanORF, s.StdORF)
	}
}

func TestWriteFrameCSV(t *testing.T) {
	frames := translate.SixFrameTranslate(example)
	var buf bytes.Buffer
	if err := WriteFrameCSV(&buf, ComputeFrameStats(frames, nil)); err != nil {
		t.Fatal(err)
	}
	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 7 {
		t.Fatalf("got %d rows, want header + 6", len(rows))
	}
	if rows[1][0] != "Frame_1" || rows[1][3] != "3" || rows[1][4] != "1" {
		t.Errorf("row 1 = %v", rows[1])
	}
	if rows[6][0] != "Frame_6" || rows[6][1] != "-" || rows[6][2] != "2" {
		t.Errorf("row 6 = %v", rows[6])
	}
}

func TestWriteHTMLReport(t *testing.T) {
	frames := translate.SixFrameTranslate(example)
	data := ReportData{
		Title:     "Run <1>",
		Sequence:  example,
		SeqReport: common.InspectSequence(example),
		Frames:    frames,
		Stats:     ComputeFrameStats(frames, nil),
		SVGComp:   "<svg id=\"comp\"></svg>",
		Version:   "v0",
	}
	var buf bytes.Buffer
	if err := WriteHTMLReport(&buf, data); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		"<title>Run &lt;1&gt;</title>",
		"<pre class=\"seq\">ATGTTTTAA\n</pre>",
		"<div class=\"frame-title\">Frame 1</div>",
		"<pre class=\"seq\">MF*</pre>",
		"<div class=\"frame-title\">Frame 6</div>",
		"<pre class=\"seq\">KT</pre>",
		"<svg id=\"comp\"></svg>",
		"Generated by SixSequences v0",
		"</html>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q", want)
		}
	}
	if strings.Contains(out, "Stop Codon Positions") {
		t.Error("empty stop chart section should be omitted")
	}
}

func TestCharts(t *testing.T) {
	frames := translate.SixFrameTranslate("ATGTTTTAAGGCTAGCCCTGAATG")
	stats := ComputeFrameStats(frames, nil)

	comp, err := GenerateCompositionPlot(stats, 6, 3)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(comp, "<svg") {
		t.Error("composition plot is not SVG")
	}
	stops, err := GenerateStopPositionPlot(stats, 6, 3)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stops, "<svg") {
		t.Error("stop plot is not SVG")
	}

	empty := ComputeFrameStats(translate.SixFrameTranslate(""), nil)
	if s, err := GenerateCompositionPlot(empty, 6, 3); err != nil || strings.Contains(s, "<svg") {
		t.Errorf("empty composition plot = %q, %v", s, err)
	}
	if s, err := GenerateStopPositionPlot(empty, 6, 3); err != nil || strings.Contains(s, "<svg") {
		t.Errorf("empty stop plot = %q, %v", s, err)
	}
}

func TestIntegerTicks(t *testing.T) {
	ticks := IntegerTicks{}.Ticks(0.5, 3.5)
	if len(ticks) != 3 || ticks[0].Label != "1" || ticks[2].Label != "3" {
		t.Errorf("ticks = %+v", ticks)
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "sample.fasta")
	if err := os.WriteFile(in, []byte(">sample\natgttt\ntaa\n"), 0644); err != nil {
		t.Fatal(err)
	}
	prefix := filepath.Join(dir, "out")

	cfg := config.DefaultReportConfig()
	cfg.MinORF = 1
	cfg.Charts = false

	var summary bytes.Buffer
	res, err := Run(Options{InFile: in, OutPrefix: prefix, Report: cfg, CSV: true, ORFs: true, Stdout: &summary})
	if err != nil {
		t.Fatal(err)
	}
	if res.Sequence != example || res.Frames[0] != "MF*" || res.Frames[1] != "LKH" {
		t.Errorf("result = %+v", res)
	}
	if len(res.Outputs) != 5 {
		t.Errorf("outputs = %v, want 5 files", res.Outputs)
	}
	for _, suffix := range []string{"_sixframes.fasta", "_report.html", "_frames.csv", "_orfs.gff3", "_orfs.faa"} {
		if _, err := os.Stat(prefix + suffix); err != nil {
			t.Errorf("missing output %s: %v", suffix, err)
		}
	}

	fasta, _ := os.ReadFile(prefix + "_sixframes.fasta")
	if !strings.HasPrefix(string(fasta), ">Frame_1\nMF*\n>Frame_2\nLKH\n") {
		t.Errorf("fasta = %q", fasta)
	}
	gff, _ := os.ReadFile(prefix + "_orfs.gff3")
	if !strings.Contains(string(gff), "sample\tSixSequences\tORF\t1\t9\t") {
		t.Errorf("gff3 = %q", gff)
	}
	if !strings.Contains(summary.String(), "Frame_1") {
		t.Errorf("summary = %q", summary.String())
	}
}

func TestRunNoHTMLAndMissingInput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "empty.fasta")
	os.WriteFile(in, []byte(">nothing\n"), 0644)
	prefix := filepath.Join(dir, "e")

	res, err := Run(Options{InFile: in, OutPrefix: prefix, Report: config.DefaultReportConfig(), NoHTML: true, Stdout: &bytes.Buffer{}})
	if err != nil {
		t.Fatal(err)
	}
	for i, f := range res.Frames {
		if f != "" {
			t.Errorf("frame %d = %q, want empty", i+1, f)
		}
	}
	if _, err := os.Stat(prefix + "_report.html"); !os.IsNotExist(err) {
		t.Error("HTML written despite NoHTML")
	}

	if _, err := Run(Options{InFile: filepath.Join(dir, "missing.fasta"), OutPrefix: prefix, Report: config.DefaultReportConfig()}); err == nil {
		t.Error("expected error for missing input")
	}
	if _, err := Run(Options{}); err == nil {
		t.Error("expected error for empty options")
	}
}

func TestSequenceID(t *testing.T) {
	cases := map[string]string{
		"/data/chr1.fasta":    "chr1",
		"reads.fa.gz":         "reads",
		"plain":               "plain",
		"dir/sample.v2.fasta": "sample.v2",
	}
	for in, want := range cases {
		if got := sequenceID(in); got != want {
			t.Errorf("sequenceID(%q) = %q, want %q", in, got, want)
		}
	}
}
