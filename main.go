/*

SixSequences translates a DNA/RNA sequence into proteins across all six
reading frames and writes a protein FASTA file and an HTML report.

The basic usage looks like this:

	sixsequences translate -i input.fasta -p sample

, or, with the positional form of the original tool:

	sixsequences input.fasta sample

To print the genetic code used for translation:

	sixsequences codon_table

*/
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/op/go-logging"
	"gopkg.in/alecthomas/kingpin.v2"

	"sixsequences_go/benchmark"
	version_control "sixsequences_go/config"
	"sixsequences_go/tools/codon_table"
	"sixsequences_go/tools/six_frame"
	"sixsequences_go/utils"
)

var log = logging.MustGetLogger("sixsequences")

// command-line options
var (
	app = kingpin.New("sixsequences", "Translate DNA/RNA into proteins across six reading frames").Version(versionInfo())

	// global
	logLevel = app.Flag("loglevel", "set loglevel "+
		"('critical', 'error', 'warning', 'notice', 'info', 'debug')").
		Default("notice").
		Enum("critical", "error", "warning", "notice", "info", "debug")
	logFile      = app.Flag("log", "write log to a file").String()
	benchmarking = app.Flag("benchmark", "display computational resource usage "+
		"and pertinent operating system information").Bool()

	// translate
	translateCmd = app.Command("translate", "six-frame translation of a FASTA file").Default()
	tf           = translateFlags{
		InFile:     translateCmd.Flag("in_file", "input FASTA file (plain or gzip)").Short('i').ExistingFile(),
		OutPrefix:  translateCmd.Flag("out_prefix", "output file prefix (default: sixsequences)").Short('p').String(),
		InArg:      translateCmd.Arg("input", "input FASTA file, alternative to -in_file").ExistingFile(),
		PrefixArg:  translateCmd.Arg("prefix", "output prefix, alternative to -out_prefix").String(),
		ConfigFile: translateCmd.Flag("config", "YAML report settings").ExistingFile(),
		Wrap:       translateCmd.Flag("wrap", "residues per line in the FASTA output, 0 for one line (default from config)").Default("-1").Int(),
		MinORF:     translateCmd.Flag("min_orf", "minimum ORF length in amino acids (default from config)").Default("0").Int(),
		CSV:        translateCmd.Flag("csv", "write per-frame statistics to <prefix>_frames.csv").Bool(),
		ORFs:       translateCmd.Flag("orfs", "write ORFs to <prefix>_orfs.gff3 and <prefix>_orfs.faa").Bool(),
		NoHTML:     translateCmd.Flag("no_html", "skip the HTML report").Bool(),
		NoCharts:   translateCmd.Flag("no_charts", "omit charts from the HTML report").Bool(),
	}

	// codon_table
	tableCmd = app.Command("codon_table", "print the standard genetic code")
)

type translateFlags struct {
	InFile, OutPrefix *string
	InArg, PrefixArg  *string
	ConfigFile        *string
	Wrap, MinORF      *int
	CSV, ORFs         *bool
	NoHTML, NoCharts  *bool
}

func versionInfo() string {
	var b strings.Builder
	fmt.Fprintf(&b, "SixSequences %s\n", version_control.Main_version)
	fmt.Fprintf(&b, "\tSix Frame:\t%s\n", version_control.Six_Frame)
	fmt.Fprintf(&b, "\tORF Finder:\t%s\n", version_control.ORF_Finder)
	fmt.Fprintf(&b, "\tCodon Table:\t%s\n", version_control.Codon_Table)
	fmt.Fprintf(&b, "\tBenchmark:\t%s", version_control.Benchmark)
	return b.String()
}

// resolveOptions merges flags, positional arguments and the config file.
// Flags win over positional arguments, which win over the config file.
func resolveOptions(f translateFlags) (six_frame.Options, error) {
	var opts six_frame.Options

	opts.InFile = *f.InFile
	if opts.InFile == "" {
		opts.InFile = *f.InArg
	}
	if opts.InFile == "" {
		return opts, fmt.Errorf("an input FASTA file is required (-in_file or positional)")
	}

	opts.OutPrefix = *f.OutPrefix
	if opts.OutPrefix == "" {
		opts.OutPrefix = *f.PrefixArg
	}
	if opts.OutPrefix == "" {
		opts.OutPrefix = "sixsequences"
	}

	cfg, err := version_control.LoadReportConfig(*f.ConfigFile)
	if err != nil {
		return opts, err
	}
	if *f.Wrap >= 0 {
		cfg.FastaWrap = *f.Wrap
	}
	if *f.MinORF > 0 {
		cfg.MinORF = *f.MinORF
	}
	if *f.NoCharts {
		cfg.Charts = false
	}
	if err := cfg.Validate(); err != nil {
		return opts, err
	}

	opts.Report = cfg
	opts.CSV = *f.CSV
	opts.ORFs = *f.ORFs
	opts.NoHTML = *f.NoHTML
	return opts, nil
}

func runTranslate() error {
	opts, err := resolveOptions(tf)
	if err != nil {
		return err
	}
	_, err = six_frame.Run(opts)
	return err
}

// Main controller
func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	closeLog, err := common.SetupLogging(*logLevel, *logFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	log.Info("Command line:", os.Args)

	// Tool execution wrapper
	run := func() error {
		switch command {
		case translateCmd.FullCommand():
			return runTranslate()
		case tableCmd.FullCommand():
			return codon_table.Write(os.Stdout)
		default:
			return fmt.Errorf("unknown tool: %s", command)
		}
	}

	if *benchmarking {
		label := fmt.Sprintf("sixsequences %s", strings.Join(os.Args[1:], " "))
		_, err = benchmark.Run(label, run)
	} else {
		err = run()
	}

	if err != nil {
		log.Error(err)
		closeLog()
		os.Exit(1)
	}
	closeLog()
}
