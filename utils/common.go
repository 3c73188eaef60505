// Common package contains commonly used functions that benefit multiple tools
// Exporting these functions from the Common package reduces redundant code
package common

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("common")

// CleanSequence drops every non-letter character and uppercases the rest.
func CleanSequence(seq string) string {
	var b strings.Builder
	b.Grow(len(seq))
	for i := 0; i < len(seq); i++ {
		c := seq[i]
		switch {
		case c >= 'A' && c <= 'Z':
			b.WriteByte(c)
		case c >= 'a' && c <= 'z':
			b.WriteByte(c - 'a' + 'A')
		}
	}
	return b.String()
}

// OpenFastaReader opens a plain or gzip-compressed FASTA file. Compression is
// detected from the magic bytes, not the extension. The returned closer
// releases both the gzip stream and the file.
func OpenFastaReader(file string) (io.Reader, func() error, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open file: %w", err)
	}

	br := bufio.NewReader(f)
	magic, _ := br.Peek(2)
	if len(magic) == 2 && magic[0] == 0x1F && magic[1] == 0x8B {
		gr, err := gzip.NewReader(br)
		if err != nil {
			f.Close()
			return nil, nil, fmt.Errorf("failed to open gzip reader: %w", err)
		}
		log.Debugf("%s is gzip-compressed", file)
		closer := func() error {
			gr.Close()
			return f.Close()
		}
		return gr, closer, nil
	}
	return br, f.Close, nil
}

// ParseSequence concatenates every non-header line of a FASTA stream into a
// single cleaned, upper-case sequence. Header lines start with '>'.
func ParseSequence(r io.Reader) (string, error) {
	var seq strings.Builder
	headers := 0

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 64*1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, ">") {
			headers++
			continue
		}
		seq.WriteString(CleanSequence(line))
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("scanner error: %w", err)
	}
	if headers > 1 {
		log.Warningf("%d FASTA records found; sequences are concatenated into one", headers)
	}
	return seq.String(), nil
}

// ReadSequence reads a FASTA file (optionally gzip-compressed) into a single
// cleaned sequence.
func ReadSequence(file string) (string, error) {
	r, closer, err := OpenFastaReader(file)
	if err != nil {
		return "", err
	}
	defer closer()

	seq, err := ParseSequence(r)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", file, err)
	}
	return seq, nil
}

// SequenceReport summarises the base content of a cleaned sequence.
type SequenceReport struct {
	Length     int
	A, C, G, T int
	Other      int
	GCPercent  float64
}

// InspectSequence counts bases in seq. Anything other than A/C/G/T is Other.
func InspectSequence(seq string) SequenceReport {
	r := SequenceReport{Length: len(seq)}
	for i := 0; i < len(seq); i++ {
		switch seq[i] {
		case 'A':
			r.A++
		case 'C':
			r.C++
		case 'G':
			r.G++
		case 'T':
			r.T++
		default:
			r.Other++
		}
	}
	if r.Length > 0 {
		r.GCPercent = float64(r.G+r.C) / float64(r.Length) * 100
	}
	return r
}
