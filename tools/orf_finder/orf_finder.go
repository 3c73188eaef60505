// Package orf_finder locates open reading frames in six-frame translations
// and writes them as GFF3 features and protein FASTA.
package orf_finder

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/op/go-logging"

	"sixsequences_go/translate"
)

var log = logging.MustGetLogger("orf_finder")

type ORF struct {
	Start     int    // 0-based, forward-strand nucleotide coordinate
	End       int    // exclusive
	Strand    string // "+" or "-"
	Frame     int    // 1..3 forward, -1..-3 reverse
	Length_aa int    // residues, stop excluded
	Partial   bool   // no stop codon before the end of the sequence
	Protein   string
}

// FindORFs scans every frame for stretches that begin with M and run to the
// next stop. Scanning resumes after each stop, so nested starts inside an ORF
// are not reported separately. ORFs shorter than minLen residues are skipped.
func FindORFs(frames translate.Frames, seqLen int, minLen int) []ORF {
	var orfs []ORF
	for i, protein := range frames {
		offset := frames.Offset(i)
		strand := frames.Strand(i)
		frame := offset + 1
		if strand == "-" {
			frame = -frame
		}

		for j := 0; j < len(protein); j++ {
			if protein[j] != 'M' {
				continue
			}
			k := strings.IndexByte(protein[j:], translate.Stop)
			partial := k < 0
			stopIdx := len(protein) // exclusive end in residues
			if !partial {
				stopIdx = j + k + 1
			}

			length := stopIdx - j
			if !partial {
				length-- // stop is not a residue
			}

			if length >= minLen {
				// Coordinates on the strand that was translated
				s := offset + 3*j
				e := offset + 3*stopIdx
				if strand == "-" {
					s, e = seqLen-e, seqLen-s
				}
				orfs = append(orfs, ORF{
					Start:     s,
					End:       e,
					Strand:    strand,
					Frame:     frame,
					Length_aa: length,
					Partial:   partial,
					Protein:   protein[j : j+length],
				})
			}

			if partial {
				break
			}
			j = stopIdx - 1
		}
	}
	log.Debugf("found %d ORFs (min %d aa)", len(orfs), minLen)
	return orfs
}

// WriteGFF3 writes one ORF feature per line, 1-based and inclusive.
func WriteGFF3(w io.Writer, seqID string, orfs []ORF) error {
	writer := bufio.NewWriter(w)
	writer.WriteString("##gff-version 3\n")

	for i, orf := range orfs {
		attrs := fmt.Sprintf("ID=orf%d;Length_aa=%d;Frame=%d", i+1, orf.Length_aa, orf.Frame)
		if orf.Partial {
			attrs += ";Partial=Yes"
		}
		fmt.Fprintf(writer, "%s\tSixSequences\tORF\t%d\t%d\t.\t%s\t0\t%s\n",
			seqID,
			orf.Start+1, // Convert to 1-based
			orf.End,
			orf.Strand,
			attrs,
		)
	}
	return writer.Flush()
}

// WriteFaa writes ORF proteins as FASTA, wrapped at lineWidth residues.
func WriteFaa(w io.Writer, seqID string, orfs []ORF, lineWidth int) error {
	writer := bufio.NewWriter(w)
	if lineWidth <= 0 {
		lineWidth = 60
	}

	for i, orf := range orfs {
		fmt.Fprintf(writer, ">orf%d|%s:%d-%d [%s]\n", i+1, seqID, orf.Start+1, orf.End, orf.Strand)

		prot := orf.Protein
		for p := 0; p < len(prot); p += lineWidth {
			end := p + lineWidth
			if end > len(prot) {
				end = len(prot)
			}
			fmt.Fprintln(writer, prot[p:end])
		}
	}
	return writer.Flush()
}
