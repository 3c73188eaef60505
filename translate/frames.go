package translate

import (
	"fmt"
	"strings"
)

// NumFrames is the number of reading frames produced by SixFrameTranslate.
const NumFrames = 6

// Frames holds the six translated reading frames in the order
// forward+0, reverse+0, forward+1, reverse+1, forward+2, reverse+2.
type Frames [NumFrames]string

// Label returns the FASTA record name of frame i (0-based), e.g. "Frame_1".
func (f Frames) Label(i int) string {
	return fmt.Sprintf("Frame_%d", i+1)
}

// Strand returns "+" for forward frames and "-" for reverse-complement frames.
func (f Frames) Strand(i int) string {
	if i%2 == 0 {
		return "+"
	}
	return "-"
}

// Offset returns the codon start offset (0, 1 or 2) of frame i.
func (f Frames) Offset(i int) int {
	return i / 2
}

// ReverseComplement returns the reverse complement of seq. A, C, G and T are
// complemented; every other byte, including lower-case bases, becomes 'N'.
func ReverseComplement(seq string) string {
	n := len(seq)
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		switch seq[n-1-i] {
		case 'A':
			out[i] = 'T'
		case 'T':
			out[i] = 'A'
		case 'C':
			out[i] = 'G'
		case 'G':
			out[i] = 'C'
		default:
			out[i] = 'N'
		}
	}
	return string(out)
}

// TranslateFrame translates seq codon by codon starting at offset. A trailing
// partial codon is dropped.
func TranslateFrame(seq string, offset int) string {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(seq) {
		return ""
	}
	var protein strings.Builder
	protein.Grow((len(seq) - offset) / 3)
	for i := offset; i+3 <= len(seq); i += 3 {
		protein.WriteByte(lookup(seq[i], seq[i+1], seq[i+2]))
	}
	return protein.String()
}

// SixFrameTranslate translates seq in the three forward and the three
// reverse-complement reading frames.
func SixFrameTranslate(seq string) Frames {
	var frames Frames
	rc := ReverseComplement(seq)
	for offset := 0; offset < 3; offset++ {
		frames[2*offset] = TranslateFrame(seq, offset)
		frames[2*offset+1] = TranslateFrame(rc, offset)
	}
	return frames
}
