// Package translate holds the codon-translation engine: reverse complement,
// the standard genetic code and six-frame translation.
package translate

// Unknown is emitted for any codon that is not three bases over A, C, G, T.
const Unknown byte = 'X'

// Stop is the amino-acid symbol for the three stop codons.
const Stop byte = '*'

var standardCode = map[string]byte{
	// Phenylalanine
	"TTT": 'F', "TTC": 'F',
	// Leucine
	"TTA": 'L', "TTG": 'L', "CTT": 'L', "CTC": 'L', "CTA": 'L', "CTG": 'L',
	// Isoleucine
	"ATT": 'I', "ATC": 'I', "ATA": 'I',
	// Methionine (Start)
	"ATG": 'M',
	// Valine
	"GTT": 'V', "GTC": 'V', "GTA": 'V', "GTG": 'V',
	// Serine
	"TCT": 'S', "TCC": 'S', "TCA": 'S', "TCG": 'S', "AGT": 'S', "AGC": 'S',
	// Proline
	"CCT": 'P', "CCC": 'P', "CCA": 'P', "CCG": 'P',
	// Threonine
	"ACT": 'T', "ACC": 'T', "ACA": 'T', "ACG": 'T',
	// Alanine
	"GCT": 'A', "GCC": 'A', "GCA": 'A', "GCG": 'A',
	// Tyrosine
	"TAT": 'Y', "TAC": 'Y',
	// Histidine
	"CAT": 'H', "CAC": 'H',
	// Glutamine
	"CAA": 'Q', "CAG": 'Q',
	// Asparagine
	"AAT": 'N', "AAC": 'N',
	// Lysine
	"AAA": 'K', "AAG": 'K',
	// Aspartic Acid
	"GAT": 'D', "GAC": 'D',
	// Glutamic Acid
	"GAA": 'E', "GAG": 'E',
	// Cysteine
	"TGT": 'C', "TGC": 'C',
	// Tryptophan
	"TGG": 'W',
	// Arginine
	"CGT": 'R', "CGC": 'R', "CGA": 'R', "CGG": 'R', "AGA": 'R', "AGG": 'R',
	// Glycine
	"GGT": 'G', "GGC": 'G', "GGA": 'G', "GGG": 'G',
	// Stop codons
	"TAA": Stop, "TAG": Stop, "TGA": Stop,
}

// baseIndex maps a nucleotide byte to its 2-bit code, -1 for anything else.
var baseIndex [256]int8

// codonIndex is standardCode flattened to a base-4 indexed array.
var codonIndex [64]byte

func init() {
	for i := range baseIndex {
		baseIndex[i] = -1
	}
	baseIndex['A'] = 0
	baseIndex['C'] = 1
	baseIndex['G'] = 2
	baseIndex['T'] = 3

	for codon, aa := range standardCode {
		codonIndex[encode(codon[0], codon[1], codon[2])] = aa
	}
}

// encode returns the base-4 index of a codon, or -1 if any base is not A/C/G/T.
func encode(b1, b2, b3 byte) int {
	i1, i2, i3 := baseIndex[b1], baseIndex[b2], baseIndex[b3]
	if i1 < 0 || i2 < 0 || i3 < 0 {
		return -1
	}
	return int(i1)<<4 | int(i2)<<2 | int(i3)
}

// CodonToAminoAcid returns the one-letter amino acid for a codon under the
// standard genetic code. Codons that are not exactly three upper-case
// A/C/G/T bases translate to Unknown.
func CodonToAminoAcid(codon string) byte {
	if len(codon) != 3 {
		return Unknown
	}
	return lookup(codon[0], codon[1], codon[2])
}

func lookup(b1, b2, b3 byte) byte {
	idx := encode(b1, b2, b3)
	if idx < 0 {
		return Unknown
	}
	return codonIndex[idx]
}

// IsStopCodon reports whether codon is TAA, TAG or TGA.
func IsStopCodon(codon string) bool {
	return CodonToAminoAcid(codon) == Stop
}

// GeneticCode returns a copy of the standard codon table.
func GeneticCode() map[string]byte {
	code := make(map[string]byte, len(standardCode))
	for codon, aa := range standardCode {
		code[codon] = aa
	}
	return code
}
