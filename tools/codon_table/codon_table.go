// Package codon_table prints the standard genetic code used for translation.
package codon_table

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"sixsequences_go/translate"
)

// Order in which amino acids are listed, stop last.
const order = "FLIMVSPTAYHQNKDECWRG*"

var names = map[byte]string{
	'F': "Phe", 'L': "Leu", 'I': "Ile", 'M': "Met", 'V': "Val",
	'S': "Ser", 'P': "Pro", 'T': "Thr", 'A': "Ala", 'Y': "Tyr",
	'H': "His", 'Q': "Gln", 'N': "Asn", 'K': "Lys", 'D': "Asp",
	'E': "Glu", 'C': "Cys", 'W': "Trp", 'R': "Arg", 'G': "Gly",
	'*': "Stop",
}

// Write lists every amino acid with its codons, one line each, e.g.
// "Phe(F)	TTC,TTT".
func Write(w io.Writer) error {
	byAA := make(map[byte][]string)
	for codon, aa := range translate.GeneticCode() {
		byAA[aa] = append(byAA[aa], codon)
	}

	writer := bufio.NewWriter(w)
	for i := 0; i < len(order); i++ {
		aa := order[i]
		codons := byAA[aa]
		sort.Strings(codons)
		fmt.Fprintf(writer, "%s(%c)\t%s\n", names[aa], aa, strings.Join(codons, ","))
	}
	return writer.Flush()
}
