package codon_table

import (
	"bytes"
	"strings"
	"testing"
)

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 21 {
		t.Fatalf("got %d lines, want 21", len(lines))
	}
	if lines[0] != "Phe(F)\tTTC,TTT" {
		t.Errorf("first line = %q", lines[0])
	}
	if lines[20] != "Stop(*)\tTAA,TAG,TGA" {
		t.Errorf("last line = %q", lines[20])
	}

	codons := 0
	for _, l := range lines {
		codons += len(strings.Split(strings.Split(l, "\t")[1], ","))
	}
	if codons != 64 {
		t.Errorf("listed %d codons, want 64", codons)
	}
}
