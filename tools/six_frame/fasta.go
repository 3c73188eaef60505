package six_frame

import (
	"bufio"
	"fmt"
	"io"

	"sixsequences_go/translate"
)

// WriteFastaOutput writes the six frames as FASTA records Frame_1..Frame_6.
// width <= 0 keeps every protein on a single line.
func WriteFastaOutput(w io.Writer, frames translate.Frames, width int) error {
	writer := bufio.NewWriter(w)
	for i, protein := range frames {
		fmt.Fprintf(writer, ">%s\n", frames.Label(i))
		writer.WriteString(wrap(protein, width, "\n"))
	}
	return writer.Flush()
}

// wrap breaks s into lines of at most width characters, each terminated by
// sep. An empty s still yields one empty line.
func wrap(s string, width int, sep string) string {
	if width <= 0 || len(s) <= width {
		return s + sep
	}
	var out []byte
	for i := 0; i < len(s); i += width {
		end := i + width
		if end > len(s) {
			end = len(s)
		}
		out = append(out, s[i:end]...)
		out = append(out, sep...)
	}
	return string(out)
}
