package six_frame

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"sixsequences_go/translate"
)

// WriteFrameCSV writes one row of statistics per frame.
func WriteFrameCSV(w io.Writer, stats [translate.NumFrames]FrameStats) error {
	writer := csv.NewWriter(w)

	headers := []string{
		"Frame", "Strand", "Offset", "Length_aa", "Stops", "Unknown",
		"LongestOpen", "ORFs", "MeanORF", "StdORF",
	}
	if err := writer.Write(headers); err != nil {
		return err
	}

	for _, s := range stats {
		values := []string{
			s.Label,
			s.Strand,
			strconv.Itoa(s.Offset),
			strconv.Itoa(s.Length),
			strconv.Itoa(s.Stops),
			strconv.Itoa(s.Unknown),
			strconv.Itoa(s.LongestOpen),
			strconv.Itoa(s.ORFs),
			fmt.Sprintf("%.2f", s.MeanORF),
			fmt.Sprintf("%.2f", s.StdORF),
		}
		if err := writer.Write(values); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
