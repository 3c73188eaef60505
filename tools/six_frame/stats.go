package six_frame

import (
	"sync"

	"gonum.org/v1/gonum/stat"

	"sixsequences_go/tools/orf_finder"
	"sixsequences_go/translate"
)

// Residues lists the symbols counted for composition, in chart order.
const Residues = "ACDEFGHIKLMNPQRSTVWY*X"

type FrameStats struct {
	Label         string
	Strand        string
	Offset        int
	Length        int
	Stops         int
	Unknown       int
	LongestOpen   int // longest run without a stop
	ORFs          int
	MeanORF       float64
	StdORF        float64
	Composition   map[byte]int
	StopPositions []int // 0-based residue index of every stop
}

// ComputeFrameStats analyses all six frames concurrently, one goroutine per
// frame. orfs are attributed to frames by their Frame number.
func ComputeFrameStats(frames translate.Frames, orfs []orf_finder.ORF) [translate.NumFrames]FrameStats {
	var out [translate.NumFrames]FrameStats
	var wg sync.WaitGroup

	for i := range frames {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			frameNum := frames.Offset(i) + 1
			if frames.Strand(i) == "-" {
				frameNum = -frameNum
			}
			var lengths []float64
			for _, o := range orfs {
				if o.Frame == frameNum {
					lengths = append(lengths, float64(o.Length_aa))
				}
			}
			s := analyzeFrame(frames[i], lengths)
			s.Label = frames.Label(i)
			s.Strand = frames.Strand(i)
			s.Offset = frames.Offset(i)
			out[i] = s
		}(i)
	}
	wg.Wait()
	return out
}

func analyzeFrame(protein string, orfLengths []float64) FrameStats {
	s := FrameStats{
		Length:      len(protein),
		Composition: make(map[byte]int),
		ORFs:        len(orfLengths),
	}

	run := 0
	for i := 0; i < len(protein); i++ {
		aa := protein[i]
		s.Composition[aa]++
		switch aa {
		case translate.Stop:
			s.Stops++
			s.StopPositions = append(s.StopPositions, i)
			run = 0
			continue
		case translate.Unknown:
			s.Unknown++
		}
		run++
		if run > s.LongestOpen {
			s.LongestOpen = run
		}
	}

	switch len(orfLengths) {
	case 0:
	case 1:
		s.MeanORF = orfLengths[0]
	default:
		s.MeanORF, s.StdORF = stat.MeanStdDev(orfLengths, nil)
	}
	return s
}
