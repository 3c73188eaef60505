package six_frame

import (
	"bytes"
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"sixsequences_go/translate"
)

const graphUnavailable = "<p>Graph unavailable</p>"

type IntegerTicks struct{}

func (IntegerTicks) Ticks(min, max float64) []plot.Tick {
	var ticks []plot.Tick
	for i := int(math.Ceil(min)); i <= int(math.Floor(max)); i++ {
		ticks = append(ticks, plot.Tick{
			Value: float64(i),
			Label: fmt.Sprintf("%d", i),
		})
	}
	return ticks
}

// renderSVG draws p at the given size in inches and returns the SVG markup.
func renderSVG(p *plot.Plot, width, height float64) (string, error) {
	var buf bytes.Buffer
	writer, err := p.WriterTo(vg.Length(width)*vg.Inch, vg.Length(height)*vg.Inch, "svg")
	if err != nil {
		return "", err
	}
	if _, err := writer.WriteTo(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// GenerateCompositionPlot draws residue counts per frame as grouped bars.
func GenerateCompositionPlot(stats [translate.NumFrames]FrameStats, width, height float64) (string, error) {
	total := 0
	for _, s := range stats {
		total += s.Length
	}
	if total == 0 {
		return "<p>No residues to plot</p>", nil
	}

	p := plot.New()
	p.Title.Text = "Amino Acid Composition per Frame"
	p.X.Label.Text = "Residue"
	p.Y.Label.Text = "Count"
	p.Legend.Top = true

	barWidth := vg.Points(4)
	for i, s := range stats {
		values := make(plotter.Values, len(Residues))
		for j := 0; j < len(Residues); j++ {
			values[j] = float64(s.Composition[Residues[j]])
		}
		bars, err := plotter.NewBarChart(values, barWidth)
		if err != nil {
			return "", err
		}
		bars.LineStyle.Width = vg.Length(0)
		bars.Color = plotutil.Color(i)
		bars.Offset = barWidth * vg.Length(float64(i)-float64(len(stats)-1)/2)
		p.Add(bars)
		p.Legend.Add(s.Label, bars)
	}

	labels := make([]string, len(Residues))
	for j := 0; j < len(Residues); j++ {
		labels[j] = string(Residues[j])
	}
	p.NominalX(labels...)

	return renderSVG(p, width, height)
}

// GenerateStopPositionPlot marks each stop codon at its residue position,
// one row per frame.
func GenerateStopPositionPlot(stats [translate.NumFrames]FrameStats, width, height float64) (string, error) {
	var pts plotter.XYs
	for i, s := range stats {
		for _, pos := range s.StopPositions {
			pts = append(pts, plotter.XY{X: float64(pos + 1), Y: float64(i + 1)})
		}
	}
	if len(pts) == 0 {
		return "<p>No stop codons in any frame</p>", nil
	}

	p := plot.New()
	p.Title.Text = "Stop Codon Positions"
	p.X.Label.Text = "Residue Position"
	p.Y.Label.Text = "Frame"
	p.Y.Tick.Marker = IntegerTicks{}
	p.Y.Min = 0.5
	p.Y.Max = float64(len(stats)) + 0.5

	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return "", err
	}
	scatter.GlyphStyle.Color = plotutil.Color(0)
	scatter.GlyphStyle.Radius = vg.Points(2)
	scatter.GlyphStyle.Shape = plotutil.Shape(1)
	p.Add(scatter)

	return renderSVG(p, width, height)
}
