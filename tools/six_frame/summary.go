package six_frame

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"sixsequences_go/translate"
	"sixsequences_go/utils"
)

var (
	colorTitle  = lipgloss.Color("#4ecdc4")
	colorLabel  = lipgloss.Color("#a8dadc")
	colorMuted  = lipgloss.Color("#666666")
	colorWarn   = lipgloss.Color("#ffe66d")
	colorBorder = lipgloss.Color("#3d5a80")

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorTitle)
	labelStyle = lipgloss.NewStyle().Foreground(colorLabel).Width(10)
	mutedStyle = lipgloss.NewStyle().Foreground(colorMuted)
	warnStyle  = lipgloss.NewStyle().Foreground(colorWarn)
	boxStyle   = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)
)

// maxPreview caps how many residues of each frame are echoed to the terminal.
const maxPreview = 50

// PrintSummary writes a short boxed overview of the run.
func PrintSummary(w io.Writer, seq common.SequenceReport, frames translate.Frames, stats [translate.NumFrames]FrameStats, outputs []string) {
	var lines []string
	lines = append(lines, titleStyle.Render("SixSequences: six-frame translation"))
	lines = append(lines, fmt.Sprintf("Sequence length: %d bp (GC %.1f%%)", seq.Length, seq.GCPercent))
	if seq.Other > 0 {
		lines = append(lines, warnStyle.Render(fmt.Sprintf("%d unknown bases translate to X", seq.Other)))
	}
	lines = append(lines, "")

	for i, protein := range frames {
		preview := protein
		if len(preview) > maxPreview {
			preview = preview[:maxPreview] + "…"
		}
		s := stats[i]
		meta := mutedStyle.Render(fmt.Sprintf("(%s%d, %d aa, %d stops)", s.Strand, s.Offset, s.Length, s.Stops))
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(frames.Label(i)), preview, " ", meta))
	}

	if len(outputs) > 0 {
		lines = append(lines, "", mutedStyle.Render("Wrote: "+strings.Join(outputs, ", ")))
	}

	fmt.Fprintln(w, boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...)))
}
