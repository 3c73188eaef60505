package six_frame

import (
	"bufio"
	"fmt"
	"html"
	"io"

	"sixsequences_go/translate"
	"sixsequences_go/utils"
)

type ReportData struct {
	Title        string
	Sequence     string
	SeqReport    common.SequenceReport
	Frames       translate.Frames
	Stats        [translate.NumFrames]FrameStats
	SequenceWrap int
	SVGComp      string // pre-rendered chart markup, empty to omit
	SVGStops     string
	Version      string
}

const reportStyle = `
<style>
	body { font-family: Arial, sans-serif; background-color: #fafafa; padding: 20px; line-height: 1.6; }
	.frame { margin-bottom: 20px; padding: 10px; background: white; border-radius: 8px; box-shadow: 0 0 6px rgba(0,0,0,0.1); }
	.frame-title { font-size: 20px; font-weight: bold; margin-bottom: 5px; }
	.frame-meta { color: #555; font-size: 14px; }
	.seq { font-family: monospace; white-space: pre-wrap; word-wrap: break-word; color: #333; }
	table { border-collapse: collapse; margin-top: 10px; }
	th, td { padding: 6px 10px; border: 1px solid #ccc; text-align: left; }
	th { background-color: #eee; }
	.footer { margin-top: 40px; text-align: center; color: #777; }
</style>`

// WriteHTMLReport renders the original sequence, the six frames and their
// statistics as a single HTML page.
func WriteHTMLReport(w io.Writer, data ReportData) error {
	writer := bufio.NewWriter(w)
	title := html.EscapeString(data.Title)

	fmt.Fprintf(writer, `<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<title>%s</title>%s
</head>
<body>

<h1>%s</h1>
<p><strong>Input Sequence Length:</strong> %d bp &middot; <strong>GC:</strong> %.2f%% &middot; <strong>Unknown bases:</strong> %d</p>

<h2>Original DNA/RNA Sequence</h2>
<div class="frame">
<pre class="seq">%s</pre>
</div>
`,
		title, reportStyle, title,
		data.SeqReport.Length,
		data.SeqReport.GCPercent,
		data.SeqReport.Other,
		html.EscapeString(wrap(data.Sequence, data.SequenceWrap, "\n")),
	)

	writer.WriteString("\n<h2>Six-Frame Translation</h2>\n")
	for i, protein := range data.Frames {
		s := data.Stats[i]
		fmt.Fprintf(writer, `<div class="frame">
<div class="frame-title">Frame %d</div>
<div class="frame-meta">strand %s, offset %d &middot; %d aa &middot; %d stops &middot; %d ORFs</div>
<pre class="seq">%s</pre>
</div>
`,
			i+1, s.Strand, s.Offset, s.Length, s.Stops, s.ORFs,
			html.EscapeString(protein),
		)
	}

	writer.WriteString(`
<h2>Frame Statistics</h2>
<table>
	<tr><th>Frame</th><th>Strand</th><th>Length (aa)</th><th>Stops</th><th>Unknown (X)</th><th>Longest Open Stretch</th><th>ORFs</th><th>Mean ORF (aa)</th><th>ORF StdDev</th></tr>
`)
	for _, s := range data.Stats {
		fmt.Fprintf(writer, "\t<tr><td>%s</td><td>%s</td><td>%d</td><td>%d</td><td>%d</td><td>%d</td><td>%d</td><td>%.2f</td><td>%.2f</td></tr>\n",
			s.Label, s.Strand, s.Length, s.Stops, s.Unknown, s.LongestOpen, s.ORFs, s.MeanORF, s.StdORF)
	}
	writer.WriteString("</table>\n")

	if data.SVGComp != "" {
		fmt.Fprintf(writer, "\n<h2>Amino Acid Composition</h2>\n<div>%s</div>\n", data.SVGComp)
	}
	if data.SVGStops != "" {
		fmt.Fprintf(writer, "\n<h2>Stop Codon Positions</h2>\n<div>%s</div>\n", data.SVGStops)
	}

	fmt.Fprintf(writer, `
<div class="footer">Generated by SixSequences %s</div>
</body>
</html>
`, html.EscapeString(data.Version))

	return writer.Flush()
}
