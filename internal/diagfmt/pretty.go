package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"lintcore/internal/diag"
	"lintcore/internal/source"
)

type palette struct {
	sev    map[diag.Severity]*color.Color
	code   *color.Color
	gutter *color.Color
	note   *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		sev: map[diag.Severity]*color.Color{
			diag.SevError:   color.New(color.FgRed, color.Bold),
			diag.SevWarning: color.New(color.FgYellow, color.Bold),
			diag.SevInfo:    color.New(color.FgCyan, color.Bold),
		},
		code:   color.New(color.Bold),
		gutter: color.New(color.FgBlue),
		note:   color.New(color.FgGreen),
	}
	for _, c := range []*color.Color{p.sev[diag.SevError], p.sev[diag.SevWarning], p.sev[diag.SevInfo], p.code, p.gutter, p.note} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Pretty пишет диагностики в человекочитаемом виде, в порядке bag.Items()
// (ожидается bag.Sort() заранее):
//
//	<path>:<line>:<col>: <SEV> <code>: <message>
//	   12 | var a = 1;
//	      |     ^
//	  note: <path>:<line>:<col>: <message>
//
// Исходная строка печатается только если в FileSet есть текст файла.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) error {
	p := newPalette(opts.Color)
	for _, d := range bag.Items() {
		if err := prettyOne(w, &d, fs, opts, p); err != nil {
			return err
		}
	}
	return nil
}

func prettyOne(w io.Writer, d *diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, p palette) error {
	sevColor := p.sev[d.Severity]
	if sevColor == nil {
		sevColor = p.sev[diag.SevInfo]
	}
	start, _ := fs.Resolve(d.Primary)
	if _, err := fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
		displayPath(fs, d.Primary.File, opts.PathMode), start.Line, start.Col,
		sevColor.Sprint(d.Severity.String()), p.code.Sprint(d.Code), d.Message); err != nil {
		return err
	}
	if err := writeSnippet(w, fs, d.Primary, int(opts.Context), sevColor, p.gutter); err != nil {
		return err
	}
	if !opts.ShowNotes {
		return nil
	}
	for _, n := range d.Notes {
		pos, _ := fs.Resolve(n.Span)
		if _, err := fmt.Fprintf(w, "  %s %s:%d:%d: %s\n", p.note.Sprint("note:"),
			displayPath(fs, n.Span.File, opts.PathMode), pos.Line, pos.Col, n.Msg); err != nil {
			return err
		}
	}
	return nil
}

// writeSnippet prints the primary line with context and a caret underline
// aligned by display width, so wide runes and tabs keep the caret in place.
func writeSnippet(w io.Writer, fs *source.FileSet, span source.Span, context int, caret, gutter *color.Color) error {
	f := fs.Get(span.File)
	if f == nil || len(f.Content) == 0 {
		return nil
	}
	start, end := fs.Resolve(span)
	first := max(1, int(start.Line)-context)
	last := int(start.Line) + context
	width := len(fmt.Sprint(last))

	for n := first; n <= last; n++ {
		line := f.Line(uint32(n)) //nolint:gosec // n is a small positive line number
		if line == "" && n != int(start.Line) {
			continue
		}
		if _, err := fmt.Fprintf(w, " %s %s\n", gutter.Sprintf("%*d |", width, n), line); err != nil {
			return err
		}
		if n != int(start.Line) {
			continue
		}
		from := min(int(start.Col)-1, len(line))
		to := len(line)
		if end.Line == start.Line {
			to = min(int(end.Col)-1, len(line))
		}
		pad := padFor(line[:from])
		length := max(1, runewidth.StringWidth(line[from:max(from, to)]))
		marker := "^" + strings.Repeat("~", length-1)
		if _, err := fmt.Fprintf(w, " %s %s%s\n", gutter.Sprint(strings.Repeat(" ", width)+" |"), pad, caret.Sprint(marker)); err != nil {
			return err
		}
	}
	return nil
}

func padFor(prefix string) string {
	var sb strings.Builder
	for _, r := range prefix {
		if r == '\t' {
			sb.WriteByte('\t')
			continue
		}
		sb.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}
	return sb.String()
}
