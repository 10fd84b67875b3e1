package diagfmt

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"pawnc/internal/diag"
	"pawnc/internal/source"
)

type palette struct {
	err, warn, info, note, gutter, caret, bold *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgCyan, color.Bold),
		note:   color.New(color.FgBlue, color.Bold),
		gutter: color.New(color.FgBlue),
		caret:  color.New(color.FgRed, color.Bold),
		bold:   color.New(color.Bold),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.note, p.gutter, p.caret, p.bold} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
//
//	<path>:<line>:<col>: <SEV> <CODE>: <Message>
//
// затем строку исходника с подчёркиванием ^~~~ по Span, затем Notes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) error {
	if bag == nil {
		return nil
	}
	pal := newPalette(opts.Color)
	for i, d := range bag.Items() {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if err := prettyOne(w, d, fs, opts, pal); err != nil {
			return err
		}
	}
	return nil
}

func prettyOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, pal palette) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: %s %s: %s\n",
		pal.bold.Sprint(formatSpan(d.Primary, fs, opts.PathMode)),
		pal.severity(d.Severity).Sprint(d.Severity.String()),
		d.Code.ID(),
		pal.bold.Sprint(d.Message),
	)
	writeSnippet(&sb, d.Primary, fs, opts.Context, pal)

	if opts.ShowNotes {
		for _, n := range d.Notes {
			fmt.Fprintf(&sb, "  %s %s: %s\n", pal.note.Sprint("note:"), formatSpan(n.Span, fs, opts.PathMode), n.Msg)
			writeSnippet(&sb, n.Span, fs, 0, pal)
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// writeSnippet печатает строки [LineStart-context, LineStart] и подчёркивание под спаном.
func writeSnippet(sb *strings.Builder, span source.Span, fs *source.FileSet, context int, pal palette) {
	if fs == nil || !span.Valid() || int(span.File) >= fs.Len() {
		return
	}
	file := fs.Get(span.File)
	if int(span.LineStart) > file.LineCount() {
		return
	}

	gutterWidth := len(strconv.FormatUint(uint64(span.LineStart), 10))
	first := max(1, int(span.LineStart)-max(0, context))
	for ln := first; ln <= int(span.LineStart); ln++ {
		text := file.GetLine(uint32(ln)) // #nosec G115 -- ln <= span.LineStart
		fmt.Fprintf(sb, "%s %s\n", pal.gutter.Sprintf("%*d |", gutterWidth, ln), text)
	}

	line := file.GetLine(span.LineStart)
	pad, width := caretGeometry(line, span)
	marker := "^" + strings.Repeat("~", width-1)
	fmt.Fprintf(sb, "%s %s%s\n", pal.gutter.Sprintf("%*s |", gutterWidth, ""), pad, pal.caret.Sprint(marker))
}

// caretGeometry считает отступ и ширину подчёркивания в экранных колонках.
// Колонки спана — руны; широкие символы занимают две клетки, табы сохраняются как есть,
// чтобы терминал выровнял их так же, как строку выше.
func caretGeometry(line string, span source.Span) (pad string, width int) {
	runes := []rune(line)
	start := min(int(span.ColStart)-1, len(runes))
	end := len(runes)
	if span.LineEnd == span.LineStart {
		end = min(max(int(span.ColEnd)-1, start), len(runes))
	}

	var b strings.Builder
	for _, r := range runes[:start] {
		if r == '\t' {
			b.WriteRune('\t')
			continue
		}
		b.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}
	width = runewidth.StringWidth(string(runes[start:end]))
	return b.String(), max(1, width)
}
