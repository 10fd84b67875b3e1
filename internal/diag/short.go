package diag

import (
	"fmt"
	"path/filepath"
	"strings"

	"pawnc/internal/source"
)

// FormatShort renders diagnostics one per line:
//
//	error SYN2012 main.pwn:1:7 expected semicolon, found Assign ("=") at 1:7-1:8
//
// Notes follow their diagnostic as "note" lines. Order is the order of diags;
// call Bag.Sort first for a deterministic listing.
func FormatShort(diags []Diagnostic, fs *source.FileSet, includeNotes bool) string {
	if len(diags) == 0 {
		return ""
	}
	lines := make([]string, 0, len(diags))
	for _, d := range diags {
		lines = append(lines, shortLine(d.Severity.Label(), d.Code, fs, d.Primary, d.Message))
		if !includeNotes {
			continue
		}
		for _, n := range d.Notes {
			lines = append(lines, shortLine("note", d.Code, fs, n.Span, n.Msg))
		}
	}
	return strings.Join(lines, "\n")
}

func shortLine(label string, code Code, fs *source.FileSet, sp source.Span, msg string) string {
	return fmt.Sprintf("%s %s %s:%d:%d %s", label, code.ID(), spanPath(fs, sp), sp.LineStart, sp.ColStart, sanitizeMessage(msg))
}

func spanPath(fs *source.FileSet, sp source.Span) string {
	if fs == nil || !sp.Valid() || int(sp.File) >= fs.Len() {
		return "<unknown>"
	}
	file := fs.Get(sp.File)
	p := filepath.ToSlash(file.FormatPath("relative", fs.BaseDir()))
	for strings.HasPrefix(p, "./") {
		p = strings.TrimPrefix(p, "./")
	}
	return p
}

func sanitizeMessage(msg string) string {
	msg = strings.ReplaceAll(msg, "\r\n", "\n")
	msg = strings.ReplaceAll(msg, "\r", "\n")
	msg = strings.ReplaceAll(msg, "\n", " ")
	return strings.TrimSpace(msg)
}
