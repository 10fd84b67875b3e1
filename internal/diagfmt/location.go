package diagfmt

import (
	"fmt"

	"pawnc/internal/source"
)

// filePath returns the display path of the file a span points into.
func filePath(span source.Span, fs *source.FileSet, mode PathMode) string {
	if fs == nil || !span.Valid() || int(span.File) >= fs.Len() {
		return "<unknown>"
	}
	f := fs.Get(span.File)
	baseDir := ""
	if mode == PathModeRelative {
		baseDir = fs.BaseDir()
	}
	return f.FormatPath(mode.String(), baseDir)
}

// formatSpan renders "path:line:col". Spans without a position (I/O errors,
// project file warnings) don't point into any file.
func formatSpan(span source.Span, fs *source.FileSet, mode PathMode) string {
	if !span.Valid() {
		return "<unknown>"
	}
	return fmt.Sprintf("%s:%d:%d", filePath(span, fs, mode), span.LineStart, span.ColStart)
}
