package driver

import (
	"slices"
	"strings"

	"pawnc/internal/lexer"
	"pawnc/internal/observ"
)

// DefaultExtensions are the source extensions collected from a directory.
var DefaultExtensions = []string{".pwn", ".inc"}

// Options управляет одним запуском драйвера (файл или директория).
type Options struct {
	MaxDiagnostics    int           // лимит Bag; <= 0 значит без ограничения
	Jobs              int           // параллелизм для директорий; <= 0 → GOMAXPROCS
	Extensions        []string      // пусто → DefaultExtensions
	LegacyIdentifiers bool          // см. lexer.Options
	Timer             *observ.Timer // может быть nil
	Progress          ProgressSink  // может быть nil
}

func (o Options) extensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions
	}
	return o.Extensions
}

func (o Options) lexerOptions() lexer.Options {
	return lexer.Options{LegacyIdentifiers: o.LegacyIdentifiers}
}

// hasSourceExt сравнивает расширение без учёта регистра: include-файлы
// нередко лежат как .INC.
func hasSourceExt(path string, exts []string) bool {
	lower := strings.ToLower(path)
	return slices.ContainsFunc(exts, func(ext string) bool {
		return strings.HasSuffix(lower, strings.ToLower(ext))
	})
}
