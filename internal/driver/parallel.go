package driver

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"runtime"
	"slices"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"pawnc/internal/ast"
	"pawnc/internal/diag"
	"pawnc/internal/parser"
	"pawnc/internal/source"
	"pawnc/internal/token"
	"pawnc/internal/trace"
)

// FileTokens: результат токенизации одного файла директории.
type FileTokens struct {
	Path   string        // путь к файлу
	FileID source.FileID // ID в общем FileSet
	Tokens []token.Token // nil, если файл не загрузился
}

// FileTree: результат парсинга одного файла директории.
type FileTree struct {
	Path   string
	FileID source.FileID
	Root   *ast.Node     // nil, если файл не загрузился
	Err    *parser.Error // первая синтаксическая ошибка
}

// TokenizeDirResult collects a directory run. All diagnostics share one Bag.
type TokenizeDirResult struct {
	FileSet *source.FileSet
	Files   []FileTokens
	Bag     *diag.Bag
}

// ParseDirResult collects a directory run. All diagnostics share one Bag.
type ParseDirResult struct {
	FileSet *source.FileSet
	Files   []FileTree
	Bag     *diag.Bag
}

// ListSources возвращает отсортированный список исходников директории.
func ListSources(dir string, exts []string) ([]string, error) {
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && hasSourceExt(path, exts) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list sources in %s: %w", dir, err)
	}

	// Сортируем для детерминированного порядка
	slices.Sort(files)
	return files, nil
}

// dirRun: общая часть TokenizeDir и ParseDir: загрузка файлов в один FileSet
// и потокобезопасный reporter поверх общего Bag.
type dirRun struct {
	fileSet    *source.FileSet
	files      []string
	fileIDs    []source.FileID
	loadErrors []error
	bag        *diag.Bag
	shared     diag.Reporter
	jobs       int
}

func prepareDir(dir string, opts Options) (*dirRun, error) {
	files, err := ListSources(dir, opts.extensions())
	if err != nil {
		return nil, err
	}
	bag := diag.NewBag(opts.MaxDiagnostics)
	run := &dirRun{
		fileSet:    source.NewFileSetWithBase(dir),
		files:      files,
		fileIDs:    make([]source.FileID, len(files)),
		loadErrors: make([]error, len(files)),
		bag:        bag,
		shared:     diag.NewLockedReporter(diag.BagReporter{Bag: bag}),
		jobs:       opts.Jobs,
	}
	if run.jobs <= 0 {
		run.jobs = runtime.GOMAXPROCS(0)
	}

	// FileSet не потокобезопасен: грузим всё заранее, в одной горутине
	for i, path := range files {
		emit(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusQueued})
		id, err := run.fileSet.Load(path)
		if err != nil {
			run.loadErrors[i] = err
			continue
		}
		run.fileIDs[i] = id
	}
	return run, nil
}

// reportLoad переносит ошибку загрузки в общий Bag. Возвращает false, если файла нет.
func (r *dirRun) reportLoad(i int, sink ProgressSink) bool {
	err := r.loadErrors[i]
	if err == nil {
		return true
	}
	diag.ReportError(r.shared, diag.IOLoadFileError, source.Span{}, "failed to load file "+r.files[i]+": "+err.Error()).Emit()
	emit(sink, Event{File: r.files[i], Stage: StageLoad, Status: StatusError, Err: err})
	return false
}

// each запускает fn для каждого файла с ограничением параллелизма.
func (r *dirRun) each(ctx context.Context, fn func(ctx context.Context, i int) error) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(r.jobs, len(r.files))))
	for i := range r.files {
		g.Go(func() error {
			// Проверка отмены
			if err := gctx.Err(); err != nil {
				return err
			}
			return fn(gctx, i)
		})
	}
	return g.Wait()
}

// TokenizeDir tokenizes every source file under dir in parallel.
// Results are ordered by path; files that failed to load get an IO diagnostic and nil Tokens.
func TokenizeDir(ctx context.Context, dir string, opts Options) (*TokenizeDirResult, error) {
	span, ctx := trace.StartSpan(ctx, trace.ScopeDriver, "tokenize-dir")
	defer span.End(dir)

	run, err := prepareDir(dir, opts)
	if err != nil {
		return nil, err
	}
	result := &TokenizeDirResult{
		FileSet: run.fileSet,
		Files:   make([]FileTokens, len(run.files)),
		Bag:     run.bag,
	}
	span.WithExtra("files", strconv.Itoa(len(run.files)))

	phase := opts.Timer.Begin("tokenize-dir")
	// индексы уникальны для каждой горутины, мьютекс не нужен
	err = run.each(ctx, func(ctx context.Context, i int) error {
		path := run.files[i]
		result.Files[i] = FileTokens{Path: path, FileID: run.fileIDs[i]}
		if !run.reportLoad(i, opts.Progress) {
			return nil
		}
		started := time.Now()
		emit(opts.Progress, Event{File: path, Stage: StageTokenize, Status: StatusWorking})
		file := run.fileSet.Get(run.fileIDs[i])
		result.Files[i].Tokens = lexFile(ctx, file, diag.NewDedupReporter(run.shared), opts)
		emit(opts.Progress, Event{File: path, Stage: StageTokenize, Status: StatusDone, Elapsed: time.Since(started)})
		return nil
	})
	opts.Timer.End(phase, strconv.Itoa(len(run.files))+" files")
	if err != nil {
		return result, fmt.Errorf("tokenize %s: %w", dir, err)
	}
	return result, nil
}

// ParseDir parses every source file under dir in parallel, one lexer and parser per file.
// A syntax error stops only its own file.
func ParseDir(ctx context.Context, dir string, opts Options) (*ParseDirResult, error) {
	span, ctx := trace.StartSpan(ctx, trace.ScopeDriver, "parse-dir")
	defer span.End(dir)

	run, err := prepareDir(dir, opts)
	if err != nil {
		return nil, err
	}
	result := &ParseDirResult{
		FileSet: run.fileSet,
		Files:   make([]FileTree, len(run.files)),
		Bag:     run.bag,
	}
	span.WithExtra("files", strconv.Itoa(len(run.files)))

	phase := opts.Timer.Begin("parse-dir")
	err = run.each(ctx, func(ctx context.Context, i int) error {
		path := run.files[i]
		result.Files[i] = FileTree{Path: path, FileID: run.fileIDs[i]}
		if !run.reportLoad(i, opts.Progress) {
			return nil
		}
		started := time.Now()
		emit(opts.Progress, Event{File: path, Stage: StageParse, Status: StatusWorking})
		file := run.fileSet.Get(run.fileIDs[i])
		root, perr := parseFile(ctx, file, diag.NewDedupReporter(run.shared), opts)
		result.Files[i].Root = root
		result.Files[i].Err = perr

		status := StatusDone
		var evErr error
		if perr != nil {
			status, evErr = StatusError, perr
		}
		emit(opts.Progress, Event{File: path, Stage: StageParse, Status: status, Err: evErr, Elapsed: time.Since(started)})
		return nil
	})
	opts.Timer.End(phase, strconv.Itoa(len(run.files))+" files")
	if err != nil {
		return result, fmt.Errorf("parse %s: %w", dir, err)
	}
	return result, nil
}

// Failed reports whether any file failed to load or parse.
func (r *ParseDirResult) Failed() bool {
	if r == nil {
		return false
	}
	if r.Bag.HasErrors() {
		return true
	}
	return slices.ContainsFunc(r.Files, func(f FileTree) bool { return f.Err != nil || f.Root == nil })
}
