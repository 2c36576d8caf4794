package domain

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"sync"

	"github.com/pmezard/go-difflib/difflib"
	"golang.org/x/sync/errgroup"

	"runnergen.dev/pkg/runnergen/internal/adapter"
	m "runnergen.dev/pkg/runnergen/internal/model"
	"runnergen.dev/pkg/runnergen/internal/runerr"
	"runnergen.dev/pkg/runnergen/internal/templates"
)

// DefaultBatchPattern selects test files by base name in batch mode.
const DefaultBatchPattern = `^test.*\.c$`

const (
	runnerSuffix = "_Runner.c"
	outputPerm   = 0o644
)

// GenerateArgs contains the arguments for generating one runner.
type GenerateArgs struct {
	Input  m.Path
	Output m.Path
	// Filename is how the input is named inside the runner. Defaults to Input.
	Filename string
	Options  m.Options
	// Check renders without writing and reports stale outputs as a diff.
	Check bool
}

// BatchArgs contains the arguments for generating runners for many test files.
type BatchArgs struct {
	Paths     []m.Path
	Recursive bool
	Pattern   string
	OutputDir m.Path
	Parallel  int
	Options   m.Options
	Check     bool
}

// Generator turns C test files into Unity runners.
type Generator interface {
	// Scan runs every scanning stage over one test file.
	Scan(ctx context.Context, input m.Path, opts m.Options) (m.Scan, error)
	// Generate renders the runner (and header, when configured) for one test
	// file and writes whatever changed.
	Generate(ctx context.Context, args GenerateArgs) (m.Result, error)
	// GenerateAll generates a runner for every test file found under the given
	// paths. A failing file does not stop the others; all errors are returned joined.
	GenerateAll(ctx context.Context, args BatchArgs) ([]m.Result, error)
}

type generator struct {
	adapter.SourceFSAdapter
	*Emitter
}

// NewGenerator creates a Generator reading and writing through fsAdapter. A nil
// renderer selects the built-in run_test template.
func NewGenerator(fsAdapter adapter.SourceFSAdapter, renderer RunTestRenderer) Generator {
	if renderer == nil {
		renderer = templates.RenderRunTest
	}

	return &generator{
		SourceFSAdapter: fsAdapter,
		Emitter:         NewEmitter(renderer),
	}
}

func (g *generator) Scan(ctx context.Context, input m.Path, opts m.Options) (m.Scan, error) {
	if err := ctx.Err(); err != nil {
		return m.Scan{}, err
	}

	source, err := g.ReadSource(input)
	if err != nil {
		return m.Scan{}, runerr.Wrap(runerr.IO, string(input), "read test file", err)
	}

	return ScanSource(source, opts)
}

// ScanSource runs the scanning stages over an already loaded source.
func ScanSource(source m.Source, opts m.Options) (m.Scan, error) {
	extractor, err := NewExtractor(opts)
	if err != nil {
		return m.Scan{}, err
	}

	classifier, err := NewClassifier(opts)
	if err != nil {
		return m.Scan{}, err
	}

	tests := extractor.FindTests(source.Text)

	stripped := StripComments(source.Text)
	headers := classifier.FindIncludes(stripped)
	includes, mocks := classifier.Classify(headers)

	slog.Debug("scanned test file",
		"path", source.Path,
		"tests", len(tests),
		"includes", len(includes),
		"mocks", len(mocks))

	return m.Scan{
		Source:   source,
		Options:  DetectHooks(stripped, opts),
		Tests:    tests,
		Headers:  headers,
		Includes: includes,
		Mocks:    mocks,
	}, nil
}

func (g *generator) Generate(ctx context.Context, args GenerateArgs) (m.Result, error) {
	output := args.Output
	if output == "" {
		output = DefaultOutput(args.Input)
	}

	filename := args.Filename
	if filename == "" {
		filename = string(args.Input)
	}

	scan, err := g.Scan(ctx, args.Input, args.Options)
	if err != nil {
		return m.Result{}, err
	}

	result := m.Result{
		Input:  args.Input,
		Output: output,
		Tests:  len(scan.Tests),
	}

	var runner bytes.Buffer
	if err := g.EmitRunner(&runner, scan, filename); err != nil {
		return result, runerr.Wrap(runerr.Internal, string(output), "render runner", err)
	}

	files := []renderedFile{{path: output, content: runner.Bytes()}}

	if scan.Options.HeaderMode() {
		result.Header = m.Path(scan.Options.HeaderFile)

		var header bytes.Buffer
		if err := g.EmitHeader(&header, scan, scan.Options.HeaderFile); err != nil {
			return result, runerr.Wrap(runerr.Internal, scan.Options.HeaderFile, "render header", err)
		}

		files = append(files, renderedFile{path: result.Header, content: header.Bytes()})
	}

	result.Files = Dependencies(scan, args.Input, output)

	if args.Check {
		return g.check(result, files)
	}

	// The header is only written once the runner is safely in place.
	for _, file := range files {
		written, err := g.writeIfChanged(file)
		if err != nil {
			return result, err
		}

		if written {
			result.Written = append(result.Written, file.path)
		}
	}

	return result, nil
}

type renderedFile struct {
	path    m.Path
	content []byte
}

func (g *generator) writeIfChanged(file renderedFile) (bool, error) {
	if hash, err := g.HashFile(file.path); err == nil && hash == adapter.HashBytes(file.content) {
		slog.Debug("output up to date", "path", file.path)
		return false, nil
	}

	if err := g.WriteFile(file.path, file.content, outputPerm); err != nil {
		return false, runerr.Wrap(runerr.IO, string(file.path), "write output", err)
	}

	slog.Info("wrote runner file", "path", file.path, "bytes", len(file.content))

	return true, nil
}

func (g *generator) check(result m.Result, files []renderedFile) (m.Result, error) {
	var diffs []string

	for _, file := range files {
		diff, err := g.diff(file)
		if err != nil {
			return result, err
		}

		if diff != "" {
			diffs = append(diffs, diff)
		}
	}

	if len(diffs) == 0 {
		return result, nil
	}

	result.Diff = strings.Join(diffs, "")

	return result, runerr.New(runerr.Stale, string(result.Output), "generated files are out of date")
}

func (g *generator) diff(file renderedFile) (string, error) {
	current, err := g.ReadFile(file.path)
	missing := errors.Is(err, fs.ErrNotExist)

	if err != nil && !missing {
		return "", runerr.Wrap(runerr.IO, string(file.path), "read existing output", err)
	}

	if !missing && bytes.Equal(current, file.content) {
		return "", nil
	}

	// a missing file has no lines, not one empty line
	var before []string
	if !missing {
		before = difflib.SplitLines(string(current))
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        before,
		B:        difflib.SplitLines(string(file.content)),
		FromFile: string(file.path),
		ToFile:   string(file.path) + " (generated)",
		Context:  3,
	})
	if err != nil {
		return "", runerr.Wrap(runerr.Internal, string(file.path), "diff output", err)
	}

	return diff, nil
}

func (g *generator) GenerateAll(ctx context.Context, args BatchArgs) ([]m.Result, error) {
	inputs, err := g.collectInputs(args)
	if err != nil {
		return nil, err
	}

	if len(inputs) == 0 {
		return nil, runerr.New(runerr.NoInput, "", "no test files found")
	}

	results := make([]m.Result, len(inputs))

	var (
		errs       []error
		errorsLock sync.Mutex
		group      errgroup.Group
	)

	if args.Parallel > 0 {
		group.SetLimit(args.Parallel)
	}

	for i, input := range inputs {
		group.Go(func() error {
			output := g.batchOutput(args.OutputDir, input)

			opts := args.Options.Clone()
			if opts.HeaderMode() {
				opts.HeaderFile = strings.TrimSuffix(string(output), filepath.Ext(string(output))) + ".h"
			}

			result, err := g.Generate(ctx, GenerateArgs{
				Input:   input,
				Output:  output,
				Options: opts,
				Check:   args.Check,
			})

			result.Input = input
			result.Output = output

			if err != nil && !runerr.Is(err, runerr.Stale) {
				result.Failure = err.Error()
			}

			results[i] = result

			if err != nil {
				slog.Error("failed to generate runner", "input", input, "error", err)

				errorsLock.Lock()

				errs = append(errs, err)

				errorsLock.Unlock()
			}

			return nil
		})
	}

	_ = group.Wait()

	return results, errors.Join(errs...)
}

// collectInputs expands args.Paths into test files. Files named explicitly are
// taken as they are; directories are searched with the batch pattern.
func (g *generator) collectInputs(args BatchArgs) ([]m.Path, error) {
	pattern := args.Pattern
	if pattern == "" {
		pattern = DefaultBatchPattern
	}

	selector, err := regexp.Compile(pattern)
	if err != nil {
		return nil, runerr.Wrap(runerr.Config, "", fmt.Sprintf("invalid pattern %q", pattern), err)
	}

	var inputs []m.Path

	for _, root := range args.Paths {
		info, err := g.FileInfo(root)
		if err != nil {
			return nil, runerr.Wrap(runerr.IO, string(root), "stat input", err)
		}

		if !info.IsDir() {
			inputs = append(inputs, root)
			continue
		}

		err = g.Walk(root, args.Recursive, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			name := filepath.Base(path)
			if info.IsDir() || strings.HasSuffix(name, runnerSuffix) || !selector.MatchString(name) {
				return nil
			}

			inputs = append(inputs, m.Path(path))

			return nil
		})
		if err != nil {
			return nil, runerr.Wrap(runerr.IO, string(root), "walk inputs", err)
		}
	}

	return slices.Compact(inputs), nil
}

// DefaultOutput names the runner of input: a trailing ".c" becomes "_Runner.c".
func DefaultOutput(input m.Path) m.Path {
	return m.Path(strings.TrimSuffix(string(input), ".c") + runnerSuffix)
}

func (g *generator) batchOutput(outputDir m.Path, input m.Path) m.Path {
	output := DefaultOutput(input)
	if outputDir == "" {
		return output
	}

	return g.JoinPath(string(outputDir), filepath.Base(string(output)))
}

// Dependencies lists the files that took part in generating a runner, in order
// and without repeats: input, output, header, the sources behind local includes,
// configured includes and link-only sources.
func Dependencies(scan m.Scan, input, output m.Path) []m.Path {
	files := []m.Path{input, output}

	if scan.Options.HeaderMode() {
		files = append(files, m.Path(scan.Options.HeaderFile))
	}

	for _, inc := range scan.Includes {
		if strings.HasPrefix(inc, "<") {
			continue
		}

		files = append(files, m.Path(strings.TrimSuffix(inc, filepath.Ext(inc))+".c"))
	}

	for _, inc := range scan.Options.Includes {
		files = append(files, m.Path(inc))
	}

	for _, src := range scan.Headers.LinkOnly {
		files = append(files, m.Path(src))
	}

	seen := make(map[m.Path]struct{}, len(files))
	unique := files[:0]

	for _, file := range files {
		if _, ok := seen[file]; ok {
			continue
		}

		seen[file] = struct{}{}
		unique = append(unique, file)
	}

	return unique
}
