package domain

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/getcord/importfix/internal/adapter"
	"github.com/getcord/importfix/internal/controller"
	m "github.com/getcord/importfix/internal/model"
)

// RunArgs holds the arguments shared by Run and Estimate.
type RunArgs struct {
	// Paths are explicit files or directories. Empty means walk the configured roots.
	Paths []m.Path
	// Exclude drops files whose slash-separated path matches any of these regexes.
	Exclude []string
	Mode    m.Mode
	// Threads is the number of files processed concurrently; <= 1 is sequential.
	Threads         int
	ShardIndex      int
	TotalShardCount int
	// Summary prints a table of changed files after a rewrite run.
	Summary bool
}

// Workflow defines the operations exposed to the CLI.
type Workflow interface {
	// Run rewrites every selected file in place.
	Run(ctx context.Context, args RunArgs) error
	// Estimate reports which files would change without writing any of them.
	Estimate(ctx context.Context, args RunArgs) error
}

type workflow struct {
	cfg       m.Config
	fsAdapter adapter.SourceFSAdapter
	mutator   *FileMutator
	ui        controller.UI
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(cfg m.Config, fsAdapter adapter.SourceFSAdapter, mutator *FileMutator, ui controller.UI) Workflow {
	return &workflow{
		cfg:       cfg,
		fsAdapter: fsAdapter,
		mutator:   mutator,
		ui:        ui,
	}
}

// NewDefaultWorkflow builds the whole pipeline for cfg on top of fsAdapter.
func NewDefaultWorkflow(cfg m.Config, fsAdapter adapter.SourceFSAdapter, ui controller.UI) Workflow {
	lines := NewLineProcessor(
		MustRuleSet(DefaultRules(cfg.Rules)...),
		NewPathResolver(cfg, fsAdapter),
		NewImportLocator(cfg.Namespaces),
	)

	return NewWorkflow(cfg, fsAdapter, NewFileMutator(fsAdapter, lines), ui)
}

func (w *workflow) Run(ctx context.Context, args RunArgs) error {
	return w.execute(ctx, args, false)
}

func (w *workflow) Estimate(ctx context.Context, args RunArgs) error {
	return w.execute(ctx, args, true)
}

func (w *workflow) execute(ctx context.Context, args RunArgs, dryRun bool) error {
	files, err := w.Sources(args.Paths, args.Exclude)
	if err != nil {
		return err
	}

	files = shardFiles(files, args.ShardIndex, args.TotalShardCount)

	threads := max(args.Threads, 1)

	mode := controller.WithRewriteMode()
	if dryRun {
		mode = controller.WithEstimateMode()
	}

	if err := w.ui.Start(mode); err != nil {
		return fmt.Errorf("failed to start ui: %w", err)
	}

	defer func() {
		w.ui.Close()
		w.ui.Wait()
	}()

	w.ui.DisplayRunInfo(len(files), threads, args.ShardIndex, max(args.TotalShardCount, 1))

	results, err := w.processAll(ctx, files, args.Mode, threads, dryRun)
	if err != nil {
		return err
	}

	if dryRun || args.Summary {
		return w.ui.DisplaySummary(results, dryRun)
	}

	return nil
}

func (w *workflow) processAll(ctx context.Context, files []m.Path, mode m.Mode, threads int, dryRun bool) (m.FileResults, error) {
	results := make(m.FileResults, len(files))

	if threads == 1 {
		for i, file := range files {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			res, err := w.processOne(file, mode, dryRun)
			if err != nil {
				return nil, err
			}

			results[i] = res
		}

		return results, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(threads)

	for i, file := range files {
		i, file := i, file

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			res, err := w.processOne(file, mode, dryRun)
			if err != nil {
				return err
			}

			results[i] = res

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func (w *workflow) processOne(file m.Path, mode m.Mode, dryRun bool) (m.FileResult, error) {
	reporter := ReporterFunc(w.ui.DisplayUnresolved)

	var (
		res m.FileResult
		err error
	)

	if dryRun {
		res, err = w.mutator.Inspect(file, mode, reporter)
	} else {
		res, err = w.mutator.ProcessFile(file, mode, reporter)
	}

	if err != nil {
		return res, err
	}

	w.ui.DisplayFileResult(res)

	return res, nil
}

// Sources lists the files a run would process, in processing order.
// Explicit paths keep their order; directories among them are walked.
// Without paths the configured walk roots are visited, skipping missing ones.
func (w *workflow) Sources(paths []m.Path, exclude []string) ([]m.Path, error) {
	excludes, err := compileExcludes(exclude)
	if err != nil {
		return nil, err
	}

	seen := make(map[m.Path]struct{})

	var files []m.Path

	add := func(path m.Path) {
		if _, ok := seen[path]; ok {
			return
		}

		if isExcluded(path, excludes) {
			return
		}

		seen[path] = struct{}{}
		files = append(files, path)
	}

	if len(paths) == 0 {
		for _, root := range w.cfg.WalkRoots {
			dir := w.fsAdapter.JoinPath(string(w.cfg.Root), string(root))

			if _, err := w.fsAdapter.FileInfo(dir); err != nil {
				if os.IsNotExist(err) {
					continue
				}

				return nil, fmt.Errorf("root path error: %w", err)
			}

			if err := w.walk(dir, add); err != nil {
				return nil, err
			}
		}

		return files, nil
	}

	for _, path := range paths {
		info, err := w.fsAdapter.FileInfo(path)
		if err != nil {
			return nil, fmt.Errorf("path error: %w", err)
		}

		if !info.IsDir() {
			add(path)
			continue
		}

		if err := w.walk(path, add); err != nil {
			return nil, err
		}
	}

	return files, nil
}

func (w *workflow) walk(root m.Path, add func(m.Path)) error {
	return w.fsAdapter.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			if path != string(root) && slices.Contains(w.cfg.SkipDirs, info.Name()) {
				return filepath.SkipDir
			}

			return nil
		}

		if w.isSourceFile(path) {
			add(m.Path(path))
		}

		return nil
	})
}

func (w *workflow) isSourceFile(path string) bool {
	for _, ext := range w.cfg.SourceExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}

	return false
}

func compileExcludes(patterns []string) ([]*regexp.Regexp, error) {
	excludes := make([]*regexp.Regexp, 0, len(patterns))

	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}

		excludes = append(excludes, re)
	}

	return excludes, nil
}

func isExcluded(path m.Path, excludes []*regexp.Regexp) bool {
	slashed := filepath.ToSlash(string(path))

	for _, re := range excludes {
		if re.MatchString(slashed) {
			return true
		}
	}

	return false
}

// shardFiles keeps every total-th file starting at index. Invalid shard
// settings select everything.
func shardFiles(files []m.Path, index, total int) []m.Path {
	if total <= 1 || index < 0 || index >= total {
		return files
	}

	sharded := make([]m.Path, 0, len(files)/total+1)

	for i, file := range files {
		if i%total == index {
			sharded = append(sharded, file)
		}
	}

	return sharded
}
