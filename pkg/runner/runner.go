package runner

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"sync"

	"github.com/yaklabco/tuimarkup/internal/logging"
	"github.com/yaklabco/tuimarkup/pkg/compiler"
	"github.com/yaklabco/tuimarkup/pkg/config"
	"github.com/yaklabco/tuimarkup/pkg/fsutil"
	"github.com/yaklabco/tuimarkup/pkg/markup"
	"github.com/yaklabco/tuimarkup/pkg/tag"
)

// Runner checks markup files: every file is parsed and every tag converted,
// which reports all errors a render would hit before producing output.
type Runner struct {
	// Convertor decides which tags are valid.
	Convertor tag.StandardConvertor
}

// New creates a Runner that validates tags with conv.
func New(conv tag.StandardConvertor) *Runner {
	return &Runner{Convertor: conv}
}

// NewFromConfig creates a Runner that accepts the builtin tags plus the
// custom tags defined in cfg.
func NewFromConfig(cfg *config.Config) (*Runner, error) {
	if cfg == nil {
		return New(tag.StandardConvertor{}), nil
	}
	styles, err := cfg.Styles()
	if err != nil {
		return nil, fmt.Errorf("resolve custom tags: %w", err)
	}
	return New(tag.NewStandardConvertor(styles)), nil
}

// Check compiles content read from path and reports the outcome.
// It never touches the file system, so it also serves standard input.
func (r *Runner) Check(path string, content []byte) FileOutcome {
	source := string(content)
	outcome := FileOutcome{
		Path:  path,
		Lines: strings.Count(strings.TrimSuffix(source, "\n"), "\n") + 1,
	}

	converted, err := compiler.Convert(source, r.Convertor.Convert)
	if err != nil {
		diag := compiler.NewDiagnostic(path, source, err)
		outcome.Diagnostic = &diag
		return outcome
	}

	for _, line := range converted {
		outcome.Elements += countElements(line)
	}
	return outcome
}

// Run discovers files under opts.Paths and checks them concurrently.
// Outcomes are ordered by path whatever the number of workers.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	logger := logging.FromContext(ctx)
	logger.Debug("discovered files", logging.FieldFilesDiscovered, len(files))

	result := &Result{
		Files: make([]FileOutcome, 0, len(files)),
		Stats: newStats(),
	}
	result.Stats.FilesDiscovered = len(files)

	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > len(files) {
		jobs = len(files)
	}
	logger.Debug("starting workers", logging.FieldJobs, jobs)

	workCh := make(chan string)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup

	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.worker(ctx, workCh, outCh)
		}()
	}

	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	// Workers finish out of order.
	outcomes := make(map[string]FileOutcome, len(files))
	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}

	for _, path := range files {
		if outcome, ok := outcomes[path]; ok {
			result.accumulate(outcome)
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}

	logger.Debug("check complete",
		logging.FieldFilesChecked, result.Stats.FilesChecked,
		logging.FieldFilesWithErrors, result.Stats.FilesWithErrors,
	)

	return result, nil
}

func (r *Runner) worker(ctx context.Context, workCh <-chan string, outCh chan<- FileOutcome) {
	for path := range workCh {
		select {
		case <-ctx.Done():
			return
		default:
		}

		var outcome FileOutcome
		content, err := fsutil.ReadFile(ctx, path)
		if err != nil {
			outcome = FileOutcome{Path: path, Error: fmt.Errorf("read file: %w", err)}
		} else {
			outcome = r.Check(path, content)
		}

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}

func countElements[T any](items []tag.Item[T]) int {
	count := 0
	for _, item := range items {
		if item.Kind == markup.ItemElement {
			count += 1 + countElements(item.Children)
		}
	}
	return count
}
