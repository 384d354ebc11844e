// Package launch reads allure results directories into launches.
package launch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/robotomize/go-allure-owners/internal/allure"
	ownersfs "github.com/robotomize/go-allure-owners/internal/fs"
	"github.com/robotomize/go-allure-owners/internal/logging"
)

// ResultPattern matches allure test result files inside a results directory.
const ResultPattern = "*-result.json"

type Option func(r *reader)

func WithLogger(logger logging.Logger) Option {
	return func(r *reader) {
		r.logger = logger
	}
}

type Reader interface {
	ReadAll(ctx context.Context) ([]allure.Launch, error)
}

func NewReader(dirs []ownersfs.FS, opts ...Option) Reader {
	r := reader{dirs: dirs, logger: logging.Nop()}
	for _, o := range opts {
		o(&r)
	}

	return &r
}

type reader struct {
	dirs   []ownersfs.FS
	logger logging.Logger
}

// ReadAll reads one launch per directory in the given order. Result files that cannot be
// decoded are skipped and reported in Launch.Err; an unreadable directory fails the whole read.
func (r *reader) ReadAll(ctx context.Context) ([]allure.Launch, error) {
	launches := make([]allure.Launch, 0, len(r.dirs))
	for _, dir := range r.dirs {
		l, err := r.read(ctx, dir)
		if err != nil {
			return nil, fmt.Errorf("read launch %s: %w", dir.RootDir(), err)
		}

		r.logger.Debugf("launch %s: %d results", l.Name, len(l.Tests))
		if l.Err != nil {
			r.logger.Errorf("launch %s: %v", l.Name, l.Err)
		}

		launches = append(launches, l)
	}

	return launches, nil
}

func (r *reader) read(ctx context.Context, dir ownersfs.FS) (allure.Launch, error) {
	if _, err := fs.Stat(dir, "."); err != nil {
		return allure.Launch{}, fmt.Errorf("fs.Stat: %w", err)
	}

	names, err := fs.Glob(dir, ResultPattern)
	if err != nil {
		return allure.Launch{}, fmt.Errorf("fs.Glob: %w", err)
	}

	// Decoded results keep the sorted file order, errors are collected per file.
	results := make([]*allure.Test, len(names))
	errs := make([]error, len(names))

	wg, grpCtx := errgroup.WithContext(ctx)
	wg.SetLimit(runtime.NumCPU())

	for idx, name := range names {
		idx, name := idx, name

		wg.Go(
			func() error {
				if err := grpCtx.Err(); err != nil {
					return err
				}

				tc, decErr := decode(dir, name)
				if decErr != nil {
					errs[idx] = decErr
					return nil
				}
				results[idx] = &tc

				return nil
			},
		)
	}

	if err = wg.Wait(); err != nil {
		return allure.Launch{}, err
	}

	l := allure.Launch{
		Name:  dir.RootDir(),
		Tests: make([]allure.Test, 0, len(names)),
		Err:   errors.Join(errs...),
	}

	for _, tc := range results {
		if tc != nil {
			l.Tests = append(l.Tests, *tc)
		}
	}

	return l, nil
}

func decode(dir fs.FS, name string) (allure.Test, error) {
	file, err := dir.Open(name)
	if err != nil {
		return allure.Test{}, fmt.Errorf("open %s: %w", name, err)
	}
	defer file.Close()

	var tc allure.Test
	if err = json.NewDecoder(file).Decode(&tc); err != nil {
		return allure.Test{}, fmt.Errorf("json.NewDecoder.Decode %s: %w", name, err)
	}

	return tc, nil
}
