package exporter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sync/errgroup"
)

const (
	DataDir    = "data"
	WidgetsDir = "widgets"
)

// Document is one json document of the report, written to <report>/<Dir>/<Name>.
type Document struct {
	Dir  string
	Name string
	Body any
}

type Writer interface {
	// Write encodes docs into the report directory and into every mirror writer.
	Write(ctx context.Context, docs ...Document) error
}

type WriterOption func(*writer)

func WriteToDir(pth string) WriterOption {
	return func(w *writer) {
		w.pth = pth
	}
}

func WriteReportTo(writers ...io.Writer) WriterOption {
	return func(w *writer) {
		w.reportWriters = append(w.reportWriters, writers...)
	}
}

func WithIndent(indent string) WriterOption {
	return func(w *writer) {
		w.indent = indent
	}
}

func NewWriter(opts ...WriterOption) Writer {
	w := writer{reportWriters: []io.Writer{io.Discard}}
	for _, o := range opts {
		o(&w)
	}

	return &w
}

type writer struct {
	pth           string
	indent        string
	reportWriters []io.Writer

	// mu serializes writes to the shared mirror writers.
	mu sync.Mutex
}

// Write stores the files of docs concurrently, then mirrors the documents in argument order.
// It is safe for concurrent use.
func (o *writer) Write(ctx context.Context, docs ...Document) error {
	// Check if the context is done to return early.
	if err := ctx.Err(); err != nil {
		return err
	}

	// Encode once, the same bytes go to the report file and the mirrors.
	bodies := make([][]byte, len(docs))
	for i, d := range docs {
		buf := bytes.NewBuffer(make([]byte, 0, 4096))
		enc := json.NewEncoder(buf)
		enc.SetIndent("", o.indent)
		if err := enc.Encode(d.Body); err != nil {
			return fmt.Errorf("json.NewEncoder.Encode %s: %w", d.Name, err)
		}
		bodies[i] = buf.Bytes()
	}

	if o.pth != "" {
		wg, grpCtx := errgroup.WithContext(ctx)
		for i, d := range docs {
			i, d := i, d
			wg.Go(
				func() error {
					if err := grpCtx.Err(); err != nil {
						return err
					}

					return o.writeFile(filepath.Join(o.pth, d.Dir), d.Name, bodies[i])
				},
			)
		}

		if err := wg.Wait(); err != nil {
			return err
		}
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	for _, body := range bodies {
		for _, w := range o.reportWriters {
			if _, err := w.Write(body); err != nil {
				return fmt.Errorf("report writer Write: %w", err)
			}
		}
	}

	return nil
}

// writeFile writes body to dir/name, creating dir if needed.
func (o *writer) writeFile(dir, name string, body []byte) (err error) {
	if err = mkdir(dir); err != nil {
		return err
	}

	pth := filepath.Join(dir, name)
	file, err := os.OpenFile(pth, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("os.OpenFile: %w", err)
	}

	defer func() {
		if syncErr := file.Sync(); syncErr != nil && err == nil {
			err = fmt.Errorf("file Sync: %w", syncErr)
		}

		_ = file.Close()
	}()

	if _, err = file.Write(body); err != nil {
		return fmt.Errorf("os.OpenFile Write: %w", err)
	}

	return nil
}
