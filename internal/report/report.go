// Package report generates the owners documents of an allure report from results directories.
package report

import (
	"context"
	"errors"
	"fmt"

	"github.com/robotomize/go-allure-owners/internal/exporter"
	"github.com/robotomize/go-allure-owners/internal/launch"
	"github.com/robotomize/go-allure-owners/internal/logging"
	"github.com/robotomize/go-allure-owners/internal/owners"
	"github.com/robotomize/go-allure-owners/internal/tree"
)

type Option func(g *Generator)

func WithWidgetLimit(limit int) Option {
	return func(g *Generator) {
		g.widgetLimit = limit
	}
}

func WithLogger(logger logging.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// Summary describes one generation.
type Summary struct {
	Launches int
	Results  int

	// Leaves counts tree leaves, a result with two owners counts twice.
	Leaves int
	Widget owners.Widget

	// ReadErr joins the per-file errors of all launches.
	ReadErr error
}

type Generator struct {
	reader      launch.Reader
	writer      exporter.Writer
	widgetLimit int
	logger      logging.Logger
}

func New(reader launch.Reader, writer exporter.Writer, opts ...Option) *Generator {
	g := Generator{
		reader:      reader,
		writer:      writer,
		widgetLimit: owners.WidgetLimit,
		logger:      logging.Nop(),
	}

	for _, o := range opts {
		o(&g)
	}

	return &g
}

// Generate reads all launches, builds the owners tree once and writes the tree and widget
// documents from it, the tree first.
func (g *Generator) Generate(ctx context.Context) (Summary, error) {
	launches, err := g.reader.ReadAll(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("launch reader ReadAll: %w", err)
	}

	summary := Summary{Launches: len(launches)}
	errs := make([]error, 0)
	for _, l := range launches {
		summary.Results += len(l.Tests)
		if l.Err != nil {
			errs = append(errs, l.Err)
		}
	}
	summary.ReadErr = errors.Join(errs...)

	data := owners.Build(launches)
	tree.Walk(
		data.Root(), func(n *tree.Node, _ int) {
			if n.Kind() == tree.KindLeaf {
				summary.Leaves++
			}
		},
	)
	g.logger.Debugf("owners tree: %d groups, %d leaves", len(data.Groups()), summary.Leaves)

	widget := owners.ToWidget(data, g.widgetLimit)
	if err = g.writer.Write(
		ctx,
		exporter.Document{Dir: exporter.DataDir, Name: owners.JSONFileName, Body: owners.ToJSONTree(data)},
		exporter.Document{Dir: exporter.WidgetsDir, Name: owners.JSONFileName, Body: widget},
	); err != nil {
		return Summary{}, fmt.Errorf("exporter Write: %w", err)
	}

	summary.Widget = widget
	g.logger.Infof("owners report: %d owners, top %d written", widget.Total, len(widget.Items))

	return summary, nil
}
