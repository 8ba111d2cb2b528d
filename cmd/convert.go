// Package cmd — convert pipeline.
// runConvert orchestrates: fetch → decode → scope → convert → render → write.
package cmd

import (
	"bytes"
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/gaurav-prasanna/html2md/core"
	"github.com/gaurav-prasanna/html2md/core/convert"
	"github.com/gaurav-prasanna/html2md/core/decode"
	"github.com/gaurav-prasanna/html2md/core/extract"
	"github.com/gaurav-prasanna/html2md/core/fetch"
	"github.com/gaurav-prasanna/html2md/core/logger"
	"github.com/gaurav-prasanna/html2md/core/normalize"
	"github.com/gaurav-prasanna/html2md/core/output"
	"github.com/gaurav-prasanna/html2md/core/render"
	"github.com/spf13/cobra"
)

// pipeline bundles the stages used for one run.
type pipeline struct {
	fetcher  core.Fetcher
	engine   core.Engine
	renderer core.Renderer
	encoding string
	selector string
	log      *log.Logger
}

func runConvert(cmd *cobra.Command, args []string) error {
	source := args[0]
	lg := logger.New(cmd.ErrOrStderr(), logger.Level(flagVerbose, flagQuiet))

	encoding, err := decode.Canonical(flagCoding)
	if err != nil {
		return err
	}

	renderer, err := render.New(flagFormat)
	if err != nil {
		return err
	}

	engine, err := normalize.New(flagEngine, convert.Options{Encoding: encoding, Logger: lg})
	if err != nil {
		return err
	}

	p := &pipeline{
		fetcher:  fetch.New(flagTimeout),
		engine:   engine,
		renderer: renderer,
		encoding: encoding,
		selector: flagSelect,
		log:      lg,
	}

	data, err := p.process(cmd.Context(), source)
	if err != nil {
		return err
	}

	writer := output.New(flagOutput)
	writer.SetStdout(cmd.OutOrStdout())
	path, err := writer.Write(source, data, renderer.Extension())
	if err != nil {
		return err
	}
	if path != "-" {
		lg.Info("written", "path", path)
	}
	return nil
}

// process runs a single source through the pipeline.
func (p *pipeline) process(ctx context.Context, source string) ([]byte, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	// 1. Fetch
	result, err := p.fetcher.Fetch(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}

	// 2. Decode and parse
	doc, err := decode.Parse(bytes.NewReader(result.Body), p.encoding, result.ContentType)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	// 3. Narrow to the selected region
	roots, err := extract.Scope(doc, p.selector)
	if err != nil {
		return nil, fmt.Errorf("select: %w", err)
	}

	// 4. Convert to Markdown
	conv, err := p.engine.Convert(roots)
	if err != nil {
		return nil, fmt.Errorf("convert: %w", err)
	}
	p.log.Debug("converted", "source", source, "engine", p.engine.Name(),
		"unknown", len(convert.Tags(conv.Diagnostics, convert.UnknownTag)),
		"not_implemented", len(convert.Tags(conv.Diagnostics, convert.NotYetImplemented)))

	// 5. Render
	title, lang := extract.Metadata(doc)
	meta := core.PageMetadata{
		Source:   source,
		Title:    title,
		Language: lang,
		Encoding: p.encoding,
		Engine:   p.engine.Name(),
	}
	data, err := p.renderer.Render(conv, meta)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return data, nil
}
