// Package cmd implements the CLI for html2md using Cobra.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/gaurav-prasanna/html2md/core/decode"
	"github.com/gaurav-prasanna/html2md/core/normalize"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

// Flag variables.
var (
	flagCoding  string
	flagOutput  string
	flagFormat  string
	flagSelect  string
	flagEngine  string
	flagTimeout time.Duration
	flagVerbose bool
	flagQuiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "html2md <source>",
	Short: "HTML to Markdown converter",
	Long: `html2md converts an HTML document into Markdown.

The source is a file path, an http(s) URL, or "-" for standard input.
Headings, paragraphs and links are converted; script, style and form
content is dropped. Tags without a conversion are reported on stderr.

Examples:
  html2md page.html
  html2md https://example.com -c windows-1252
  html2md https://example.com --select article --format json -o out/`,
	Version:       version,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runConvert,
}

func init() {
	rootCmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	defaultCoding := os.Getenv("HTML2MD_CODING")
	if defaultCoding == "" {
		defaultCoding = decode.DefaultEncoding
	}

	f := rootCmd.Flags()
	f.StringVarP(&flagCoding, "coding", "c", defaultCoding, `Override document encoding ("auto" detects it)`)
	f.StringVarP(&flagOutput, "output", "o", "", "Output file or directory (default: stdout)")
	f.StringVarP(&flagFormat, "format", "f", "markdown", "Output format: markdown, json or pdf")
	f.StringVarP(&flagSelect, "select", "s", "", "CSS selector limiting the converted region")
	f.StringVarP(&flagEngine, "engine", "e", normalize.EngineTags, fmt.Sprintf("Conversion engine %v", normalize.Engines()))
	f.DurationVar(&flagTimeout, "timeout", 30*time.Second, "HTTP timeout for URL sources")
	f.BoolVarP(&flagVerbose, "verbose", "v", false, "Log every unconverted tag")
	f.BoolVarP(&flagQuiet, "quiet", "q", false, "Only log errors")
}

// Execute runs the root command.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "html2md:", err)
		stop()
		os.Exit(1)
	}
}
