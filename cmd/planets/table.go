package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/couchcryptid/planet-catalog/internal/adapter/swapi"
	"github.com/couchcryptid/planet-catalog/internal/adapter/terminal"
	"github.com/couchcryptid/planet-catalog/internal/observability"
	"github.com/couchcryptid/planet-catalog/internal/pipeline"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
)

type tableOptions struct {
	url      string
	timeout  time.Duration
	format   string
	locale   string
	strict   bool
	logLevel string
}

func newTableCommand() *cobra.Command {
	opts := tableOptions{}

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Fetch the catalog and print it as a table",
		Long: `Fetch the first page of the planet catalog, derive the population and
water surface area columns, and print the rows sorted by name.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTable(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.url, "url", swapi.DefaultURL, "planets endpoint")
	flags.DurationVar(&opts.timeout, "timeout", 10*time.Second, "HTTP request timeout")
	flags.StringVar(&opts.format, "format", terminal.FormatTable,
		"output format ("+strings.Join(terminal.Formats, ", ")+")")
	flags.StringVar(&opts.locale, "locale", "en", "BCP 47 locale used to order planet names")
	flags.BoolVar(&opts.strict, "strict", false, "fail on malformed records instead of skipping them")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	return cmd
}

func runTable(cmd *cobra.Command, opts tableOptions) error {
	if opts.timeout <= 0 {
		return errors.New("--timeout must be positive")
	}
	locale, err := language.Parse(opts.locale)
	if err != nil {
		return fmt.Errorf("invalid --locale: %w", err)
	}
	renderer, err := terminal.NewTableRenderer(cmd.OutOrStdout(), opts.format)
	if err != nil {
		return err
	}

	logger := observability.NewCLILogger(cmd.ErrOrStderr(), opts.logLevel)
	// The CLI has no /metrics endpoint; keep its collectors off the default registry.
	metrics := observability.NewMetricsWith(prometheus.NewRegistry())

	client := swapi.NewClient(opts.url, opts.timeout, metrics, logger)
	shaper := pipeline.NewShaper(locale, opts.strict, logger, metrics)
	controller := pipeline.New(client, shaper, logger, metrics)

	_ = controller.Run(cmd.Context())

	switch s := controller.State().(type) {
	case pipeline.Loaded:
		renderer.RenderTable(s.Rows)
		if s.Skipped > 0 {
			fmt.Fprintf(cmd.ErrOrStderr(), "%d malformed record(s) skipped\n", s.Skipped)
		}
		return nil
	case pipeline.Failed:
		return errors.New(s.Message)
	default:
		return errors.New("catalog fetch interrupted")
	}
}
