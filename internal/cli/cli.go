// Package cli provides the command-line interface for the OpenAPI explorer.
package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/GabrielNunesIT/go-libs/logger"
	"github.com/GabrielNunesIT/openapi-explorer/internal/adapters/converters"
	"github.com/GabrielNunesIT/openapi-explorer/internal/adapters/document"
	"github.com/GabrielNunesIT/openapi-explorer/internal/adapters/prompt"
	"github.com/GabrielNunesIT/openapi-explorer/internal/adapters/reporter"
	"github.com/GabrielNunesIT/openapi-explorer/internal/config"
	"github.com/GabrielNunesIT/openapi-explorer/internal/domain"
	"github.com/GabrielNunesIT/openapi-explorer/internal/explorer"
	"github.com/GabrielNunesIT/openapi-explorer/internal/presenter"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// CLI holds the command-line interface configuration.
type CLI struct {
	log        logger.ILogger
	rootCmd    *cobra.Command
	cfg        *config.Config
	configFile string
	verbose    bool
	outputFile string
	format     string

	newSelector func(cfg *config.Config) domain.Selector
}

// New creates a new CLI instance.
func New(log logger.ILogger) *CLI {
	cli := &CLI{
		log:         log,
		newSelector: defaultSelector,
	}

	cli.rootCmd = &cobra.Command{
		Use:               "openapi-explorer",
		Short:             "Explore OpenAPI specifications from the terminal",
		Long:              "A CLI tool that loads an OpenAPI 3.x specification and lets you browse its endpoints one at a time.",
		PersistentPreRunE: cli.setup,
	}

	cli.rootCmd.AddCommand(cli.exploreCommand(), cli.listCommand(), cli.exportCommand())
	cli.setupFlags()

	return cli
}

func (c *CLI) setupFlags() {
	c.rootCmd.PersistentFlags().StringVar(&c.configFile, "config", "", "config file (default is "+config.DefaultFile+" when present)")
	c.rootCmd.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Enable verbose output")
}

func (c *CLI) exploreCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "explore <openApiFilePath>",
		Short: "Explore an OpenAPI spec",
		Args:  cobra.ExactArgs(1),
		RunE:  c.runExplore,
	}
}

func (c *CLI) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list <openApiFilePath>",
		Short: "List the endpoints of an OpenAPI spec",
		Args:  cobra.ExactArgs(1),
		RunE:  c.runList,
	}
}

func (c *CLI) exportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <openApiFilePath>",
		Short: "Write the summary and every endpoint to a file",
		Args:  cobra.ExactArgs(1),
		RunE:  c.runExport,
	}

	cmd.Flags().StringVarP(&c.outputFile, "output", "o", "", "Path for the output file (required)")
	cmd.Flags().StringVarP(&c.format, "format", "f", "", "Output format: text, pdf, docx, confluence (default from config)")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

// Execute runs the CLI.
func (c *CLI) Execute() error {
	return c.rootCmd.Execute()
}

func (c *CLI) setup(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		c.log.Errorf("Warning: Failed to load .env file: %v", err)
	}

	cfg, err := config.Load(c.configFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = c.verbose
	}

	c.cfg = cfg

	return nil
}

func (c *CLI) console(cmd *cobra.Command) *reporter.Console {
	return reporter.NewConsole(cmd.OutOrStdout(), c.log, c.cfg.Verbose)
}

func (c *CLI) load(rep domain.Reporter, path string) (*document.Document, []domain.EndpointSummary, error) {
	rep.Verbosef("Loading OpenAPI specification from: %s", path)

	doc, index, err := document.LoadAndIndex(path, document.Options{AllowExternalRefs: c.cfg.External.Refs})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load OpenAPI specification: %w", err)
	}

	rep.Verbosef("Indexed %d endpoints", len(index))

	return doc, index, nil
}

func (c *CLI) runExplore(cmd *cobra.Command, args []string) error {
	rep := c.console(cmd)

	doc, index, err := c.load(rep, args[0])
	if err != nil {
		return err
	}

	if text := presenter.FormatDocumentSummary(document.Summarize(doc)); text != "" {
		rep.WriteLine(text)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	code := explorer.RunExplorationLoop(ctx, index, doc, c.newSelector(c.cfg), rep)
	if code != explorer.ExitOK {
		return fmt.Errorf("exploration ended with status %d", code)
	}

	return nil
}

func (c *CLI) runList(cmd *cobra.Command, args []string) error {
	rep := c.console(cmd)

	_, index, err := c.load(rep, args[0])
	if err != nil {
		return err
	}

	rep.WriteLine("Endpoints:")
	for _, entry := range index {
		rep.WriteLine(fmt.Sprintf("%8s %s", entry.OperationType, entry.Path))
	}

	return nil
}

func (c *CLI) runExport(cmd *cobra.Command, args []string) error {
	rep := c.console(cmd)

	format := c.format
	if format == "" {
		format = c.cfg.Export.Format
	}

	converter, err := converters.New(format)
	if err != nil {
		return err
	}

	doc, index, err := c.load(rep, args[0])
	if err != nil {
		return err
	}

	report, err := explorer.BuildReport(document.Summarize(doc), index, doc)
	if err != nil {
		return fmt.Errorf("failed to build report: %w", err)
	}

	rep.Verbosef("Converting to %s format...", converter.Format())

	outputFile, err := os.Create(c.outputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer outputFile.Close()

	if err := converter.Convert(report, outputFile); err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	rep.Verbosef("Successfully created: %s", c.outputFile)

	return nil
}

func defaultSelector(cfg *config.Config) domain.Selector {
	return prompt.NewHuhSelector(
		prompt.WithHeight(cfg.Prompt.Height),
		prompt.WithFiltering(cfg.Prompt.Filtering),
	)
}
