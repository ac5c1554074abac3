package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/honeybbq/autosview/backend/autos"
	"github.com/honeybbq/autosview/extractor"
	"github.com/honeybbq/autosview/pkg/autosview"
	"github.com/honeybbq/autosview/pkg/codec"
	"github.com/honeybbq/autosview/pkg/config"
	"github.com/honeybbq/autosview/pkg/document"
	"github.com/honeybbq/autosview/pkg/logger"
	"github.com/honeybbq/autosview/pkg/renderer/formats"
	"github.com/honeybbq/autosview/pkg/server"
)

var version = "0.1.0"

// Loaded by the root command before any subcommand runs.
var (
	cfg *config.Config
	log *slog.Logger
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "autosview",
		Short: "Render legal case documents as readable sections",
		Long: `autosview turns structured case documents (analyses, rulings, petitions)
into ordered, titled sections and presents them as text, Markdown or HTML.

Documents of an unrecognized kind are shown as a generic JSON dump.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("config")
			level, _ := cmd.Flags().GetString("log-level")

			loaded, err := config.LoadOptional(path)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if err := loaded.ApplyEnv(".env"); err != nil {
				return fmt.Errorf("load environment: %w", err)
			}
			if level != "" {
				loaded.Log.Level = level
			}
			cfg = loaded
			log = logger.Init(&logger.Config{
				Level:     cfg.Log.Level,
				Format:    cfg.Log.Format,
				File:      cfg.Log.File,
				MaxSizeMB: cfg.Log.MaxSizeMB,
			})
			return nil
		},
	}
	rootCmd.PersistentFlags().String("config", "autosview.yaml", "Configuration file (missing file means defaults)")
	rootCmd.PersistentFlags().String("log-level", "", "Override log level (debug, info, warn, error)")

	rootCmd.AddCommand(renderCmd())
	rootCmd.AddCommand(kindsCmd())
	rootCmd.AddCommand(serveCmd())
	return rootCmd
}

func renderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [file|-]",
		Short: "Render a document",
		Long: `Render a JSON or YAML document to stdout or a file.

Overlays are merged onto the base document in order before rendering;
array elements are paired by the configured identifier fields.

Example:
  autosview render sentenca.json
  autosview render analise.yaml --format md --overlay dispositivo.json
  cat doc.json | autosview render - --kind ruling`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kindFlag, _ := cmd.Flags().GetString("kind")
			format, _ := cmd.Flags().GetString("format")
			overlays, _ := cmd.Flags().GetStringSlice("overlay")
			output, _ := cmd.Flags().GetString("output")
			tag, _ := cmd.Flags().GetString("tag")

			input := "-"
			if len(args) > 0 {
				input = args[0]
			}

			decodeOpts := autosview.DecodeOptions{
				Identifiers: cfg.Render.Identifiers,
				Source:      input,
			}
			if kindFlag != "" {
				decodeOpts.Kind = document.ParseKind(kindFlag)
			}
			doc, err := loadDocument(input, overlays, decodeOpts, cmd.InOrStdin())
			if err != nil {
				return err
			}

			opts := autosview.RenderOptions{
				Format:          cfg.Render.Format,
				FallbackOnEmpty: cfg.Render.FallbackOnEmpty,
				GenerationTag:   cfg.Render.GenerationTag,
			}
			if format != "" {
				opts.Format = format
			}
			if cmd.Flags().Changed("fallback-on-empty") {
				opts.FallbackOnEmpty, _ = cmd.Flags().GetBool("fallback-on-empty")
			}
			if tag != "" {
				opts.GenerationTag = tag
			}

			backend := autos.New(extractor.NewDispatcher(log))
			bundle, err := backend.Render(cmd.Context(), doc, opts)
			if err != nil {
				return fmt.Errorf("render: %w", err)
			}
			log.Debug("Document rendered",
				"kind", bundle.Metadata.Kind,
				"format", bundle.Metadata.Format,
				"sections", bundle.Metadata.Sections)

			if err := writeOutput(cmd.OutOrStdout(), output, bundle.Content); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().String("kind", "", "Document kind (analysis, ruling, petition); overrides the input")
	cmd.Flags().StringP("format", "f", "", "Output format (text, markdown, html)")
	cmd.Flags().StringSlice("overlay", nil, "Document layers merged onto the input, in order")
	cmd.Flags().StringP("output", "o", "", "Output path (default: stdout)")
	cmd.Flags().Bool("fallback-on-empty", false, "Show the generic dump when the document yields no sections")
	cmd.Flags().String("tag", "", "Generation tag recorded in the output metadata")
	return cmd
}

func kindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List supported document kinds and output formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Document kinds:")
			for _, k := range extractor.NewDispatcher(log).Kinds() {
				fmt.Fprintf(out, "  - %s\n", k)
			}
			fmt.Fprintln(out, "  - (anything else: generic dump)")
			fmt.Fprintln(out, "Natureza codes (tipo.key):")
			for _, code := range document.MappedNaturezas() {
				fmt.Fprintf(out, "  %4d  %s -> %s\n", code, document.NaturezaDescription(code), document.KindFromNatureza(code))
			}
			fmt.Fprintln(out, "Output formats:")
			fmt.Fprintf(out, "  - %s\n", strings.Join(formats.Names(), "\n  - "))
			return nil
		},
	}
}

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the render API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			port, _ := cmd.Flags().GetInt("port")
			if port == 0 {
				port = cfg.Server.Port
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := server.NewServer(log, autos.New(extractor.NewDispatcher(log)), server.Options{
				Addr:         fmt.Sprintf(":%d", port),
				MaxBodyBytes: cfg.Server.MaxBodyBytes,
				Defaults: autosview.RenderOptions{
					Format:          cfg.Render.Format,
					FallbackOnEmpty: cfg.Render.FallbackOnEmpty,
					GenerationTag:   cfg.Render.GenerationTag,
				},
			})
			return srv.Start(ctx)
		},
	}
	cmd.Flags().IntP("port", "p", 0, "Listen port (default: server.port from config)")
	return cmd
}

// loadDocument decodes input and merges overlays onto it.
func loadDocument(input string, overlays []string, opts autosview.DecodeOptions, stdin io.Reader) (*document.Document, error) {
	base, err := readTree(input, stdin)
	if err != nil {
		return nil, err
	}
	if len(overlays) == 0 {
		return codec.FromTree(base, opts)
	}

	layers := []map[string]any{base}
	for _, path := range overlays {
		tree, err := readTree(path, stdin)
		if err != nil {
			return nil, err
		}
		layers = append(layers, tree)
	}
	merged, err := autosview.MergeLayers(layers, opts.Identifiers)
	if err != nil {
		return nil, fmt.Errorf("merge overlays: %w", err)
	}
	return codec.FromTree(merged, opts)
}

func readTree(path string, stdin io.Reader) (map[string]any, error) {
	data, err := readInput(path, stdin)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	tree, err := codec.ForPath(path).Tree(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", displayName(path), err)
	}
	return tree, nil
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}

func displayName(path string) string {
	if path == "" || path == "-" {
		return "stdin"
	}
	return path
}

func writeOutput(stdout io.Writer, path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := stdout.Write(data)
		if err == nil && len(data) > 0 && data[len(data)-1] != '\n' {
			_, err = fmt.Fprintln(stdout)
		}
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
