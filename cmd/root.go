package cmd

import (
	"context"
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/fintracklabs/fintrack/pkg/fexport"
	"github.com/fintracklabs/fintrack/pkg/flog"
	"github.com/fintracklabs/fintrack/pkg/fsdk"
)

type contextKey string

const configContextKey contextKey = "fintrackconfig"

var (
	cfgFile string
	verbose bool
	quiet   bool

	rootCmd = &cobra.Command{
		Use:   "fintrack",
		Short: "CLI for the FinTrack API (invoices, customers, payments, receipts, reports)",
		Long: `fintrack is a command-line tool for working with a FinTrack backend.
It covers the daily bookkeeping surface: authenticate, raise and track
invoices, record customer payments, push receipt files through the
extraction pipeline, watch budgets, and pull financial reports. Use the
auth subcommands to obtain and manage a session; everything else talks
to the API with the stored credentials.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := fsdk.LoadConfig(cfgFile)
			if err != nil {
				return err
			}

			if err := cfg.Viper().BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			// The flag spelling differs from the config key, so map it
			// directly or --base-url would never reach the client.
			if f := cmd.Root().PersistentFlags().Lookup("base-url"); f != nil {
				if err := cfg.Viper().BindPFlag(fsdk.BaseUrlKey, f); err != nil {
					return err
				}
			}

			ctx := context.WithValue(cmd.Context(), configContextKey, cfg)
			cmd.SetContext(ctx)

			return nil
		},
	}
)

// GetConfig retrieves the Config from the command context
func GetConfig(cmd *cobra.Command) (*fsdk.Config, error) {
	ctx := cmd.Context()
	cfg, ok := ctx.Value(configContextKey).(*fsdk.Config)
	if !ok {
		return nil, errors.New("no config in context")
	}
	return cfg, nil
}

// newSdk builds an API client from the command's config.
func newSdk(cmd *cobra.Command) (*fsdk.Sdk, error) {
	cfg, err := GetConfig(cmd)
	if err != nil {
		return nil, err
	}
	return fsdk.New(cfg)
}

// newExporter wires the export pipeline to the configured export dir,
// falling back to the per-user default.
func newExporter(cmd *cobra.Command) (*fexport.Exporter, *fexport.LocalStore, error) {
	cfg, err := GetConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	root := cfg.GetString(fsdk.ExportDirKey)
	if root == "" {
		root, err = fexport.DefaultRoot()
		if err != nil {
			return nil, nil, err
		}
	}
	store := fexport.NewLocalStore(root)
	return fexport.NewExporter(store), store, nil
}

// newLogger honors the --verbose/--quiet flags. Used by long-running
// commands; one-shot commands print plain output instead.
func newLogger() *flog.Logger {
	switch {
	case verbose:
		return flog.NewVerbose()
	case quiet:
		return flog.NewQuiet()
	default:
		return flog.NewDefault()
	}
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML). Searches: fintrack.yaml, .fintrack/config.yaml, $XDG_CONFIG_HOME/fintrack, $HOME/.config/fintrack")
	rootCmd.PersistentFlags().String("base-url", "", "Base URL for the FinTrack API (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output for long-running commands")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Only warnings and errors for long-running commands")
}
