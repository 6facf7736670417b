package main

import (
	"context"
	"fmt"
	"os"

	"bin-tally/internal/app"
	"bin-tally/internal/config"
	"bin-tally/internal/logger"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgFile string

	root := &cobra.Command{
		Use:     "bin-tally",
		Short:   "Count parts into bins and save each bin as CSV",
		Version: app.AppVersion,
		Long: `bin-tally records scanned or typed part numbers into a named bin.
Scanning a part again adds one; manual input sets the quantity. Each bin
is written to <bin>.csv when it is saved or a new bin is started.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadConfig(cfgFile)
			if err != nil {
				return err
			}

			application, err := app.NewApplication(cfg, log)
			if err != nil {
				return fmt.Errorf("application initialization failed: %w", err)
			}
			return application.Run()
		},
	}
	root.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is $HOME/.config/bin-tally/bin-tally.yaml)")

	root.AddCommand(&cobra.Command{
		Use:   "console",
		Short: "Count parts from a terminal or keyboard-wedge scanner",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadConfig(cfgFile)
			if err != nil {
				return err
			}
			return app.RunConsole(context.Background(), cfg, log, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	})

	return root
}

func loadConfig(cfgFile string) (*config.Config, logger.Logger, error) {
	v, err := config.NewViper(cfgFile)
	if err != nil {
		return nil, nil, err
	}
	cfg, err := config.Load(v)
	if err != nil {
		return nil, nil, err
	}

	log := logger.New(logger.ParseLevel(cfg.Logging.Level), cfg.Logging.JSON)
	if used := v.ConfigFileUsed(); used != "" {
		log.Debug("Config", "config file loaded", map[string]interface{}{
			"path": used,
		})
	}
	return cfg, log, nil
}
