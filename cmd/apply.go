package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"appliance-portcfg/internal/adapter/infrastructure/csvreader"
	"appliance-portcfg/internal/adapter/infrastructure/file"
	"appliance-portcfg/internal/adapter/processor"
	"appliance-portcfg/internal/adapter/runner"
	"appliance-portcfg/internal/pkg/console"
	"appliance-portcfg/internal/pkg/directory"
	"appliance-portcfg/internal/pkg/logging"
	"appliance-portcfg/internal/pkg/version"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var inputFlag string

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Apply appliance port configurations from the input CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(inputFlag)
		if err != nil {
			return err
		}

		runID := uuid.New().String()
		logger := logging.WithComponent("apply").WithField("run_id", runID)

		con := console.New(cmd.OutOrStdout(), cmd.ErrOrStderr())
		con.Banner(version.AppName, version.AppVersion)
		con.ConfigTable(cfg.Summary())

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		// Step 1: read the input before touching the API
		con.Panel("Step 1", "Read in Appliance Port Configs")
		rows, err := csvreader.NewReaderAdapter(file.NewManagerAdapter()).ReadRows(cfg.Input.CSVFile)
		if err != nil {
			if errors.Is(err, csvreader.ErrInputNotFound) {
				logger.WithError(err).Error("Appliance port configs file not found")
				return withExitCode(ExitInputMissing, err)
			}
			logger.WithError(err).Error("Failed to read appliance port configs")
			return withExitCode(ExitInputInvalid, err)
		}
		logger.WithField("file", cfg.Input.CSVFile).Infof("Read in %d appliance port configs", len(rows))

		client, err := newDashboardClient(cfg)
		if err != nil {
			return err
		}

		dir, err := directory.Build(ctx, client, cfg.Meraki.OrgID)
		if err != nil {
			logger.WithError(err).Error("Failed to build network name to ID mapping")
			return withExitCode(ExitDirectoryError, err)
		}

		// Step 2: one update per row, strictly in file order
		con.Panel("Step 2", "Apply Appliance Port Configurations for Specified Networks")
		rowProcessor := processor.NewProcessor(dir, client, processor.Columns{
			NetworkName: cfg.Input.NetworkNameColumn,
			PortID:      cfg.Input.PortIDColumn,
			NotProvided: cfg.Input.NotProvided,
		})
		run := runner.NewRunner(rowProcessor, con, cfg.Input.RowDelay, logging.WithComponent("runner").WithField("run_id", runID))
		result := run.Run(ctx, rows, cfg.Input.NetworkNameColumn, cfg.Input.PortIDColumn)

		con.Summary(result.Succeeded, result.Failed, result.Skipped)
		logger.WithFields(map[string]interface{}{
			"succeeded": result.Succeeded,
			"failed":    result.Failed,
			"skipped":   result.Skipped,
		}).Info("Run complete")

		if errors.Is(ctx.Err(), context.Canceled) {
			logger.Warn("Run interrupted, rows after the signal were reported as failed")
		}
		return nil
	},
}

func init() {
	applyCmd.Flags().StringVarP(&inputFlag, "input", "i", "", "Input CSV file name (overrides CSV_FILE_NAME)")
	rootCmd.AddCommand(applyCmd)
}
