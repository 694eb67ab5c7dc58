package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"appliance-portcfg/internal/pkg/console"
	"appliance-portcfg/internal/pkg/directory"

	"github.com/spf13/cobra"
)

var networksCmd = &cobra.Command{
	Use:   "networks",
	Short: "List the appliance network names the input can refer to",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadDashboardConfig()
		if err != nil {
			return err
		}

		client, err := newDashboardClient(cfg)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		dir, err := directory.Build(ctx, client, cfg.Meraki.OrgID)
		if err != nil {
			return withExitCode(ExitDirectoryError, err)
		}

		rows := make([][2]string, 0, dir.Len())
		for _, name := range dir.Names() {
			id, _ := dir.Lookup(name)
			rows = append(rows, [2]string{name, id})
		}
		console.New(cmd.OutOrStdout(), cmd.ErrOrStderr()).ConfigTable(rows)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(networksCmd)
}
