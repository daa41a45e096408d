package cli

import (
	"fmt"

	"facility-booking/internal/infra/repository"
	"facility-booking/internal/infra/uow"
	"facility-booking/internal/pkg/clock"
	"facility-booking/internal/pkg/config"
	"facility-booking/internal/usecase/commands"
	"facility-booking/internal/usecase/notification"
	"facility-booking/internal/worker"

	"github.com/spf13/cobra"
)

type SweepOptions struct {
	*RootOptions
	BatchSize int
}

func NewSweepCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SweepOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Complete every approved reservation whose slot has ended",
		Long: `Run the completion sweep once: APPROVED reservations whose end time has
passed become COMPLETED and their materials return to stock. Use this from
cron when the in-process sweeper is disabled (SWEEPER_ENABLED=false).`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var booking config.BookingConfig
			if err := config.LoadSection(&booking); err != nil {
				return err
			}
			policy, err := commands.NewPolicy(booking)
			if err != nil {
				return err
			}

			pool, cleanup, err := openDatabase(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			clk := clock.NewRealClock()
			sink := notification.NewOutboxSink(repository.NewNotificationRepository(pool))
			cmds := commands.NewReservationCommands(uow.NewPostgresUoW(pool, clk), sink, clk, policy)

			n, err := worker.NewSweeper(cmds, config.SweeperConfig{BatchSize: opts.BatchSize}).RunOnce(cmd.Context())
			fmt.Fprintf(cmd.OutOrStdout(), "completed %d reservations\n", n)
			return err
		},
	}

	cmd.Flags().IntVar(&opts.BatchSize, "batch-size", 100, "reservations completed per transaction")

	return cmd
}
