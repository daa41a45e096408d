package cli

import (
	"fmt"

	"facility-booking/internal/infra/db"

	"github.com/spf13/cobra"
)

func NewMigrateCommand(_ *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations",
		Long: `Apply the schema migrations embedded in this binary to the database named
by DB_HOST, DB_PORT, DB_USER, DB_PASSWORD and DB_NAME. Migrations that are
already recorded in schema_migrations are skipped.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pool, cleanup, err := openDatabase(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			applied, err := db.Migrate(cmd.Context(), pool)
			if err != nil {
				return err
			}
			if len(applied) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "schema is up to date")
				return nil
			}
			for _, v := range applied {
				fmt.Fprintf(cmd.OutOrStdout(), "applied %s\n", v)
			}
			return nil
		},
	}
}
