package cli

import (
	"fmt"
	"time"

	"facility-booking/internal/domain/user"
	"facility-booking/internal/pkg/config"
	"facility-booking/internal/pkg/errs"
	"facility-booking/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

type TokenOptions struct {
	*RootOptions
	UserID   string
	Role     string
	Duration time.Duration
}

func NewTokenCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TokenOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Print a signed bearer token for local testing",
		Long: `Print a bearer token signed with JWT_SECRET.

Examples:
  facilityctl token --role viewer
  facilityctl token --role admin --user 6f1c2a4e-7a55-4e0e-9b7e-0c1f0f5d2a11 --duration 1h`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printToken(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.UserID, "user", "", "user id (random when empty)")
	cmd.Flags().StringVar(&opts.Role, "role", string(user.RoleViewer), "role claim (viewer|operator|admin)")
	cmd.Flags().DurationVar(&opts.Duration, "duration", 24*time.Hour, "token lifetime")

	return cmd
}

func printToken(opts *TokenOptions, cmd *cobra.Command) error {
	role, err := user.NewRole(opts.Role)
	if err != nil {
		return errs.Wrapf(err, "invalid --role %q", opts.Role)
	}

	id := uuid.New()
	if opts.UserID != "" {
		if id, err = uuid.Parse(opts.UserID); err != nil {
			return errs.Wrap(err, "invalid --user")
		}
	}

	var jwtCfg config.JWTConfig
	if err := config.LoadSection(&jwtCfg); err != nil {
		return err
	}

	token, err := jwt.NewService(jwtCfg.Secret, opts.Duration).GenerateToken(id, role)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), token)
	return nil
}
