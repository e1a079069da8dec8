package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/faizmokh/orgstamp/internal/files"
	"github.com/faizmokh/orgstamp/internal/settings"
	"github.com/faizmokh/orgstamp/internal/timestamp"
)

func newConfigCommand(ctx context.Context, manager *files.Manager) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the saved settings.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, p, err := loadHost(ctx, manager, timestamp.NewStamper())
			if err != nil {
				return err
			}
			defer p.Unload()

			return printSettings(cmd, p.Settings())
		},
	}

	cmd.AddCommand(newConfigSetCommand(ctx, manager))

	return cmd
}

func newConfigSetCommand(ctx context.Context, manager *files.Manager) *cobra.Command {
	return &cobra.Command{
		Use:   "set <label|step> <value>",
		Short: "Change a setting.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, p, err := loadHost(ctx, manager, timestamp.NewStamper())
			if err != nil {
				return err
			}
			defer p.Unload()

			key, value := args[0], args[1]
			updated, err := p.UpdateSettings(ctx, func(s *settings.Settings) error {
				return s.Set(key, value)
			})
			if err != nil {
				return err
			}

			current, err := updated.Get(key)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %q\n", key, current)
			return nil
		},
	}
}

func printSettings(cmd *cobra.Command, s settings.Settings) error {
	out := cmd.OutOrStdout()
	for _, key := range settings.Keys {
		value, err := s.Get(key)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s: %s\n", key, value)
	}
	return nil
}
