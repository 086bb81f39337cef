package cli

import (
	"context"

	"github.com/spf13/cobra"

	"staffrecords/src/app/dto"
)

func (a *app) schemaCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Create or drop the departments, employees and reviews tables",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "create",
			Short: "Create all tables if they do not exist",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return a.run(cmd, func(ctx context.Context, b *backend) (any, error) {
					if err := b.schema.Create(ctx); err != nil {
						return nil, err
					}
					return dto.StatusResponse{Status: "created"}, nil
				})
			},
		},
		&cobra.Command{
			Use:   "drop",
			Short: "Drop all tables, reviews first",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return a.run(cmd, func(ctx context.Context, b *backend) (any, error) {
					if err := b.schema.Drop(ctx); err != nil {
						return nil, err
					}
					return dto.StatusResponse{Status: "dropped"}, nil
				})
			},
		},
	)
	return cmd
}
