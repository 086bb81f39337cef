package cli

import (
	"context"

	"github.com/spf13/cobra"

	"staffrecords/src/app/dto"
	"staffrecords/src/core/domain"
	"staffrecords/src/core/usecase"
)

func (a *app) reviewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "review",
		Short: "Manage performance reviews",
	}

	cmd.AddCommand(
		a.reviewAddCommand(),
		&cobra.Command{
			Use:   "get ID",
			Short: "Show one review",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				return a.run(cmd, func(ctx context.Context, b *backend) (any, error) {
					r, err := b.staff.Review(ctx, id)
					if err != nil {
						return nil, err
					}
					return dto.ReviewFromDomain(r), nil
				})
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "List all reviews",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return a.run(cmd, func(ctx context.Context, b *backend) (any, error) {
					rs, err := b.staff.Reviews(ctx)
					if err != nil {
						return nil, err
					}
					return dto.ReviewList(rs), nil
				})
			},
		},
		a.reviewUpdateCommand(),
		&cobra.Command{
			Use:   "delete ID",
			Short: "Delete a review",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				return a.run(cmd, func(ctx context.Context, b *backend) (any, error) {
					if err := b.staff.RemoveReview(ctx, id); err != nil {
						return nil, err
					}
					return dto.DeletedResponse{ID: id, Deleted: true}, nil
				})
			},
		},
	)
	return cmd
}

func (a *app) reviewAddCommand() *cobra.Command {
	var (
		year       int
		summary    string
		employeeID int64
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a review for an existing employee",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd, func(ctx context.Context, b *backend) (any, error) {
				r, err := b.staff.RecordReview(ctx, year, summary, employeeID)
				if err != nil {
					return nil, err
				}
				return dto.ReviewFromDomain(r), nil
			})
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Review year (2000 or later)")
	cmd.Flags().StringVar(&summary, "summary", "", "Review summary")
	cmd.Flags().Int64Var(&employeeID, "employee", 0, "Employee id")
	_ = cmd.MarkFlagRequired("year")
	_ = cmd.MarkFlagRequired("summary")
	_ = cmd.MarkFlagRequired("employee")
	return cmd
}

func (a *app) reviewUpdateCommand() *cobra.Command {
	var (
		year       int
		summary    string
		employeeID int64
	)

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Change the year, summary or employee of a review",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			var changes usecase.ReviewChanges
			if cmd.Flags().Changed("year") {
				changes.Year = &year
			}
			if cmd.Flags().Changed("summary") {
				changes.Summary = &summary
			}
			if cmd.Flags().Changed("employee") {
				changes.EmployeeID = &employeeID
			}
			if changes == (usecase.ReviewChanges{}) {
				return domain.NewValidationError("flags", "set at least one of --year, --summary, --employee")
			}

			return a.run(cmd, func(ctx context.Context, b *backend) (any, error) {
				r, err := b.staff.UpdateReview(ctx, id, changes)
				if err != nil {
					return nil, err
				}
				return dto.ReviewFromDomain(r), nil
			})
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "New review year")
	cmd.Flags().StringVar(&summary, "summary", "", "New summary")
	cmd.Flags().Int64Var(&employeeID, "employee", 0, "New employee id")
	return cmd
}
