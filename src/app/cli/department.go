package cli

import (
	"context"

	"github.com/spf13/cobra"

	"staffrecords/src/app/dto"
)

func (a *app) departmentCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "department",
		Aliases: []string{"dept"},
		Short:   "Manage departments",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "add NAME",
			Short: "Create a department",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.run(cmd, func(ctx context.Context, b *backend) (any, error) {
					d, err := b.staff.OpenDepartment(ctx, args[0])
					if err != nil {
						return nil, err
					}
					return dto.DepartmentFromDomain(d), nil
				})
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "List all departments",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return a.run(cmd, func(ctx context.Context, b *backend) (any, error) {
					ds, err := b.staff.Departments(ctx)
					if err != nil {
						return nil, err
					}
					return dto.DepartmentList(ds), nil
				})
			},
		},
		&cobra.Command{
			Use:   "get ID",
			Short: "Show one department",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				return a.run(cmd, func(ctx context.Context, b *backend) (any, error) {
					d, err := b.staff.Department(ctx, id)
					if err != nil {
						return nil, err
					}
					return dto.DepartmentFromDomain(d), nil
				})
			},
		},
		&cobra.Command{
			Use:   "staff ID",
			Short: "List the employees of a department",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				return a.run(cmd, func(ctx context.Context, b *backend) (any, error) {
					es, err := b.staff.StaffOf(ctx, id)
					if err != nil {
						return nil, err
					}
					return dto.EmployeeList(es), nil
				})
			},
		},
	)
	return cmd
}
