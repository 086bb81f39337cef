package cli

import (
	"context"

	"github.com/spf13/cobra"

	"staffrecords/src/app/dto"
	"staffrecords/src/core/domain"
	"staffrecords/src/core/usecase"
)

func (a *app) employeeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "employee",
		Aliases: []string{"emp"},
		Short:   "Manage employees",
	}

	cmd.AddCommand(
		a.employeeAddCommand(),
		&cobra.Command{
			Use:   "get ID",
			Short: "Show one employee",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				return a.run(cmd, func(ctx context.Context, b *backend) (any, error) {
					e, err := b.staff.Employee(ctx, id)
					if err != nil {
						return nil, err
					}
					return dto.EmployeeFromDomain(e), nil
				})
			},
		},
		&cobra.Command{
			Use:   "find NAME",
			Short: "Show the first employee with exactly this name",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.run(cmd, func(ctx context.Context, b *backend) (any, error) {
					e, err := b.staff.EmployeeByName(ctx, args[0])
					if err != nil {
						return nil, err
					}
					return dto.EmployeeFromDomain(e), nil
				})
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "List all employees",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return a.run(cmd, func(ctx context.Context, b *backend) (any, error) {
					es, err := b.staff.Employees(ctx)
					if err != nil {
						return nil, err
					}
					return dto.EmployeeList(es), nil
				})
			},
		},
		a.employeeUpdateCommand(),
		&cobra.Command{
			Use:   "delete ID",
			Short: "Delete an employee",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				return a.run(cmd, func(ctx context.Context, b *backend) (any, error) {
					if err := b.staff.DismissEmployee(ctx, id); err != nil {
						return nil, err
					}
					return dto.DeletedResponse{ID: id, Deleted: true}, nil
				})
			},
		},
		&cobra.Command{
			Use:   "reviews ID",
			Short: "List the reviews of an employee",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				return a.run(cmd, func(ctx context.Context, b *backend) (any, error) {
					rs, err := b.staff.ReviewsOf(ctx, id)
					if err != nil {
						return nil, err
					}
					return dto.ReviewList(rs), nil
				})
			},
		},
	)
	return cmd
}

func (a *app) employeeAddCommand() *cobra.Command {
	var (
		name         string
		jobTitle     string
		departmentID int64
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create an employee in an existing department",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd, func(ctx context.Context, b *backend) (any, error) {
				e, err := b.staff.HireEmployee(ctx, name, jobTitle, departmentID)
				if err != nil {
					return nil, err
				}
				return dto.EmployeeFromDomain(e), nil
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Employee name")
	cmd.Flags().StringVar(&jobTitle, "title", "", "Job title")
	cmd.Flags().Int64Var(&departmentID, "department", 0, "Department id")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("department")
	return cmd
}

func (a *app) employeeUpdateCommand() *cobra.Command {
	var (
		name         string
		jobTitle     string
		departmentID int64
	)

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Change the name, title or department of an employee",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			var changes usecase.EmployeeChanges
			if cmd.Flags().Changed("name") {
				changes.Name = &name
			}
			if cmd.Flags().Changed("title") {
				changes.JobTitle = &jobTitle
			}
			if cmd.Flags().Changed("department") {
				changes.DepartmentID = &departmentID
			}
			if changes == (usecase.EmployeeChanges{}) {
				return domain.NewValidationError("flags", "set at least one of --name, --title, --department")
			}

			return a.run(cmd, func(ctx context.Context, b *backend) (any, error) {
				e, err := b.staff.UpdateEmployee(ctx, id, changes)
				if err != nil {
					return nil, err
				}
				return dto.EmployeeFromDomain(e), nil
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New employee name")
	cmd.Flags().StringVar(&jobTitle, "title", "", "New job title")
	cmd.Flags().Int64Var(&departmentID, "department", 0, "New department id")
	return cmd
}
