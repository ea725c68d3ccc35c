package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/Jaychaware/hrms-lite/internal/apiclient"
	"github.com/Jaychaware/hrms-lite/internal/attendance"
	"github.com/Jaychaware/hrms-lite/internal/console"
	"github.com/Jaychaware/hrms-lite/pkg/logger"
	"github.com/spf13/cobra"
)

// consoleAction is one console command body.
type consoleAction func(ctx context.Context, c *console.Console, cmd *cobra.Command, args []string) error

// withConsole loads the config, builds the API client and runs fn.
func withConsole(fn consoleAction) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(".")
		if err != nil {
			return err
		}

		level := "error"
		if verbose {
			level = cfg.Observability.Logging.Level
		}
		lg := logger.Configure(os.Stderr, level, "text")

		client := apiclient.NewClient(apiclient.Config{
			BaseURL: cfg.Client.APIURL,
			Timeout: clientTimeout(cmd, cfg),
		}, lg)
		lg.Debug("using API", "base_url", client.BaseURL())

		c := console.New(client, cmd.InOrStdin(), cmd.OutOrStdout())
		return fn(cmd.Context(), c, cmd, args)
	}
}

func consoleCommands() []*cobra.Command {
	return []*cobra.Command{
		dashboardCmd(),
		employeesCmd(),
		attendanceCmd(),
		summaryCmd(),
		exportCmd(),
	}
}

func dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show headcount and attendance totals",
		Args:  cobra.NoArgs,
		RunE: withConsole(func(ctx context.Context, c *console.Console, _ *cobra.Command, _ []string) error {
			return c.Dashboard(ctx)
		}),
	}
}

func employeesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "employees",
		Aliases: []string{"employee", "emp"},
		Short:   "List, add and delete employees",
		Args:    cobra.NoArgs,
		RunE: withConsole(func(ctx context.Context, c *console.Console, _ *cobra.Command, _ []string) error {
			return c.ListEmployees(ctx)
		}),
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List employees",
		Args:  cobra.NoArgs,
		RunE: withConsole(func(ctx context.Context, c *console.Console, _ *cobra.Command, _ []string) error {
			return c.ListEmployees(ctx)
		}),
	}

	var form console.EmployeeForm
	add := &cobra.Command{
		Use:   "add",
		Short: "Add an employee",
		Args:  cobra.NoArgs,
		RunE: withConsole(func(ctx context.Context, c *console.Console, _ *cobra.Command, _ []string) error {
			return c.AddEmployee(ctx, form)
		}),
	}
	add.Flags().StringVar(&form.EmployeeID, "id", "", "employee ID, e.g. EMP001")
	add.Flags().StringVar(&form.FullName, "name", "", "full name")
	add.Flags().StringVar(&form.Email, "email", "", "email address")
	add.Flags().StringVar(&form.Department, "department", "", "department")

	var assumeYes bool
	del := &cobra.Command{
		Use:   "delete <employee-id>",
		Short: "Delete an employee and their attendance",
		Args:  cobra.ExactArgs(1),
		RunE: withConsole(func(ctx context.Context, c *console.Console, _ *cobra.Command, args []string) error {
			return c.DeleteEmployee(ctx, args[0], assumeYes)
		}),
	}
	del.Flags().BoolVarP(&assumeYes, "yes", "y", false, "skip the confirmation prompt")

	cmd.AddCommand(list, add, del)
	return cmd
}

func attendanceCmd() *cobra.Command {
	var (
		employeeID string
		filter     attendance.FilterQuery
	)
	listRun := withConsole(func(ctx context.Context, c *console.Console, _ *cobra.Command, _ []string) error {
		return c.ListAttendance(ctx, employeeID, filter)
	})

	cmd := &cobra.Command{
		Use:   "attendance",
		Short: "List and mark attendance",
		Args:  cobra.NoArgs,
		RunE:  listRun,
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List attendance records, newest first",
		Args:  cobra.NoArgs,
		RunE:  listRun,
	}
	list.Flags().StringVar(&employeeID, "employee", "", "only show this employee")
	list.Flags().StringVar(&filter.Status, "status", "", "Present or Absent")
	list.Flags().StringVar(&filter.From, "from", "", "earliest date, YYYY-MM-DD")
	list.Flags().StringVar(&filter.To, "to", "", "latest date, YYYY-MM-DD")

	var form console.AttendanceForm
	mark := &cobra.Command{
		Use:   "mark",
		Short: "Mark an employee present or absent for a day",
		Args:  cobra.NoArgs,
		RunE: withConsole(func(ctx context.Context, c *console.Console, _ *cobra.Command, _ []string) error {
			return c.MarkAttendance(ctx, form)
		}),
	}
	mark.Flags().StringVar(&form.EmployeeID, "employee", "", "employee ID")
	mark.Flags().StringVar(&form.Date, "date", "", "date, YYYY-MM-DD")
	mark.Flags().StringVar(&form.Status, "status", attendance.StatusPresent, "Present or Absent")

	cmd.AddCommand(list, mark)
	return cmd
}

func summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show per-employee attendance rates",
		Args:  cobra.NoArgs,
		RunE: withConsole(func(ctx context.Context, c *console.Console, _ *cobra.Command, _ []string) error {
			return c.Summary(ctx)
		}),
	}
}

func exportCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the dashboard and summary to an xlsx workbook",
		Args:  cobra.NoArgs,
		RunE: withConsole(func(ctx context.Context, c *console.Console, cmd *cobra.Command, _ []string) error {
			var w io.Writer = cmd.OutOrStdout()
			if output != "-" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("failed to create %s: %w", output, err)
				}
				defer f.Close()
				w = f
			}
			if err := c.Export(ctx, w); err != nil {
				return err
			}
			if output != "-" {
				logger.LoggerWrapper().Debug("workbook written", "path", output)
				fmt.Fprintf(cmd.ErrOrStderr(), "Saved %s\n", output)
			}
			return nil
		}),
	}
	cmd.Flags().StringVarP(&output, "output", "o", "attendance-summary.xlsx", `output file, "-" for stdout`)
	return cmd
}
