package cli

import (
	"context"
	"fmt"
	"io"

	"hotel-backend/internal/domain/provisioning"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newProvisioningCmd(opts Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "provisioning",
		Short: "Payment-account provisioning maintenance",
	}

	var (
		customerID string
		limit      int32
	)
	resume := &cobra.Command{
		Use:   "resume",
		Short: "Resume unfinished provisioning for one customer or all outstanding ones",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var id uuid.UUID
			if customerID != "" {
				parsed, err := uuid.Parse(customerID)
				if err != nil {
					return fmt.Errorf("invalid customer id %q: %w", customerID, err)
				}
				id = parsed
			}
			if limit <= 0 {
				return fmt.Errorf("limit must be positive, got %d", limit)
			}

			return withApp(cmd, opts, func(ctx context.Context, app *App) error {
				if id != uuid.Nil {
					report, err := app.Provisioning.ResumeProvisioning(ctx, id)
					if err != nil {
						return fmt.Errorf("failed to resume provisioning: %w", err)
					}
					printReport(cmd.OutOrStdout(), *report)
					return nil
				}

				reports, err := app.Provisioning.ResumeOutstanding(ctx, limit)
				if err != nil {
					return fmt.Errorf("failed to resume provisioning: %w", err)
				}
				if len(reports) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No outstanding provisioning")
					return nil
				}
				for _, r := range reports {
					printReport(cmd.OutOrStdout(), r)
				}
				return nil
			})
		},
	}
	resume.Flags().StringVar(&customerID, "customer", "", "resume a single customer")
	resume.Flags().Int32Var(&limit, "limit", 50, "maximum customers to resume")

	cmd.AddCommand(resume)
	return cmd
}

func printReport(w io.Writer, r provisioning.Report) {
	fmt.Fprintf(w, "%s %s\n", r.CustomerID, r.Status)
	for _, o := range r.Failures() {
		msg := o.Step.String()
		if o.Err != nil {
			msg += ": " + o.Err.Error()
		}
		fmt.Fprintf(w, "  hotel %s %s\n", o.HotelID, msg)
	}
}
