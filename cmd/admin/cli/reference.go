package cli

import (
	"context"
	"fmt"

	"hotel-backend/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newHotelCmd(opts Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hotel",
		Short: "Hotel reference data",
	}

	var name, providerKey string
	add := &cobra.Command{
		Use:   "add",
		Short: "Register a hotel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(ctx context.Context, app *App) error {
				id, err := app.Admin.CreateHotel(ctx, name, providerKey)
				if err != nil {
					return fmt.Errorf("failed to create hotel: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Hotel %s created\n", id)
				return nil
			})
		},
	}
	add.Flags().StringVar(&name, "name", "", "hotel name")
	add.Flags().StringVar(&providerKey, "provider-key", "", "payment provider secret key for this hotel")
	_ = add.MarkFlagRequired("name")
	_ = add.MarkFlagRequired("provider-key")

	cmd.AddCommand(add)
	return cmd
}

func newCategoryCmd(opts Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Room categories",
	}

	var (
		hotelID, name, description string
		priceCents                 int64
	)
	add := &cobra.Command{
		Use:   "add",
		Short: "Add a room category to a hotel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			hid, err := uuid.Parse(hotelID)
			if err != nil {
				return fmt.Errorf("invalid hotel id %q: %w", hotelID, err)
			}
			return withApp(cmd, opts, func(ctx context.Context, app *App) error {
				id, err := app.Admin.CreateCategory(ctx, hid, name, priceCents, description)
				if err != nil {
					return fmt.Errorf("failed to create category: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Category %s created\n", id)
				return nil
			})
		},
	}
	add.Flags().StringVar(&hotelID, "hotel", "", "hotel id")
	add.Flags().StringVar(&name, "name", "", "category name")
	add.Flags().Int64Var(&priceCents, "price-cents", 0, "nightly price in cents")
	add.Flags().StringVar(&description, "description", "", "category description")
	_ = add.MarkFlagRequired("hotel")
	_ = add.MarkFlagRequired("name")

	cmd.AddCommand(add)
	return cmd
}

func newUserCmd(opts Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Staff accounts",
	}

	var email, password, role, hotelID string
	add := &cobra.Command{
		Use:   "add",
		Short: "Register a staff or admin account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req := commands.RegisterStaffRequest{Email: email, Password: password, Role: role}
			if hotelID != "" {
				hid, err := uuid.Parse(hotelID)
				if err != nil {
					return fmt.Errorf("invalid hotel id %q: %w", hotelID, err)
				}
				req.HotelID = &hid
			}
			return withApp(cmd, opts, func(ctx context.Context, app *App) error {
				id, err := app.Admin.RegisterStaff(ctx, req)
				if err != nil {
					return fmt.Errorf("failed to register user: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "User %s created\n", id)
				return nil
			})
		},
	}
	add.Flags().StringVar(&email, "email", "", "login email")
	add.Flags().StringVar(&password, "password", "", "initial password")
	add.Flags().StringVar(&role, "role", "staff", "staff or admin")
	add.Flags().StringVar(&hotelID, "hotel", "", "hotel id, required for staff")
	_ = add.MarkFlagRequired("email")
	_ = add.MarkFlagRequired("password")

	cmd.AddCommand(add)
	return cmd
}
