package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/lumicello/boothlog/internal/cli/formatter"
	"github.com/lumicello/boothlog/internal/repository"
	"github.com/spf13/cobra"
)

func newSellerCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seller",
		Short: "Manage sellers and the active seller for this device",
	}

	cmd.AddCommand(
		newSellerAddCmd(app),
		newSellerListCmd(app),
		newSellerUseCmd(app),
		newSellerRenameCmd(app),
		newSellerClearCmd(app),
		newSellerDeactivateCmd(app),
	)

	return cmd
}

func newSellerAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Register a seller",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.Join(args, " ")
			s, err := app.Sellers.Add(context.Background(), name)
			if err != nil {
				return err
			}
			fmt.Printf("Added seller %s (%s)\n", s.DisplayName, s.ID)
			return nil
		},
	}
}

func newSellerListCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List sellers",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			sellers, err := app.Sellers.List(ctx, all)
			if err != nil {
				return err
			}
			if len(sellers) == 0 {
				fmt.Println("No sellers registered.")
				return nil
			}

			active, err := app.Session.ActiveSeller(ctx, app.DeviceName)
			activeID := ""
			if err == nil {
				activeID = active.ID
			}

			for _, s := range sellers {
				mark := "  "
				if s.ID == activeID {
					mark = formatter.StyleGreen.Render("* ")
				}
				line := fmt.Sprintf("%s%s  %s", mark, formatter.PadRight(s.DisplayName, 20), formatter.Dim(s.ID))
				if !s.IsActive {
					line += "  " + formatter.Dim("(inactive)")
				}
				fmt.Println(line)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include deactivated sellers")
	return cmd
}

func newSellerUseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "use <seller-id>",
		Short: "Set the active seller for this device",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if err := app.Session.SetActiveSeller(ctx, app.DeviceName, args[0]); err != nil {
				return err
			}
			s, err := app.Session.ActiveSeller(ctx, app.DeviceName)
			if err != nil {
				return err
			}
			fmt.Printf("Active seller on %s: %s\n", app.DeviceName, s.DisplayName)
			return nil
		},
	}
}

func newSellerRenameCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <seller-id> <new-name>",
		Short: "Change a seller's display name",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.Join(args[1:], " ")
			err := app.Sellers.Rename(context.Background(), args[0], name)
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("no seller with id %q", args[0])
			}
			if err != nil {
				return err
			}
			fmt.Printf("Seller %s renamed to %s\n", args[0], name)
			return nil
		},
	}
}

func newSellerClearCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear the active seller for this device",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Session.ClearActiveSeller(context.Background(), app.DeviceName); err != nil {
				return err
			}
			fmt.Println("Active seller cleared; new entries will be unattributed.")
			return nil
		},
	}
}

func newSellerDeactivateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "deactivate <seller-id>",
		Short: "Deactivate a seller without losing their history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := app.Sellers.Deactivate(context.Background(), args[0])
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("no seller with id %q", args[0])
			}
			if err != nil {
				return err
			}
			fmt.Printf("Seller %s deactivated\n", args[0])
			return nil
		},
	}
}
