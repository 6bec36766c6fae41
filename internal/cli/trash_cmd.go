package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/lumicello/boothlog/internal/cli/formatter"
	"github.com/lumicello/boothlog/internal/repository"
	"github.com/spf13/cobra"
)

func newTrashCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trash",
		Short: "Manage soft-deleted interactions",
	}

	cmd.AddCommand(
		newTrashListCmd(app),
		newTrashRestoreCmd(app),
		newTrashPurgeCmd(app),
		newTrashEmptyCmd(app),
		newTrashPutCmd(app),
	)

	return cmd
}

func newTrashListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List trashed interactions",
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := app.Interactions.ListTrash(context.Background())
			if err != nil {
				return err
			}
			if len(items) == 0 {
				fmt.Println("Trash is empty.")
				return nil
			}
			for _, it := range items {
				fmt.Printf("  %s  %s\n", formatter.Dim(it.ID), formatter.FormatInteractionLine(it))
			}
			return nil
		},
	}
}

func newTrashPutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "put <interaction-id>",
		Short: "Move an interaction to the trash",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := app.Interactions.Trash(context.Background(), args[0])
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("no interaction with id %q", args[0])
			}
			if err != nil {
				return err
			}
			fmt.Println("Moved to trash")
			return nil
		},
	}
}

func newTrashRestoreCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "restore <interaction-id>",
		Short: "Restore a trashed interaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := app.Interactions.Restore(context.Background(), args[0])
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("no trashed interaction with id %q", args[0])
			}
			if err != nil {
				return err
			}
			fmt.Println("Restored")
			return nil
		},
	}
}

func newTrashPurgeCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "purge <interaction-id>",
		Short: "Permanently delete a trashed interaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("purge is permanent; re-run with --yes to confirm")
			}
			err := app.Interactions.Purge(context.Background(), args[0])
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("no trashed interaction with id %q", args[0])
			}
			if err != nil {
				return err
			}
			fmt.Println("Deleted permanently")
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm permanent deletion")
	return cmd
}

func newTrashEmptyCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "empty",
		Short: "Permanently delete everything in the trash",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("emptying the trash is permanent; re-run with --yes to confirm")
			}
			n, err := app.Interactions.EmptyTrash(context.Background())
			if err != nil {
				return err
			}
			fmt.Printf("Emptied trash (%d removed)\n", n)
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm permanent deletion")
	return cmd
}
