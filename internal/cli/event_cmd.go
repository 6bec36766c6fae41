package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/lumicello/boothlog/internal/repository"
	"github.com/spf13/cobra"
)

func newEventCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "event",
		Short: "Log and manage booth milestone events",
	}

	cmd.AddCommand(
		newEventLogCmd(app),
		newEventRemoveCmd(app),
	)

	return cmd
}

func newEventLogCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "log <description>",
		Short: "Record a milestone event",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			description := strings.Join(args, " ")
			e, err := app.Events.LogEvent(context.Background(), app.DeviceName, description)
			if err != nil {
				return err
			}
			fmt.Printf("Event logged (%s)\n", e.ID)
			return nil
		},
	}
}

func newEventRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <event-id>",
		Short: "Delete an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := app.Events.Delete(context.Background(), args[0])
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("no event with id %q", args[0])
			}
			if err != nil {
				return err
			}
			fmt.Println("Event deleted")
			return nil
		},
	}
}
