package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newWalkByCmd(app *App) *cobra.Command {
	var atFlag string
	var count int

	cmd := &cobra.Command{
		Use:   "walkby",
		Short: "Log visitors who paused but were not engaged",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			at, err := parseAtFlag(atFlag)
			if err != nil {
				return err
			}
			if count < 1 {
				count = 1
			}

			for i := 0; i < count; i++ {
				if _, err := app.Interactions.LogWalkBy(ctx, app.DeviceName, at); err != nil {
					return err
				}
			}

			if count == 1 {
				fmt.Println("Walk-by logged")
			} else {
				fmt.Printf("%d walk-bys logged\n", count)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&atFlag, "at", "", "Backdate the entry (RFC3339, '2006-01-02 15:04', or '15:04' for today)")
	cmd.Flags().IntVar(&count, "count", 1, "Number of walk-bys to log")

	return cmd
}

// parseAtFlag turns a --at value into a timestamp. An empty value means now
// and returns nil.
func parseAtFlag(v string) (*time.Time, error) {
	if v == "" {
		return nil, nil
	}

	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return &t, nil
	}
	if t, err := time.ParseInLocation("2006-01-02 15:04", v, time.Local); err == nil {
		return &t, nil
	}
	if clock, err := time.ParseInLocation("15:04", v, time.Local); err == nil {
		now := time.Now()
		t := time.Date(now.Year(), now.Month(), now.Day(), clock.Hour(), clock.Minute(), 0, 0, time.Local)
		return &t, nil
	}

	return nil, fmt.Errorf("cannot parse time %q", v)
}
