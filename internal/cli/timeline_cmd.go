package cli

import (
	"context"
	"fmt"

	"github.com/lumicello/boothlog/internal/cli/formatter"
	"github.com/lumicello/boothlog/internal/domain"
	"github.com/spf13/cobra"
)

func newTimelineCmd(app *App) *cobra.Command {
	period := domain.PeriodToday

	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "Show the merged feed of interactions and events",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := app.Events.Timeline(context.Background(), period)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Println("Nothing logged in this period.")
				return nil
			}

			lastDay := ""
			for _, e := range entries {
				day := e.Timestamp.Local().Format("Mon 2 Jan")
				if day != lastDay {
					if lastDay != "" {
						fmt.Println()
					}
					fmt.Println(formatter.Bold(day))
					lastDay = day
				}
				switch {
				case e.Interaction != nil:
					fmt.Println("  " + formatter.FormatInteractionLine(e.Interaction))
				case e.Event != nil:
					fmt.Println("  " + formatter.FormatEventLine(e.Event))
				}
			}
			return nil
		},
	}

	cmd.Flags().Var(newPeriodFlag(&period), "period", "Aggregation period: today, week, or all")
	return cmd
}
