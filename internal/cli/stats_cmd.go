package cli

import (
	"context"
	"fmt"

	"github.com/lumicello/boothlog/internal/cli/formatter"
	"github.com/lumicello/boothlog/internal/domain"
	"github.com/spf13/cobra"
)

func newStatsCmd(app *App) *cobra.Command {
	period := domain.PeriodToday
	var sellers bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show traffic and sales stats for a period",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			stats, err := app.Stats.PeriodStats(ctx, period)
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatPeriodStats(stats))

			if sellers {
				ss, err := app.Stats.SellerStats(ctx, period)
				if err != nil {
					return err
				}
				fmt.Println()
				fmt.Print(formatter.FormatSellerStats(ss))
			}
			return nil
		},
	}

	cmd.Flags().Var(newPeriodFlag(&period), "period", "Aggregation period: today, week, or all")
	cmd.Flags().BoolVar(&sellers, "sellers", false, "Include the seller leaderboard")

	return cmd
}
