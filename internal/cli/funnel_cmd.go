package cli

import (
	"context"
	"fmt"

	"github.com/lumicello/boothlog/internal/cli/formatter"
	"github.com/lumicello/boothlog/internal/domain"
	"github.com/lumicello/boothlog/internal/funnel"
	"github.com/spf13/cobra"
)

func newFunnelCmd(app *App) *cobra.Command {
	period := domain.PeriodToday
	var width int

	cmd := &cobra.Command{
		Use:   "funnel",
		Short: "Draw the engagement funnel for a period",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := app.Funnel.Metrics(context.Background(), period)
			if err != nil {
				return err
			}

			if width < 24 {
				width = 24
			}

			cfg := funnel.DefaultConfig()
			cfg.MaxWidth = float64(width)
			cfg.MinWidth = 4
			cfg.NodeGap = 2
			cfg.Row1Y = 0
			cfg.RowGap = 3
			cfg.NodeHeight = 1

			g := funnel.Layout(*m, float64(width), 3*cfg.RowGap, cfg)

			fmt.Println(formatter.Header(periodTitle(period)))
			fmt.Println()
			fmt.Print(formatter.RenderFunnel(g))
			fmt.Println()
			fmt.Printf("Engagement %s · Close %s · Overall %s\n",
				formatter.FormatPercent(m.EngagedRate),
				formatter.FormatPercent(m.ConversionRate),
				formatter.FormatPercent(m.OverallConversion),
			)
			return nil
		},
	}

	cmd.Flags().Var(newPeriodFlag(&period), "period", "Aggregation period: today, week, or all")
	cmd.Flags().IntVar(&width, "width", 64, "Diagram width in columns")

	return cmd
}
