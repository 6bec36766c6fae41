package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lumicello/boothlog/internal/cli/formatter"
	"github.com/lumicello/boothlog/internal/domain"
	"github.com/lumicello/boothlog/internal/repository"
	"github.com/spf13/cobra"
)

func newListCmd(app *App) *cobra.Command {
	period := domain.PeriodToday
	var sellerID, typeFlag string
	var salesOnly bool
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List interactions with optional filters",
		RunE: func(cmd *cobra.Command, args []string) error {
			f := repository.InteractionFilter{
				SellerID:  sellerID,
				SalesOnly: salesOnly,
				Limit:     limit,
			}
			switch typeFlag {
			case "":
			case string(domain.InteractionWalkBy), string(domain.InteractionConversation):
				f.Type = domain.InteractionType(typeFlag)
			default:
				return fmt.Errorf("invalid type %q (use walk_by or conversation)", typeFlag)
			}
			if since := periodSince(period); since != nil {
				f.Since = since
			}

			items, err := app.Interactions.Browse(context.Background(), f)
			if err != nil {
				return err
			}
			if len(items) == 0 {
				fmt.Println("No matching interactions.")
				return nil
			}
			for _, it := range items {
				fmt.Printf("  %s  %s\n", formatter.Dim(it.ID), formatter.FormatInteractionLine(it))
			}
			return nil
		},
	}

	cmd.Flags().Var(newPeriodFlag(&period), "period", "Aggregation period: today, week, or all")
	cmd.Flags().StringVar(&sellerID, "seller", "", "Only entries attributed to this seller")
	cmd.Flags().StringVar(&typeFlag, "type", "", "walk_by or conversation")
	cmd.Flags().BoolVar(&salesOnly, "sales", false, "Only entries that closed a sale")
	cmd.Flags().IntVar(&limit, "limit", 50, "Maximum entries to show")

	return cmd
}

// periodSince converts a period name into a lower time bound; nil means no
// bound.
func periodSince(p domain.Period) *time.Time {
	now := time.Now()
	switch p {
	case domain.PeriodToday:
		t := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		return &t
	case domain.PeriodWeek:
		t := now.AddDate(0, 0, -7)
		return &t
	default:
		return nil
	}
}

func newNotesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "notes <interaction-id> <text>",
		Short: "Attach or replace the note on an interaction",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			notes := strings.Join(args[1:], " ")
			err := app.Interactions.UpdateNotes(context.Background(), args[0], notes)
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("no interaction with id %q", args[0])
			}
			if err != nil {
				return err
			}
			fmt.Println("Note saved")
			return nil
		},
	}
}
