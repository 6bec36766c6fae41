package cli

import (
	"context"
	"fmt"

	"github.com/lumicello/boothlog/internal/cli/formatter"
	"github.com/lumicello/boothlog/internal/domain"
	"github.com/lumicello/boothlog/internal/service"
	"github.com/spf13/cobra"
)

// newLogCmd logs a full conversation non-interactively. The TUI wizard is
// the usual path; this exists for scripting and for backfilling entries that
// were missed at the booth.
func newLogCmd(app *App) *cobra.Command {
	var personaFlag, hookFlag, saleFlag, objectionFlag, leadFlag string
	var notes, atFlag string
	var qty, price int

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Log a conversation without the interactive wizard",
		RunE: func(cmd *cobra.Command, args []string) error {
			at, err := parseAtFlag(atFlag)
			if err != nil {
				return err
			}

			in := service.ConversationInput{
				StaffDevice: app.DeviceName,
				Persona:     domain.Persona(personaFlag),
				Hook:        domain.Hook(hookFlag),
				SaleType:    domain.SaleType(saleFlag),
				Quantity:    qty,
				UnitPrice:   price,
				Notes:       notes,
				Timestamp:   at,
			}
			if objectionFlag != "" {
				o := domain.Objection(objectionFlag)
				in.Objection = &o
			}
			if leadFlag != "" {
				l := domain.LeadType(leadFlag)
				in.LeadType = &l
			}

			rec, err := app.Interactions.LogConversation(context.Background(), in)
			if err != nil {
				return err
			}

			if rec.IsSale() && rec.Total != nil {
				fmt.Printf("Logged %s · %s (%s)\n",
					formatter.SaleTypeLabel(*rec.SaleType), formatter.FormatBaht(*rec.Total), rec.ID)
			} else {
				fmt.Printf("Logged conversation, no sale (%s)\n", rec.ID)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&personaFlag, "persona", "", "parent, gift_buyer, expat, or future_parent")
	cmd.Flags().StringVar(&hookFlag, "hook", "", "physical_kits, big_garden, or signage")
	cmd.Flags().StringVar(&saleFlag, "sale", string(domain.SaleNone), "none, single, bundle_3, or full_year")
	cmd.Flags().IntVar(&qty, "qty", 1, "Box count for single sales")
	cmd.Flags().IntVar(&price, "price", domain.PriceSale, "Unit price for single sales (990 or 1290)")
	cmd.Flags().StringVar(&objectionFlag, "objection", "", "Objection for no-sale outcomes")
	cmd.Flags().StringVar(&leadFlag, "lead", "", "line, email, or none")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form note")
	cmd.Flags().StringVar(&atFlag, "at", "", "Backdate the entry (RFC3339, '2006-01-02 15:04', or '15:04' for today)")
	_ = cmd.MarkFlagRequired("persona")
	_ = cmd.MarkFlagRequired("hook")

	return cmd
}
