package cli

import (
	"fmt"

	"github.com/lumicello/boothlog/internal/domain"
	"github.com/lumicello/boothlog/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Interactions service.InteractionService
	Stats        service.StatsService
	Funnel       service.FunnelService
	Sellers      service.SellerService
	Session      service.SessionService
	Events       service.EventService

	// Device identity, from config.
	DeviceName string
	Location   string

	// IsInteractive reports whether stdin is a terminal; the bare command
	// only launches the TUI when it is.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "boothlog" command and registers all
// subcommands against the provided App. Running it without a subcommand
// starts the TUI.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "boothlog",
		Short: "Booth traffic and sales logger",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive == nil || !app.IsInteractive() {
				return cmd.Help()
			}
			return runTUI(app)
		},
	}

	root.AddCommand(
		newLogCmd(app),
		newWalkByCmd(app),
		newListCmd(app),
		newNotesCmd(app),
		newSellerCmd(app),
		newStatsCmd(app),
		newFunnelCmd(app),
		newTimelineCmd(app),
		newEventCmd(app),
		newTrashCmd(app),
	)

	return root
}

// periodFlag is a pflag.Value restricted to the known stats periods.
type periodFlag struct {
	period *domain.Period
}

var _ pflag.Value = (*periodFlag)(nil)

func newPeriodFlag(p *domain.Period) *periodFlag {
	return &periodFlag{period: p}
}

func (f *periodFlag) String() string { return string(*f.period) }
func (f *periodFlag) Type() string   { return "period" }

func (f *periodFlag) Set(v string) error {
	switch domain.Period(v) {
	case domain.PeriodToday, domain.PeriodWeek, domain.PeriodAll:
		*f.period = domain.Period(v)
		return nil
	default:
		return fmt.Errorf("invalid period %q (use today, week, or all)", v)
	}
}
