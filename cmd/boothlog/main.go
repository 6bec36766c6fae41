package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lumicello/boothlog/internal/cli"
	"github.com/lumicello/boothlog/internal/db"
	"github.com/lumicello/boothlog/internal/repository"
	"github.com/lumicello/boothlog/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// DB path: env var or default ~/.boothlog/boothlog.db
	dbPath := os.Getenv("BOOTHLOG_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".boothlog", "boothlog.db")
	}

	// Device identity defaults to the hostname so each booth tablet or
	// laptop gets a stable name without configuration.
	deviceName := os.Getenv("BOOTHLOG_DEVICE")
	if deviceName == "" {
		host, err := os.Hostname()
		if err != nil {
			return fmt.Errorf("finding hostname: %w", err)
		}
		deviceName = host
	}
	location := os.Getenv("BOOTHLOG_LOCATION")

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	interactionRepo := repository.NewSQLiteInteractionRepo(database)
	sellerRepo := repository.NewSQLiteSellerRepo(database)
	staffRepo := repository.NewSQLiteStaffRepo(database)
	eventRepo := repository.NewSQLiteEventRepo(database)
	statsRepo := repository.NewSQLiteStatsRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewUnitOfWork(database)

	sessionSvc := service.NewSessionService(staffRepo, sellerRepo, uow)

	// Make sure this device exists before anything tries to bind a seller
	// to it.
	if _, err := sessionSvc.RegisterDevice(context.Background(), deviceName, deviceName); err != nil {
		return fmt.Errorf("registering device: %w", err)
	}

	app := &cli.App{
		Interactions: service.NewInteractionService(interactionRepo, uow),
		Stats:        service.NewStatsService(statsRepo),
		Funnel:       service.NewFunnelService(statsRepo),
		Sellers:      service.NewSellerService(sellerRepo),
		Session:      sessionSvc,
		Events:       service.NewEventService(eventRepo, interactionRepo, staffRepo),

		DeviceName: deviceName,
		Location:   location,
	}

	// Detect interactive terminal for the TUI entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
