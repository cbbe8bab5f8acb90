package main

import (
	"database/sql"
	"fmt"

	"github.com/KirkDiggler/tipsy/internal/bac"
	"github.com/KirkDiggler/tipsy/internal/common/clock"
	"github.com/KirkDiggler/tipsy/internal/common/uuid"
	"github.com/KirkDiggler/tipsy/internal/repositories/drink_log"
	"github.com/KirkDiggler/tipsy/internal/repositories/profile"
	"github.com/KirkDiggler/tipsy/internal/repositories/sqlite"
	"github.com/KirkDiggler/tipsy/internal/services/messaging"
	"github.com/KirkDiggler/tipsy/internal/services/tracker"
)

// app wires the tracker onto the local SQLite database
type app struct {
	db      *sql.DB
	clock   clock.Clock
	tracker tracker.Service
}

func loadApp(opts *options) (*app, error) {
	path := opts.dbPath
	if path == "" {
		var err error
		path, err = sqlite.DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	db, err := sqlite.Open(path)
	if err != nil {
		return nil, err
	}

	drinkRepo, err := drink_log.NewSQLite(&drink_log.SQLiteConfig{DB: db})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create drink log repository: %w", err)
	}

	profileRepo, err := profile.NewSQLite(&profile.SQLiteConfig{DB: db})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create profile repository: %w", err)
	}

	messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create messaging service: %w", err)
	}

	clk := clock.New()
	trackerSvc, err := tracker.New(&tracker.Config{
		DrinkRepo:     drinkRepo,
		ProfileRepo:   profileRepo,
		Calculator:    bac.New(nil),
		Messaging:     messagingSvc,
		Clock:         clk,
		UUIDGenerator: uuid.New(),
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create tracker service: %w", err)
	}

	return &app{
		db:      db,
		clock:   clk,
		tracker: trackerSvc,
	}, nil
}

func (a *app) Close() error {
	return a.db.Close()
}
