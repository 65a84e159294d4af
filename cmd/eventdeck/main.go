package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"eventdeck/internal/config"
	"eventdeck/internal/eventbus"
	"eventdeck/internal/importer"
	"eventdeck/internal/store"
	"eventdeck/internal/ui"
)

func main() {
	// Parse command line arguments
	var configPath, dbPath, importPath string
	flag.StringVar(&configPath, "config", "", "Path to the config file (default: user config dir)")
	flag.StringVar(&dbPath, "db", "", "Path to the SQLite event database (overrides config)")
	flag.StringVar(&importPath, "import", "", "YAML file of events to import before starting")
	flag.Parse()

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Create event bus
	bus := eventbus.New()
	defer bus.Close()

	if configPath == "" {
		configPath = filepath.Join(config.DefaultDir(), "config.toml")
	}
	configSvc := config.NewConfigServiceWithBus(configPath, bus)
	cfg, err := configSvc.Load()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}
	// the remembered filter is written back without the flag overrides below
	persisted := *cfg
	if dbPath != "" {
		cfg.DatabasePath = dbPath
	}

	// Set up logging
	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}
	log.Printf("Config loaded from %s", configSvc.Path())

	eventStore := openStore(ctx, cfg.DatabasePath)
	defer eventStore.Close()

	if importPath != "" {
		events, err := importer.LoadFile(importPath)
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", importPath, err)
			os.Exit(1)
		}
		n, err := importer.Import(ctx, eventStore, events)
		if err != nil {
			fmt.Printf("Imported %d of %d events: %v\n", n, len(events), err)
			os.Exit(1)
		}
		log.Printf("Imported %d events from %s", n, importPath)
	}

	uiModel := ui.NewModel(bus, cfg, eventStore)
	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithContext(ctx))
	uiModel.SetProgram(p)

	// Remember the filter across runs
	saver := config.NewFilterSaver(configSvc, &persisted)
	bus.Subscribe(eventbus.EventFilterChanged, func(e eventbus.DomainEvent) {
		event, ok := e.(eventbus.FilterChangedEvent)
		if !ok || !cfg.UISettings.RememberFilter {
			return
		}
		if _, err := saver.Save(event.Seq, event.New); err != nil {
			log.Printf("Failed to save config: %v", err)
			p.Send(ui.EventMsg{Event: eventbus.ErrorEvent{Message: "saving filter failed", Err: err}})
		}
	})

	bus.Subscribe(eventbus.EventConfigSaved, func(e eventbus.DomainEvent) {
		p.Send(ui.EventMsg{Event: e})
	})

	bus.Subscribe(eventbus.EventEventsLoaded, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.EventsLoadedEvent); ok {
			log.Printf("Loaded %d events", len(event.Events))
		}
	})

	bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ErrorEvent); ok {
			log.Printf("Error: %s: %v", event.Message, event.Err)
		}
	})

	// Run the UI
	_, runErr := p.Run()

	// queued filter changes may never reach the bus handlers, so write the
	// final filter directly
	if cfg.UISettings.RememberFilter {
		if err := saver.Flush(uiModel.Filter()); err != nil {
			log.Printf("Failed to save filter on exit: %v", err)
		}
	}

	if runErr != nil && ctx.Err() == nil {
		fmt.Printf("Error running program: %v\n", runErr)
		os.Exit(1)
	}
}

// openStore opens the SQLite database, falling back to an in-memory store so
// the UI still starts when the file cannot be used
func openStore(ctx context.Context, path string) store.Store {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		log.Printf("Could not create database directory: %v", err)
	}
	sqliteStore, err := store.NewSQLite(ctx, path)
	if err != nil {
		log.Printf("Could not open %s, using in-memory store: %v", path, err)
		return store.NewMemoryStore()
	}
	log.Printf("Opened event database %s", path)
	return sqliteStore
}
