package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/clockd/internal/config"
	"github.com/sandeepkv93/clockd/internal/dispatch"
	"github.com/sandeepkv93/clockd/internal/fullscreen"
	"github.com/sandeepkv93/clockd/internal/mqtt"
	"github.com/sandeepkv93/clockd/internal/storage"
	"github.com/sandeepkv93/clockd/internal/update"
)

func main() {
	configPath := flag.String("config", "", "path to a clockd config file (default $CLOCKD_CONFIG or ~/.config/clockd/config.toml)")
	flag.Parse()

	cfg, err := config.LoadOrDefault(*configPath)
	if err != nil {
		log.Printf("config: %v (using defaults)", err)
	}

	// The TUI owns stdout, so logs go to a file or nowhere.
	if cfg.Log.File != "" {
		f, err := tea.LogToFile(cfg.Log.File, "clockd")
		if err != nil {
			log.Printf("log file disabled: %v", err)
			log.SetOutput(io.Discard)
		} else {
			defer f.Close()
		}
	} else {
		log.SetOutput(io.Discard)
	}

	deps := update.Deps{}
	var sinks []dispatch.Sink

	if cfg.Notify.Desktop {
		sinks = append(sinks, dispatch.DesktopSink{Notifier: dispatch.ExecDesktopNotifier{}})
	}

	var publisher mqtt.Publisher
	if cfg.MQTT.Broker != "" {
		p, err := mqtt.NewRealPublisher(cfg.MQTT.Broker, cfg.MQTT.ClientID, cfg.MQTT.Topic)
		if err != nil {
			log.Printf("mqtt disabled: %v", err)
		} else {
			publisher = p
			deps.Broker = p
			sinks = append(sinks, mqtt.Sink{Publisher: p})
		}
	}

	var repo *storage.SQLiteRepository
	if cfg.History.Path != "" {
		r, err := storage.OpenSQLite(cfg.History.Path)
		if err != nil {
			log.Printf("history disabled: %v", err)
		} else {
			repo = r
			deps.History = r
			sinks = append(sinks, storage.HistorySink{Repo: r})
		}
	}

	engine := dispatch.NewEngine(cfg.Notify.Buffer, sinks...)
	engine.Start()
	deps.Dispatch = engine
	log.Printf("dispatch sinks: %v", engine.SinkNames())

	hub := fullscreen.NewHub()
	deps.Fullscreen = fullscreen.NewCapability(hub, fullscreen.DefaultVariants()...)

	program := tea.NewProgram(update.NewModelWithConfig(cfg, deps))
	_, runErr := program.Run()

	engine.Stop()
	if dropped := engine.Dropped(); dropped > 0 {
		log.Printf("dispatch dropped %d results", dropped)
	}
	hub.Close()
	if publisher != nil {
		if err := publisher.Close(); err != nil {
			log.Printf("mqtt close: %v", err)
		}
	}
	if repo != nil {
		if err := repo.Close(); err != nil {
			log.Printf("history close: %v", err)
		}
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "clockd failed: %v\n", runErr)
		os.Exit(1)
	}
}
