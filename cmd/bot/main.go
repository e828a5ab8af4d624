package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/lmoroni/trellodue-bot/internal/config"
	"github.com/lmoroni/trellodue-bot/internal/database"
	"github.com/lmoroni/trellodue-bot/internal/domain/service"
	"github.com/lmoroni/trellodue-bot/internal/handlers"
	slackmsg "github.com/lmoroni/trellodue-bot/internal/slack"
	"github.com/lmoroni/trellodue-bot/internal/timer"
	"github.com/lmoroni/trellodue-bot/internal/trello"
	"github.com/lmoroni/trellodue-bot/migrator/sqlite"
	"github.com/joho/godotenv"
	"github.com/slack-go/slack"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg := config.Load()

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Println("Running migrations...")
	if err := sqlite.Migrate(db.DB()); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations completed successfully")

	dm := database.NewInstance(db)

	slackClient := slack.New(cfg.SlackBotToken)
	trelloClient := trello.New(cfg.TrelloAPIKey, cfg.TrelloAPIToken)

	services := service.New(dm, trelloClient, timer.New(), config.Settings())
	defer services.Due.Stop()

	messenger := slackmsg.NewMessenger(slackClient, cfg.SlackNotifyChannel)

	// First pass picks up everything already due, then the repeating
	// jobs keep the schedule current.
	log.Println("Running initial scan...")
	counter, err := services.Due.CheckDue(context.Background(), messenger)
	if err != nil {
		log.Printf("Initial scan failed: %v", err)
	} else {
		log.Printf("Initial scan: %s", counter.Report())
	}

	services.Due.StartRepeatingUpdates(messenger)
	services.Due.StartRepeatingNotifications(messenger)

	handler := handlers.New(services.Tracker, services.Due, messenger, cfg.SlackSigningSecret, cfg.SlackAllowedUser)

	http.HandleFunc("/slack/commands", handler.HandleSlashCommand)
	http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK")
	})

	log.Printf("Server starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, nil); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
