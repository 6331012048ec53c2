package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/jspsoluciones/raffle-backend/internal/config"
	"github.com/jspsoluciones/raffle-backend/internal/db"
	"github.com/jspsoluciones/raffle-backend/internal/model"
	"github.com/jspsoluciones/raffle-backend/internal/server"
)

var (
	gitSHA    = "dev"
	buildTime = "unknown"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	conn, err := db.Connect(cfg)
	if err != nil {
		log.Fatalf("db connect error: %v", err)
	}
	if err := conn.AutoMigrate(
		&model.RaffleNumber{},
		&model.Buyer{},
		&model.RaffleRequest{},
		&model.RequestNumber{},
		&model.RaffleSettings{},
		&model.Profile{},
		&model.Notification{},
	); err != nil {
		log.Printf("auto migrate error: %v", err)
	}

	srv := server.New(conn, cfg, gitSHA, buildTime)
	addr := ":" + cfg.Port
	log.Printf("starting server on %s", addr)
	if err := srv.Start(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
