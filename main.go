package main

import (
	"os"

	"github.com/mo-shahab/go-pong/config"
	"github.com/mo-shahab/go-pong/display"
	log "github.com/sirupsen/logrus"
)

func main() {
	log.SetOutput(os.Stdout)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}
	log.SetLevel(cfg.Level())

	log.Println("Welcome to Pong!")

	if err := display.Run(cfg, log.NewEntry(log.StandardLogger())); err != nil {
		log.Fatalf("Error running game: %v", err)
	}
}
