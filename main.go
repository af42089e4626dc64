package main

import (
	"fmt"
	"log"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/yaksok/yaksok/internal/webserver"
	"github.com/yaksok/yaksok/internal/webserver/infrastructure"
)

var version string = "unknown"

func main() {
	var cfg Config

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatal(fmt.Sprintf("Error parsing configuration from environment variables: %s", err))
	}

	db := infrastructure.Connect(cfg.DbPath)

	var sender webserver.Sender = &infrastructure.NoEmail{}
	if cfg.SmtpServer != "" && cfg.SmtpUser != "" && cfg.SmtpPassword != "" {
		sender = &infrastructure.SMTP{
			Server:   cfg.SmtpServer,
			Port:     cfg.SmtpPort,
			User:     cfg.SmtpUser,
			Password: cfg.SmtpPassword,
		}
	}

	webserverCfg := webserver.Config{
		Version:           version,
		JwtSecret:         []byte(cfg.JwtSecret),
		MinPasswordLength: cfg.MinPasswordLength,
		SessionTimeout:    cfg.SessionTimeout,
	}

	app := webserver.New(webserverCfg, db, sender)

	fmt.Printf("Yaksok version %s started listening on port %s\n\n", version, cfg.Port)
	if err := app.Listen(fmt.Sprintf(":%s", cfg.Port)); err != nil {
		log.Fatal(err)
	}
}
