package main

import "time"

type Config struct {
	DbPath            string        `env:"DBPATH" env-default:"yaksok.db"`
	Port              string        `env:"PORT" env-default:"3000"`
	JwtSecret         string        `env:"JWT_SECRET" env-required:"true"`
	MinPasswordLength int           `env:"MIN_PASSWORD_LENGTH" env-default:"5"`
	SessionTimeout    time.Duration `env:"SESSION_TIMEOUT" env-default:"24h"`
	SmtpServer        string        `env:"SMTP_SERVER"`
	SmtpPort          int           `env:"SMTP_PORT" env-default:"587"`
	SmtpUser          string        `env:"SMTP_USER"`
	SmtpPassword      string        `env:"SMTP_PASSWORD"`
}
