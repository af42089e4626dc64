package webserver

import "time"

type Config struct {
	Version           string
	JwtSecret         []byte
	MinPasswordLength int
	SessionTimeout    time.Duration
}

// Sender defines an interface for sending emails
type Sender interface {
	Send(address, subject, body string) error
	From() string
}
