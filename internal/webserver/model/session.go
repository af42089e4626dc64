package model

// Session holds the signed-in user's data as carried in the JWT cookie.
type Session struct {
	ID       uint
	Uuid     string
	Name     string
	Username string
	Email    string
	Exp      float64
}
