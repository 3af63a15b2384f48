package domain

import "time"

// User is a registered account. Username is the primary key, matched
// case-sensitively. Users are created on registration and never mutated or
// deleted afterwards.
type User struct {
	Username     string    `json:"username"`
	PasswordHash string    `json:"passwordHash"` // bcrypt encoded
	CreatedAt    time.Time `json:"createdAt"`
}

// Account is the public view of a User. The password hash is deliberately
// excluded so account listings never leak credential material.
type Account struct {
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}

// Public converts a User to its listable form.
func (u User) Public() Account {
	return Account{Username: u.Username, CreatedAt: u.CreatedAt}
}
