package domain

import "time"

// Post is a single text post. IDs are assigned by the store at creation
// time. Username references the owning account but is not re-validated
// against the user collection; there are no cross-collection transactions.
type Post struct {
	ID        int       `json:"id"`
	Username  string    `json:"username"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}
