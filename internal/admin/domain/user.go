package domain

import "time"

// User is a platform account visible to dashboard operators.
type User struct {
	ID       string
	Name     string
	Email    string
	Phone    string
	Location string
	JoinedAt time.Time
	Blocked  bool
}

// Reclamation is a user-submitted complaint. It is always owned by
// exactly one user; the dashboard never creates one, only resolves or
// deletes it.
type Reclamation struct {
	ID        string
	Sender    string
	Recipient string
	Message   string
	Date      time.Time
	Resolved  bool
	UserID    string
}
