package notification

import "time"

type message struct {
	ID        string    `json:"id"`
	Source    string    `json:"source"`
	Identity  int64     `json:"identity_id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
