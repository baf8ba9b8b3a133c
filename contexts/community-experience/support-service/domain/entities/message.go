package entities

import "time"

// ContactMessage is one contact-form submission, newest first in the inbox.
type ContactMessage struct {
	ID        string
	Name      string
	Email     string
	Subject   string
	Body      string
	Read      bool
	CreatedAt time.Time
}
