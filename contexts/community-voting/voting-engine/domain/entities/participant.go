package entities

import (
	"net/url"
	"time"
)

const avatarBaseURL = "https://api.dicebear.com/7.x/avataaars/svg?seed="

// Participant is a votable entry on the community roster.
// Votes is a non-negative tally; the avatar is fixed at creation time.
type Participant struct {
	ID          string
	Name        string
	Description string
	Avatar      string
	Votes       int
	CreatedAt   time.Time
}

// AvatarURL derives an identicon-style avatar from the display name.
// The derivation is one-way: the stored avatar never changes afterwards,
// even if the participant were renamed.
func AvatarURL(name string) string {
	return avatarBaseURL + url.QueryEscape(name)
}
