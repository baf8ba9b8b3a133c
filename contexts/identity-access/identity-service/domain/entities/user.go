package entities

import "net/url"

const avatarBaseURL = "https://api.dicebear.com/7.x/avataaars/svg?seed="

// User is the signed-in account.
type User struct {
	ID     string
	Name   string
	Email  string
	Avatar string
}

// AvatarURL derives a deterministic avatar from the user's name.
func AvatarURL(name string) string {
	return avatarBaseURL + url.QueryEscape(name)
}
