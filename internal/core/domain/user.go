package domain

import "time"

// Favorite is a single saved route reference on a user's favorites list.
// Tags carries arbitrary metadata copied from the route (name, region, ...).
type Favorite struct {
	ID   string         `json:"id"`
	Tags map[string]any `json:"tags"`
}

// User models an account holder. The access token is issued once at signup
// and acts as the bearer credential for every authenticated request; it is
// never serialized into generic user payloads.
type User struct {
	ID             string     `json:"userId"`
	Username       string     `json:"username"`
	Email          string     `json:"email,omitempty"`
	PasswordHash   string     `json:"-"`
	AccessToken    string     `json:"-"`
	ProfilePicture string     `json:"profilePicture,omitempty"`
	Favorites      []Favorite `json:"favorites"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// Clone returns a deep copy of the user. Services mutate the copy and only
// hand it back once persistence succeeds, so a failed save never leaves a
// half-applied change on the caller's value.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	clone := *u
	if u.Favorites != nil {
		clone.Favorites = make([]Favorite, len(u.Favorites))
		copy(clone.Favorites, u.Favorites)
	}
	return &clone
}
