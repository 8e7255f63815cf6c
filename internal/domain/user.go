package domain

// User is the single back-office account accepted by the auth endpoint.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Avatar    string `json:"avatar,omitempty"`
}

// Session pairs the issued access token with the signed-in user. It is the
// record persisted to the client-side key-value store.
type Session struct {
	AccessToken string `json:"accessToken"`
	User        User   `json:"user"`
}
