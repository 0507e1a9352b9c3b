package domain

// User is the locally stored record of the signed-in account.
type User struct {
	ID             string   `json:"id"`
	Username       string   `json:"username,omitempty"`
	Email          string   `json:"email,omitempty"`
	DisplayName    string   `json:"displayName,omitempty"`
	Bio            string   `json:"bio,omitempty"`
	Interests      []string `json:"interests,omitempty"`
	ProfilePicture string   `json:"profilePicture,omitempty"`
	IsOnboarded    bool     `json:"isOnboarded"`
}

// Session is the (token, user) pair of the current client identity.
// Either part may be absent.
type Session struct {
	Token string
	User  *User
}

// HasToken reports whether a bearer token is present.
func (s Session) HasToken() bool {
	return s.Token != ""
}

// RequireUser returns the session user, or ErrNoSession when the session is
// missing its token or user record.
func (s Session) RequireUser() (*User, error) {
	if s.Token == "" || s.User == nil || s.User.ID == "" {
		return nil, ErrNoSession
	}
	return s.User, nil
}
