package app

import "github.com/CrestNiraj12/terminalconfess/domain"

// SessionStore owns the durable (token, user) pair. Feed and guard logic only
// read through it.
type SessionStore interface {
	Current() (domain.Session, error)
	Save(s domain.Session) error
	UpdateUser(u domain.User) error
	Clear() error
}

// LikeStore is the durable set of confession ids liked in this client.
type LikeStore interface {
	Contains(id string) bool
	Toggle(id string, liked bool) error
}
