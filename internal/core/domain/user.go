package domain

import "errors"

var ErrUserNotFound = errors.New("user not found")
var ErrNoUsersForCargo = errors.New("no users match cargo")
var ErrInvalidCredentials = errors.New("invalid credentials")

// User models an account in the system. Cargo (role/position) doubles as the
// login identity; it is a lookup key, not a uniqueness constraint.
type User struct {
	ID        int    `json:"id"`
	Cargo     string `json:"cargo"`
	Nombres   string `json:"nombres"`
	Apellidos string `json:"apellidos"`
	// Clave holds the bcrypt hash. Plaintext never reaches storage. Clients
	// of the user listing expect the field present, so it is not omitted.
	Clave string `json:"clave"`
}

// UserSummary is the non-sensitive projection returned by authentication.
type UserSummary struct {
	ID        int    `json:"id"`
	Nombres   string `json:"nombres"`
	Apellidos string `json:"apellidos"`
	Cargo     string `json:"cargo"`
}

// Summary strips the credential hash from a user record.
func (u User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Nombres: u.Nombres, Apellidos: u.Apellidos, Cargo: u.Cargo}
}
