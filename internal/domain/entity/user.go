package entity

// User is a GameSwap account holder. The password hash never leaves the
// persistence and authentication layers.
type User struct {
	ID           string         // Document identifier, hex-encoded.
	Username     string         // Unique display name, used as an alternate lookup key.
	Email        string         // Unique login identifier.
	PasswordHash string         // bcrypt hash of the account password.
	SavedGames   []RentalRecord // The user's rental set, keyed by Game id.
}

// GameCount reports the size of the user's rental set.
func (u *User) GameCount() int {
	return len(u.SavedGames)
}
