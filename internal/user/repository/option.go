package repository

// CreateUserOptions inserts a new account. PasswordHash is the bcrypt hash,
// never the raw password.
type CreateUserOptions struct {
	Name         string
	Email        string
	PasswordHash string
}
