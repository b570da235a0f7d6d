package user

// PasswordHasher abstracts the hashing scheme so the domain never depends
// on bcrypt directly.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) error
}
