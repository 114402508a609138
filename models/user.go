package models

// User is an account record stored in the "users" table.
// Password always holds a bcrypt hash, never the plaintext, and is never
// serialized back to clients.
type User struct {
	// ID is assigned by the store on insert.
	ID int64 `db:"id" json:"id"`

	// Name is the free-text display name given at signup.
	Name string `db:"name" json:"name"`

	// Email is the login key. It is compared byte-for-byte, without case
	// or whitespace normalization.
	Email string `db:"email" json:"email"`

	// Password is the bcrypt hash of the user's password.
	Password string `db:"password" json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
