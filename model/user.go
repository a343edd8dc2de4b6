package model

// User is an API account. Only the argon2id hash of the password is ever
// stored, the plaintext never leaves the register/login handlers.
type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Email        string `gorm:"unique;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
}
