package users

import "time"

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash []byte
	Salt         []byte
	CreatedAt    time.Time
}
