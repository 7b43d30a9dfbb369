package model

import "time"

type User struct {
	ID        string
	Login     string
	Password  []byte
	Role      string
	CreatedAt time.Time
}
