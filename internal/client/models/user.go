package models

import "github.com/dmitrijs2005/yogastudio/internal/timex"

type User struct {
	ID        int64      `json:"id"`
	Email     string     `json:"email"`
	LastName  string     `json:"lastName"`
	FirstName string     `json:"firstName"`
	Admin     bool       `json:"admin"`
	Password  string     `json:"password,omitempty"`
	CreatedAt timex.Time `json:"createdAt"`
	UpdatedAt timex.Time `json:"updatedAt"`
}
