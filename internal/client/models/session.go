package models

import "github.com/dmitrijs2005/yogastudio/internal/timex"

// Session is a yoga class. TeacherID and Users reference other entities
// by id only.
type Session struct {
	ID          int64      `json:"id,omitempty"`
	Name        string     `json:"name"`
	Date        timex.Time `json:"date"`
	TeacherID   int64      `json:"teacher_id"`
	Description string     `json:"description"`
	Users       []int64    `json:"users"`
	CreatedAt   timex.Time `json:"createdAt"`
	UpdatedAt   timex.Time `json:"updatedAt"`
}

// HasParticipant reports whether userID is booked on s.
func (s Session) HasParticipant(userID int64) bool {
	for _, id := range s.Users {
		if id == userID {
			return true
		}
	}
	return false
}
