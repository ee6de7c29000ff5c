package models

import (
	"strings"

	"github.com/dmitrijs2005/yogastudio/internal/timex"
)

// Teacher is read-only from the client's point of view.
type Teacher struct {
	ID        int64      `json:"id"`
	LastName  string     `json:"lastName"`
	FirstName string     `json:"firstName"`
	CreatedAt timex.Time `json:"createdAt"`
	UpdatedAt timex.Time `json:"updatedAt"`
}

// FullName renders the teacher as "First LAST".
func (t Teacher) FullName() string {
	return strings.TrimSpace(t.FirstName + " " + strings.ToUpper(t.LastName))
}
