package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/yogastudio/internal/client/models"
)

const resourceTeacher = "teacher"

// TeachersClient reads the teacher list.
type TeachersClient struct {
	c *Client
}

// All lists every teacher. An empty list is not an error.
func (t *TeachersClient) All(ctx context.Context) ([]models.Teacher, error) {
	var teachers []models.Teacher
	if err := t.c.do(ctx, resourceTeacher, http.MethodGet, nil, &teachers, "api", "teacher"); err != nil {
		return nil, err
	}
	return teachers, nil
}

// Detail fetches one teacher by id.
func (t *TeachersClient) Detail(ctx context.Context, id string) (models.Teacher, error) {
	var teacher models.Teacher
	if err := t.c.do(ctx, resourceTeacher, http.MethodGet, nil, &teacher, "api", "teacher", url.PathEscape(id)); err != nil {
		return models.Teacher{}, err
	}
	return teacher, nil
}
