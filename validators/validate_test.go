package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Title string `json:"title" validate:"required"`
	Level string `json:"level" validate:"omitempty,oneof=Beginner Intermediate Advanced"`
	Email string `json:"email" validate:"omitempty,email"`
}

func TestStructUsesJSONNames(t *testing.T) {
	errs := Struct(&sample{Level: "Expert", Email: "nope"}, "")
	assert.Equal(t, map[string]string{
		"title": "title is required!",
		"level": "level must be one of: Beginner, Intermediate, Advanced!",
		"email": "email must be a valid email address!",
	}, errs)

	assert.Nil(t, Struct(&sample{Title: "ok"}, ""))
}

func TestStructPrefix(t *testing.T) {
	errs := Struct(&sample{}, "students[1]")
	assert.Equal(t, "title is required!", errs["students[1].title"])
}

func TestMerge(t *testing.T) {
	assert.Equal(t, map[string]string{"a": "1", "b": "2"}, Merge(map[string]string{"a": "1"}, nil, map[string]string{"b": "2"}))
}
