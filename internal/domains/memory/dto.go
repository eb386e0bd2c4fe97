package memory

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateInput is the request body for POST /api/memories.
type CreateInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Type        string `json:"type"`
}

func (r CreateInput) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required.Error("title is required")),
		validation.Field(&r.Description, validation.Required.Error("description is required")),
		validation.Field(&r.Date, validation.Required.Error("date is required")),
	)
}

// UpdateInput is the request body for PUT /api/memories/:id.
// Nil fields are left untouched.
type UpdateInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Date        *string `json:"date"`
	Type        *string `json:"type"`
}

func (r UpdateInput) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.NilOrNotEmpty.Error("title must not be empty")),
		validation.Field(&r.Description, validation.NilOrNotEmpty.Error("description must not be empty")),
		validation.Field(&r.Date, validation.NilOrNotEmpty.Error("date must not be empty")),
	)
}
