package friend

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateInput is the request body for POST /api/friends.
type CreateInput struct {
	Name        string   `json:"name"`
	Bio         string   `json:"bio"`
	Avatar      string   `json:"avatar"`
	Role        string   `json:"role"`
	SocialLinks []string `json:"socialLinks"`
}

func (r CreateInput) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required.Error("name is required")),
		validation.Field(&r.Bio, validation.Required.Error("bio is required")),
		validation.Field(&r.Role, validation.Required.Error("role is required")),
	)
}

// UpdateInput is the request body for PUT /api/friends/:id.
// Nil fields are left untouched.
type UpdateInput struct {
	Name        *string   `json:"name"`
	Bio         *string   `json:"bio"`
	Avatar      *string   `json:"avatar"`
	Role        *string   `json:"role"`
	SocialLinks *[]string `json:"socialLinks"`
}

func (r UpdateInput) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.NilOrNotEmpty.Error("name must not be empty")),
		validation.Field(&r.Bio, validation.NilOrNotEmpty.Error("bio must not be empty")),
		validation.Field(&r.Role, validation.NilOrNotEmpty.Error("role must not be empty")),
	)
}
