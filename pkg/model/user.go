package model

// User carries no credential material. Password hashing and token issuance
// belong to an external identity service; this backend only verifies tokens.
type User struct {
	ID      string `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	Name    string `json:"name" bson:"name" validate:"required,min=5,max=50"`
	Email   string `json:"email" bson:"email" validate:"required,email,min=5,max=255"`
	IsAdmin bool   `json:"isAdmin" bson:"is_admin"`
}

type UserInput struct {
	Name    string `json:"name" validate:"required,min=5,max=50"`
	Email   string `json:"email" validate:"required,email,min=5,max=255"`
	IsAdmin bool   `json:"isAdmin"`
}
