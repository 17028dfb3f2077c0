package model

type Genre struct {
	ID   string `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	Name string `json:"name" bson:"name" validate:"required,min=5,max=50"`
}

type GenreInput struct {
	Name string `json:"name" validate:"required,min=5,max=50"`
}
