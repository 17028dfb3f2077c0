package model

type Customer struct {
	ID     string `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	Name   string `json:"name" bson:"name" validate:"required,min=5,max=50"`
	Phone  string `json:"phone" bson:"phone" validate:"required,min=5,max=50"`
	IsGold bool   `json:"isGold" bson:"is_gold"`
}

type CustomerInput struct {
	Name   string `json:"name" validate:"required,min=5,max=50"`
	Phone  string `json:"phone" validate:"required,min=5,max=50"`
	IsGold bool   `json:"isGold"`
}
