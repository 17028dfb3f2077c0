package model

// Movie embeds its genre as a value snapshot resolved from the request's
// genreId at create/update time. NumberInStock is the only contended
// mutable field in the system; it never goes below zero.
type Movie struct {
	ID              string  `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	Title           string  `json:"title" bson:"title" validate:"required,min=5,max=255"`
	Genre           Genre   `json:"genre" bson:"genre"`
	NumberInStock   int     `json:"numberInStock" bson:"number_in_stock" validate:"gte=0,lte=255"`
	DailyRentalRate float64 `json:"dailyRentalRate" bson:"daily_rental_rate" validate:"gte=0,lte=255"`
}

type MovieInput struct {
	Title           string  `json:"title" validate:"required,min=5,max=255"`
	GenreID         string  `json:"genreId" validate:"required,mongodb"`
	NumberInStock   int     `json:"numberInStock" validate:"gte=0,lte=255"`
	DailyRentalRate float64 `json:"dailyRentalRate" validate:"gte=0,lte=255"`
}
