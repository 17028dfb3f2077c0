package model

import "time"

// CustomerSnapshot and MovieSnapshot are value copies fixed at rental
// creation. Later edits to the source documents do not propagate; the
// rental keeps the data it was billed against.
type CustomerSnapshot struct {
	ID   string `json:"id" bson:"id"`
	Name string `json:"name" bson:"name"`
}

type MovieSnapshot struct {
	ID              string  `json:"id" bson:"id"`
	Title           string  `json:"title" bson:"title"`
	DailyRentalRate float64 `json:"dailyRentalRate" bson:"daily_rental_rate"`
}

type Rental struct {
	ID           string           `json:"id,omitempty" bson:"_id,omitempty"`
	Customer     CustomerSnapshot `json:"customer" bson:"customer"`
	Movie        MovieSnapshot    `json:"movie" bson:"movie"`
	DateOut      time.Time        `json:"dateOut" bson:"date_out"`
	DateReturned *time.Time       `json:"dateReturned,omitempty" bson:"date_returned,omitempty"`
	RentalFee    *float64         `json:"rentalFee,omitempty" bson:"rental_fee,omitempty"`
}

type RentalInput struct {
	CustomerID   string     `json:"customerId" validate:"required,mongodb"`
	MovieID      string     `json:"movieId" validate:"required,mongodb"`
	DateOut      time.Time  `json:"dateOut" validate:"required"`
	DateReturned *time.Time `json:"dateReturned,omitempty"`
	RentalFee    *float64   `json:"rentalFee,omitempty" validate:"omitempty,gte=0"`
}

type ReturnInput struct {
	CustomerID string `json:"customerId" validate:"required,mongodb"`
	MovieID    string `json:"movieId" validate:"required,mongodb"`
}
