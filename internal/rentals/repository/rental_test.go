package repository

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/LeQuyetTien/vidly/pkg/model"
)

func TestBuildRentalUpdate(t *testing.T) {
	dateOut := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	base := model.Rental{
		Customer: model.CustomerSnapshot{ID: "507f1f77bcf86cd799439011", Name: "John Doe"},
		Movie:    model.MovieSnapshot{ID: "507f1f77bcf86cd799439012", Title: "The Terminator", DailyRentalRate: 2.5},
		DateOut:  dateOut,
	}

	t.Run("open rental keeps return fields absent", func(t *testing.T) {
		rental := base

		update := buildRentalUpdate(&rental)

		set, ok := update["$set"].(bson.M)
		if !ok {
			t.Fatalf("expected $set document, got %v", update["$set"])
		}
		for _, field := range []string{"date_returned", "rental_fee"} {
			if _, present := set[field]; present {
				t.Errorf("expected %s to be absent from $set", field)
			}
		}

		unset, ok := update["$unset"].(bson.M)
		if !ok {
			t.Fatalf("expected $unset document for an open rental, got %v", update["$unset"])
		}
		for _, field := range []string{"date_returned", "rental_fee"} {
			if _, present := unset[field]; !present {
				t.Errorf("expected %s in $unset", field)
			}
		}
	})

	t.Run("closed rental sets return date and fee", func(t *testing.T) {
		returnedAt := dateOut.Add(72 * time.Hour)
		fee := 7.5
		rental := base
		rental.DateReturned = &returnedAt
		rental.RentalFee = &fee

		update := buildRentalUpdate(&rental)

		set, ok := update["$set"].(bson.M)
		if !ok {
			t.Fatalf("expected $set document, got %v", update["$set"])
		}
		if set["date_returned"] != &returnedAt {
			t.Errorf("expected date_returned in $set")
		}
		if set["rental_fee"] != &fee {
			t.Errorf("expected rental_fee in $set")
		}
		if _, present := update["$unset"]; present {
			t.Errorf("expected no $unset for a closed rental")
		}
	})
}
