package validators

import "go.mongodb.org/mongo-driver/bson"

var RentalValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"customer",
			"movie",
			"date_out",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "objectId",
			},

			"customer": bson.M{
				"bsonType": "object",
				"required": []string{"id", "name"},
				"properties": bson.M{
					"id": bson.M{
						"bsonType":  "string",
						"minLength": 24,
						"maxLength": 24,
					},
					"name": bson.M{
						"bsonType":  "string",
						"minLength": 5,
						"maxLength": 50,
					},
				},
			},

			"movie": bson.M{
				"bsonType": "object",
				"required": []string{"id", "title"},
				"properties": bson.M{
					"id": bson.M{
						"bsonType":  "string",
						"minLength": 24,
						"maxLength": 24,
					},
					"title": bson.M{
						"bsonType":  "string",
						"minLength": 5,
						"maxLength": 255,
					},
					"daily_rental_rate": bson.M{
						"bsonType": "number",
						"minimum":  0,
						"maximum":  255,
					},
				},
			},

			"date_out": bson.M{
				"bsonType": "date",
			},

			"date_returned": bson.M{
				"bsonType": "date",
			},

			"rental_fee": bson.M{
				"bsonType": "number",
				"minimum":  0,
			},
		},
	},
}
