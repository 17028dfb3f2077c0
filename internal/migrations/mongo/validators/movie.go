package validators

import "go.mongodb.org/mongo-driver/bson"

var MovieValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"title",
			"genre",
			"number_in_stock",
			"daily_rental_rate",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "objectId",
			},

			"title": bson.M{
				"bsonType":  "string",
				"minLength": 5,
				"maxLength": 255,
			},

			"genre": bson.M{
				"bsonType": "object",
				"required": []string{"name"},
				"properties": bson.M{
					"_id": bson.M{
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

			"number_in_stock": bson.M{
				"bsonType": "number",
				"minimum":  0,
				"maximum":  255,
			},

			"daily_rental_rate": bson.M{
				"bsonType": "number",
				"minimum":  0,
				"maximum":  255,
			},
		},
	},
}
