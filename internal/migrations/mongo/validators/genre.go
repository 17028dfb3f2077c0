package validators

import "go.mongodb.org/mongo-driver/bson"

var GenreValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType":             "object",
		"required":             []string{"name"},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "objectId",
			},

			"name": bson.M{
				"bsonType":  "string",
				"minLength": 5,
				"maxLength": 50,
			},
		},
	},
}
