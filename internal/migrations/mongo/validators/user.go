package validators

import "go.mongodb.org/mongo-driver/bson"

var UserValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType":             "object",
		"required":             []string{"name", "email"},
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

			"email": bson.M{
				"bsonType":  "string",
				"minLength": 5,
				"maxLength": 255,
			},

			"is_admin": bson.M{
				"bsonType": "bool",
			},
		},
	},
}
