package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User defines an account document in the 'users' collection.
// Usernames are unique; for student accounts the username is the
// student's roll number.
type User struct {
	ID             primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	Username       string             `json:"username" bson:"username"`
	Email          string             `json:"email" bson:"email"`
	FullName       string             `json:"full_name" bson:"full_name"`
	Role           Role               `json:"role" bson:"role"`
	Disabled       bool               `json:"disabled" bson:"disabled"`
	HashedPassword string             `json:"-" bson:"hashed_password"`
}
