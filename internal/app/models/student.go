package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Student defines a document in the 'students' collection. RollNumber is
// the secondary key; marks documents reference it through their student_id
// field and the matching User account uses it as username.
type Student struct {
	ID         primitive.ObjectID     `json:"id,omitempty" bson:"_id,omitempty"`
	Name       string                 `json:"name" bson:"name"`
	RollNumber string                 `json:"roll_number" bson:"roll_number"`
	ClassName  string                 `json:"class_name" bson:"class_name"`
	Section    string                 `json:"section" bson:"section"`
	Subjects   map[string]interface{} `json:"subjects" bson:"subjects"`
}
