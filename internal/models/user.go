package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type User struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName    string             `bson:"fullName" json:"fullName"`
	Email       string             `bson:"email" json:"email"`
	PhoneNumber string             `bson:"phoneNumber" json:"phoneNumber"`
	Nationality string             `bson:"nationality" json:"nationality"`
	Role        string             `bson:"role" json:"role"` // "patient", "doctor", "admin"
	Image       string             `bson:"image" json:"image"`
	Password    string             `bson:"password,omitempty" json:"-"` // Hide from JSON responses
}
