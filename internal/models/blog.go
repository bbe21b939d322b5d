package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type BlogPost struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserEmail    string             `bson:"userEmail" json:"userEmail"`
	UserImage    string             `bson:"userImage" json:"userImage"`
	UserName     string             `bson:"userName" json:"userName"`
	Title        string             `bson:"title" json:"title"`
	Description  string             `bson:"description" json:"description"`
	BlogCategory string             `bson:"blogCategory" json:"blogCategory"`
	Images       []string           `bson:"images" json:"images"`
	Views        int                `bson:"views" json:"views"`
	CreatedDate  string             `bson:"createdDate" json:"createdDate"`
	CreatedTime  string             `bson:"createdTime" json:"createdTime"`
}
