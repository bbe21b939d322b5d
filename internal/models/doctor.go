package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Doctor is a doctor application as submitted through the intake form.
// Approval starts empty and is set to "true" by an admin action.
type Doctor struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserEmail           string             `bson:"userEmail" json:"userEmail"`
	UserImage           string             `bson:"userImage" json:"userImage"`
	FullName            string             `bson:"fullName" json:"fullName"`
	DOB                 string             `bson:"dob" json:"dob"`
	Gender              string             `bson:"gender" json:"gender"`
	Nationality         string             `bson:"nationality" json:"nationality"`
	MedicalRegistration string             `bson:"medicalRegistration" json:"medicalRegistration"`
	Specialization      string             `bson:"specialization" json:"specialization"`
	Experience          string             `bson:"experience" json:"experience"`
	Email               string             `bson:"email" json:"email"`
	Visit               float64            `bson:"visit" json:"visit"` // consultation fee, BDT
	Phone               string             `bson:"phone" json:"phone"`
	HighestEducation    string             `bson:"highestEducation" json:"highestEducation"`
	MedicalSchool       string             `bson:"medicalSchool" json:"medicalSchool"`
	GraduationYear      string             `bson:"graduationYear" json:"graduationYear"`
	MedicalDegree       string             `bson:"medicalDegree" json:"medicalDegree"`
	Motivation          string             `bson:"motivation" json:"motivation"`
	CareerGoals         string             `bson:"careerGoals" json:"careerGoals"`
	HospitalClinicName  string             `bson:"hospitalClinicName" json:"hospitalClinicName"`
	Position            string             `bson:"position" json:"position"`
	Duration            string             `bson:"duration" json:"duration"`
	AvailableDays       []string           `bson:"availableDays" json:"availableDays"`
	Resume              string             `bson:"resume" json:"resume"`
	MedicalLicense      string             `bson:"medicalLicense" json:"medicalLicense"`
	AvailableTime       string             `bson:"availableTime" json:"availableTime"`
	References          string             `bson:"references" json:"references"`
	YourSelf            string             `bson:"yourSelf" json:"yourSelf"`
	CreatedAt           time.Time          `bson:"createdAt" json:"createdAt"`
	Approval            string             `bson:"approval" json:"approval"`
}
