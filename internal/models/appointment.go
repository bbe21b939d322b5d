package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Appointment is a paid (or pending-payment) booking against an approved
// doctor. One record is created per payment attempt; the failure callback
// removes it again, so only paid and still-pending records persist.
type Appointment struct {
	ID                   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	DoctorID             primitive.ObjectID `bson:"doctorId" json:"doctorId"`
	DoctorName           string             `bson:"doctorName" json:"doctorName"`
	DoctorSpecialization string             `bson:"doctorSpecialization" json:"doctorSpecialization"`
	DoctorEmail          string             `bson:"doctorEmail" json:"doctorEmail"`
	DoctorVisit          float64            `bson:"doctorVisit" json:"doctorVisit"`
	PatientEmail         string             `bson:"patientEmail" json:"patientEmail"`
	AppointmentStatus    string             `bson:"appointmentStatus" json:"appointmentStatus"`
	PaidStatus           bool               `bson:"paidStatus" json:"paidStatus"`
	TransactionID        string             `bson:"transactionId" json:"transactionId"`
}
