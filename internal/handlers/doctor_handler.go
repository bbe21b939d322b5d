package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/medconnect/medconnect-api/internal/models"
	"github.com/medconnect/medconnect-api/internal/repo"
)

type DoctorApplicationRequest struct {
	UserEmail           string   `json:"userEmail"`
	UserImage           string   `json:"userImage"`
	FullName            string   `json:"fullName" binding:"required"`
	DOB                 string   `json:"dob" binding:"required"`
	Gender              string   `json:"gender"`
	Nationality         string   `json:"nationality"`
	MedicalRegistration string   `json:"medicalRegistration"`
	Specialization      string   `json:"specialization"`
	Experience          string   `json:"experience"`
	Email               string   `json:"email" binding:"required"`
	Visit               float64  `json:"visit"`
	Phone               string   `json:"phone" binding:"required"`
	HighestEducation    string   `json:"highestEducation"`
	MedicalSchool       string   `json:"medicalSchool"`
	GraduationYear      string   `json:"graduationYear"`
	MedicalDegree       string   `json:"medicalDegree"`
	Motivation          string   `json:"motivation"`
	CareerGoals         string   `json:"careerGoals"`
	HospitalClinicName  string   `json:"hospitalClinicName"`
	Position            string   `json:"position"`
	Duration            string   `json:"duration"`
	AvailableDays       []string `json:"availableDays"`
	Resume              string   `json:"resume"`
	MedicalLicense      string   `json:"medicalLicense"`
	AvailableTime       string   `json:"availableTime"`
	References          string   `json:"references"`
	YourSelf            string   `json:"yourSelf"`
	Approval            string   `json:"approval"`
}

// CreateDoctor stores a doctor application. Name, date of birth, email and
// phone are mandatory; everything else is kept as submitted. The creation
// timestamp is stamped server-side.
func (h *Handler) CreateDoctor(c *gin.Context) {
	var req DoctorApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
		return
	}

	doctor := models.Doctor{
		UserEmail:           req.UserEmail,
		UserImage:           req.UserImage,
		FullName:            req.FullName,
		DOB:                 req.DOB,
		Gender:              req.Gender,
		Nationality:         req.Nationality,
		MedicalRegistration: req.MedicalRegistration,
		Specialization:      req.Specialization,
		Experience:          req.Experience,
		Email:               req.Email,
		Visit:               req.Visit,
		Phone:               req.Phone,
		HighestEducation:    req.HighestEducation,
		MedicalSchool:       req.MedicalSchool,
		GraduationYear:      req.GraduationYear,
		MedicalDegree:       req.MedicalDegree,
		Motivation:          req.Motivation,
		CareerGoals:         req.CareerGoals,
		HospitalClinicName:  req.HospitalClinicName,
		Position:            req.Position,
		Duration:            req.Duration,
		AvailableDays:       req.AvailableDays,
		Resume:              req.Resume,
		MedicalLicense:      req.MedicalLicense,
		AvailableTime:       req.AvailableTime,
		References:          req.References,
		YourSelf:            req.YourSelf,
		CreatedAt:           time.Now(),
		Approval:            req.Approval,
	}

	id, err := h.Doctors.Insert(c.Request.Context(), &doctor)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error submitting form", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Form submitted successfully", "insertedId": id.Hex()})
}

func (h *Handler) ListDoctors(c *gin.Context) {
	doctors, err := h.Doctors.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch doctors"})
		return
	}
	if doctors == nil {
		doctors = make([]models.Doctor, 0)
	}
	c.JSON(http.StatusOK, doctors)
}

func (h *Handler) GetDoctor(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid doctor ID"})
		return
	}

	doctor, err := h.Doctors.FindByID(c.Request.Context(), id)
	if errors.Is(err, repo.ErrNotFound) {
		// The client treats an empty body as "no application yet"
		c.JSON(http.StatusOK, nil)
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch doctor"})
		return
	}

	c.JSON(http.StatusOK, doctor)
}

// ApproveDoctor sets the approval flag for the application addressed by its
// primary key and echoes the update counts.
func (h *Handler) ApproveDoctor(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid doctor ID"})
		return
	}

	matched, modified, err := h.Doctors.Approve(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred while updating user status."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"matchedCount": matched, "modifiedCount": modified})
}
