package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/medconnect/medconnect-api/internal/models"
	"github.com/medconnect/medconnect-api/internal/payment"
	"github.com/medconnect/medconnect-api/internal/repo"
)

type OrderRequest struct {
	DoctorID          string `json:"doctorId" binding:"required"`
	UserEmail         string `json:"userEmail" binding:"required"`
	AppointmentStatus string `json:"appointmentStatus"`
}

// CreateOrder starts a payment session for a consultation. A fresh
// transaction id is generated per request, the pending appointment is
// recorded before the gateway URL is returned, and the callbacks below
// finalize or roll back that record.
func (h *Handler) CreateOrder(c *gin.Context) {
	var req OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	doctorID, err := primitive.ObjectIDFromHex(req.DoctorID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid doctor ID"})
		return
	}

	doctor, err := h.Doctors.FindByID(c.Request.Context(), doctorID)
	if errors.Is(err, repo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Doctor not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
		return
	}
	if doctor.Visit <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Doctor has no consultation fee configured"})
		return
	}

	tranID := uuid.NewString()

	url, err := h.Gateway.CreateSession(c.Request.Context(), payment.Session{
		Amount:        doctor.Visit,
		Currency:      "BDT",
		TransactionID: tranID,
		SuccessURL:    h.Cfg.ServerURL + "/payment/success/" + tranID,
		FailURL:       h.Cfg.ServerURL + "/payment/fail/" + tranID,
		CancelURL:     h.Cfg.ClientURL + "/cancel",
		ProductName:   "Doctor Appointment",
		CustomerName:  req.UserEmail,
		CustomerEmail: req.UserEmail,
	})
	if err != nil {
		log.Printf("CreateOrder: gateway session failed for tran %s: %v", tranID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
		return
	}

	order := models.Appointment{
		DoctorID:             doctor.ID,
		DoctorName:           doctor.FullName,
		DoctorSpecialization: doctor.Specialization,
		DoctorEmail:          doctor.UserEmail,
		DoctorVisit:          doctor.Visit,
		PatientEmail:         req.UserEmail,
		AppointmentStatus:    req.AppointmentStatus,
		PaidStatus:           false,
		TransactionID:        tranID,
	}

	// Record the pending appointment before handing out the checkout URL;
	// the success callback has nothing to match otherwise.
	if _, err := h.Appointments.Insert(c.Request.Context(), &order); err != nil {
		log.Printf("CreateOrder: insert failed for tran %s: %v", tranID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}

// PaymentSuccess is the gateway's success callback. It marks the matching
// pending appointment paid and sends the payer's browser to the client app.
func (h *Handler) PaymentSuccess(c *gin.Context) {
	tranID := c.Param("tranId")

	modified, err := h.Appointments.MarkPaid(c.Request.Context(), tranID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
		return
	}

	if modified > 0 {
		c.Redirect(http.StatusFound, h.Cfg.ClientURL+"/payment/success/"+tranID)
		return
	}
	// Unknown or already-settled transaction: don't leave the browser hanging
	c.Redirect(http.StatusFound, h.Cfg.ClientURL+"/payment/fail/"+tranID)
}

// PaymentFail is the gateway's failure callback. The pending appointment is
// removed entirely so an abandoned checkout leaves no trace.
func (h *Handler) PaymentFail(c *gin.Context) {
	tranID := c.Param("tranId")

	if _, err := h.Appointments.DeleteByTransaction(c.Request.Context(), tranID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
		return
	}

	c.Redirect(http.StatusFound, h.Cfg.ClientURL+"/payment/fail/"+tranID)
}

func (h *Handler) ListOrders(c *gin.Context) {
	orders, err := h.Appointments.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch appointments"})
		return
	}
	if orders == nil {
		orders = make([]models.Appointment, 0)
	}
	c.JSON(http.StatusOK, orders)
}
