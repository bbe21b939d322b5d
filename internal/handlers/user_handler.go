package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medconnect/medconnect-api/internal/models"
	"github.com/medconnect/medconnect-api/internal/repo"
	"github.com/medconnect/medconnect-api/internal/utils"
)

type SignupRequest struct {
	FullName    string `json:"fullName"`
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phoneNumber"`
	Nationality string `json:"nationality"`
	Role        string `json:"role"`
	Image       string `json:"image"`
	Password    string `json:"password"` // optional, absent for social signups
}

// Signup creates a user record. Social signups carry no password; when one
// is supplied it is stored bcrypt-hashed, never in plain form.
func (h *Handler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	exists, err := h.Users.EmailExists(c.Request.Context(), req.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}
	if exists {
		c.JSON(http.StatusConflict, gin.H{"success": false, "message": "User already exists"})
		return
	}

	hashedPassword := ""
	if req.Password != "" {
		hashedPassword, err = utils.HashPassword(req.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to hash password"})
			return
		}
	}

	user := models.User{
		FullName:    req.FullName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Nationality: req.Nationality,
		Role:        req.Role,
		Image:       req.Image,
		Password:    hashedPassword,
	}

	_, err = h.Users.Insert(c.Request.Context(), &user)
	if errors.Is(err, repo.ErrDuplicateEmail) {
		// Lost the race against a concurrent signup with the same email
		c.JSON(http.StatusConflict, gin.H{"success": false, "message": "User already exists"})
		return
	}
	if err != nil {
		log.Printf("Signup: insert failed for %s: %v", req.Email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error creating user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "User created successfully"})
}

// ListUsers returns every signup record. Password hashes stay hidden via the
// model's json tag.
func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.Users.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve users"})
		return
	}
	if users == nil {
		users = make([]models.User, 0)
	}
	c.JSON(http.StatusOK, users)
}
