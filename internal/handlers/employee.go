package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hrms-backend/internal/auth"
)

// EmployeeHandler exposes the public credential lifecycle surface:
// registration, login, temp-password exchange and the forgot/reset flow.
type EmployeeHandler struct {
	Service *auth.Service
}

type registerRequest struct {
	FirstName      string `json:"firstName" binding:"required"`
	LastName       string `json:"lastName" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	ManagerName    string `json:"managerName"`
	Department     string `json:"department" binding:"required"`
	JoiningDate    string `json:"joiningDate" binding:"required"`
	EmploymentType string `json:"employmentType" binding:"required,oneof=Permanent Contractual"`
	VendorName     string `json:"vendorName"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type exchangeRequest struct {
	CompanyEmail string `json:"companyEmail" binding:"required,email"`
	TempPassword string `json:"tempPassword" binding:"required"`
	NewPassword  string `json:"newPassword" binding:"required,min=8"`
}

type forgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type setNewPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}

func NewEmployeeHandler(service *auth.Service) *EmployeeHandler {
	return &EmployeeHandler{Service: service}
}

func (h *EmployeeHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required fields"})
		return
	}

	joiningDate, err := time.Parse("2006-01-02", req.JoiningDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid joiningDate"})
		return
	}

	result, err := h.Service.Register(c.Request.Context(), auth.RegisterInput{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		ManagerName:    req.ManagerName,
		Department:     req.Department,
		JoiningDate:    joiningDate,
		EmploymentType: req.EmploymentType,
		VendorName:     req.VendorName,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	body := gin.H{
		"message":      "employee registered successfully",
		"employeeCode": result.EmployeeCode,
		"companyEmail": result.CompanyEmail,
	}
	if !result.Notified {
		body["warning"] = "onboarding email could not be delivered"
	}
	c.JSON(http.StatusCreated, body)
}

func (h *EmployeeHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	token, err := h.Service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (h *EmployeeHandler) ResetPassword(c *gin.Context) {
	var req exchangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	if err := h.Service.ExchangeTempPassword(c.Request.Context(), req.CompanyEmail, req.TempPassword, req.NewPassword); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "password reset successfully"})
}

func (h *EmployeeHandler) ForgotPassword(c *gin.Context) {
	var req forgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	if err := h.Service.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "if the account exists, a reset link was sent"})
}

func (h *EmployeeHandler) SetNewPassword(c *gin.Context) {
	var req setNewPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	if err := h.Service.SetNewPassword(c.Request.Context(), req.Token, req.NewPassword); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "password updated"})
}
