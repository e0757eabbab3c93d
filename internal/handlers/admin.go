package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"hrms-backend/internal/store"
)

type AdminHandler struct {
	Store store.EmployeeStore
}

type assignDepartmentRequest struct {
	Department string `json:"department" binding:"required"`
}

type assignRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=employee manager admin"`
}

func NewAdminHandler(employees store.EmployeeStore) *AdminHandler {
	return &AdminHandler{Store: employees}
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	employees, err := h.Store.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, employees)
}

func (h *AdminHandler) AssignDepartment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req assignDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	if err := h.Store.UpdateDepartment(c.Request.Context(), id, req.Department); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "department updated successfully"})
}

func (h *AdminHandler) AssignRole(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req assignRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	// Tokens minted before a role change keep the old role claim until they
	// expire; the access TTL bounds that window.
	if err := h.Store.UpdateRole(c.Request.Context(), id, req.Role); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "role updated successfully"})
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := h.Store.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user deleted successfully"})
}
