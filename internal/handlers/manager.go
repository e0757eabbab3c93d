package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"hrms-backend/internal/middleware"
	"hrms-backend/internal/models"
	"hrms-backend/internal/store"
)

type ManagerHandler struct {
	Employees store.EmployeeStore
	Tasks     store.TaskStore
}

type assignTaskRequest struct {
	AssigneeID  string `json:"assigneeId" binding:"required,uuid"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	DueDate     string `json:"dueDate"`
}

func NewManagerHandler(employees store.EmployeeStore, tasks store.TaskStore) *ManagerHandler {
	return &ManagerHandler{Employees: employees, Tasks: tasks}
}

func (h *ManagerHandler) ListEmployees(c *gin.Context) {
	employees, err := h.Employees.ListByRole(c.Request.Context(), models.RoleEmployee)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, employees)
}

func (h *ManagerHandler) AssignTask(c *gin.Context) {
	actorID, err := contextEmployeeID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req assignTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	assigneeID, err := uuid.Parse(req.AssigneeID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid assigneeId"})
		return
	}
	if _, err := h.Employees.FindByID(c.Request.Context(), assigneeID); err != nil {
		respondError(c, err)
		return
	}

	task := models.Task{
		Title:       req.Title,
		Description: req.Description,
		AssigneeID:  assigneeID,
		AssignedBy:  actorID,
	}
	if req.DueDate != "" {
		dueDate, err := time.Parse("2006-01-02", req.DueDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid dueDate"})
			return
		}
		task.DueDate = &dueDate
	}

	if err := h.Tasks.CreateTask(c.Request.Context(), &task); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

// MyTasks lists the caller's own tasks; any authenticated role may use it.
func (h *ManagerHandler) MyTasks(c *gin.Context) {
	actorID, err := contextEmployeeID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	tasks, err := h.Tasks.ListTasksForEmployee(c.Request.Context(), actorID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

func contextEmployeeID(c *gin.Context) (uuid.UUID, error) {
	raw, _ := c.Get(middleware.ContextEmployeeID)
	value, _ := raw.(string)
	return uuid.Parse(value)
}
