package routes

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hrms-backend/internal/auth"
	"hrms-backend/internal/handlers"
	"hrms-backend/internal/middleware"
	"hrms-backend/internal/models"
	"hrms-backend/internal/store"
)

type Deps struct {
	Service        *auth.Service
	Codec          *auth.TokenCodec
	Employees      store.EmployeeStore
	Tasks          store.TaskStore
	AllowedOrigins string
}

func Register(router *gin.Engine, deps Deps) {
	router.Use(corsMiddleware(deps.AllowedOrigins))

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "hrms-backend"})
	})

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	employeeHandler := handlers.NewEmployeeHandler(deps.Service)
	adminHandler := handlers.NewAdminHandler(deps.Employees)
	managerHandler := handlers.NewManagerHandler(deps.Employees, deps.Tasks)

	api := router.Group("/api")
	{
		api.POST("/auth/register", employeeHandler.Register)
		api.POST("/auth/login", employeeHandler.Login)
		api.POST("/auth/reset-password", employeeHandler.ResetPassword)
		api.POST("/auth/forgot-password", employeeHandler.ForgotPassword)
		api.POST("/auth/set-new-password", employeeHandler.SetNewPassword)
	}

	protected := api.Group("/")
	protected.Use(middleware.AuthRequired(deps.Codec))
	{
		protected.GET("/tasks", managerHandler.MyTasks)

		admin := protected.Group("/admin")
		admin.Use(middleware.RequireRole(models.RoleAdmin))
		{
			admin.GET("/users", adminHandler.ListUsers)
			admin.PUT("/users/:id/department", adminHandler.AssignDepartment)
			admin.PUT("/users/:id/role", adminHandler.AssignRole)
			admin.DELETE("/users/:id", adminHandler.DeleteUser)
		}

		manager := protected.Group("/manager")
		manager.Use(middleware.RequireRole(models.RoleManager))
		{
			manager.GET("/employees", managerHandler.ListEmployees)
			manager.POST("/tasks", managerHandler.AssignTask)
		}
	}
}

func corsMiddleware(allowed string) gin.HandlerFunc {
	origins := []string{}
	for _, origin := range strings.Split(allowed, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			origins = append(origins, origin)
		}
	}

	allowAll := len(origins) == 0

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if allowAll {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		} else {
			for _, allowedOrigin := range origins {
				if origin == allowedOrigin {
					c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
					c.Writer.Header().Set("Vary", "Origin")
					break
				}
			}
		}

		c.Writer.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
