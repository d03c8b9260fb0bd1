package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/fadhlanhapp/tripdash-backend/models"
	"github.com/fadhlanhapp/tripdash-backend/repository"
	"github.com/fadhlanhapp/tripdash-backend/services"
	"github.com/fadhlanhapp/tripdash-backend/utils"
)

// HandlerServices contains all service dependencies
type HandlerServices struct {
	DashboardService *services.DashboardService
	AuthService      *services.AuthService
	ExcelService     *services.ExcelService
	SessionStore     repository.SessionStore
}

var handlerServices *HandlerServices

// InitHandlers initializes the handler services
func InitHandlers(dashboard *services.DashboardService, store repository.SessionStore) {
	handlerServices = &HandlerServices{
		DashboardService: dashboard,
		AuthService:      services.NewAuthService(),
		ExcelService:     services.NewExcelService(),
		SessionStore:     store,
	}
}

// sessionToken extracts the bearer token from the request
func sessionToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

// currentUser resolves the session for the request, or returns an
// unauthorized error suitable for HandleError
func currentUser(c *gin.Context) (*models.User, error) {
	token := sessionToken(c)
	if token == "" {
		return nil, utils.NewUnauthorizedError(utils.ErrSessionRequired)
	}

	user, err := handlerServices.SessionStore.Restore(token)
	if err != nil {
		return nil, utils.NewInternalError("Failed to restore session")
	}
	if user == nil {
		return nil, utils.NewUnauthorizedError(utils.ErrSessionInvalid)
	}

	return user, nil
}
