package handlers

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fadhlanhapp/tripdash-backend/models"
	"github.com/fadhlanhapp/tripdash-backend/utils"
)

// Login authenticates against the normalized Users table and opens a session
func Login(c *gin.Context) {
	var request models.LoginRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	users, err := handlerServices.DashboardService.Users()
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	user, err := handlerServices.AuthService.Authenticate(request.Name, request.Password, users)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	token := uuid.NewString()
	if err := handlerServices.SessionStore.Save(token, user); err != nil {
		log.Printf("Failed to save session: %v", err)
		utils.HandleError(c, utils.NewInternalError(utils.ErrFailedToStoreSession))
		return
	}

	utils.HandleSuccess(c, models.LoginResponse{
		Token: token,
		User:  *user,
	})
}

// Logout clears the session for the presented token
func Logout(c *gin.Context) {
	token := sessionToken(c)
	if token == "" {
		utils.HandleError(c, utils.NewUnauthorizedError(utils.ErrSessionRequired))
		return
	}

	if err := handlerServices.SessionStore.Clear(token); err != nil {
		log.Printf("Failed to clear session: %v", err)
	}

	utils.HandleSuccess(c, gin.H{"loggedOut": true})
}

// RestoreSession returns the user for a previously saved session token
func RestoreSession(c *gin.Context) {
	user, err := currentUser(c)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, user)
}
