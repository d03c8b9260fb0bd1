package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fadhlanhapp/tripdash-backend/utils"
)

// GetDashboard returns the derived dashboard snapshot for the session user
func GetDashboard(c *gin.Context) {
	user, err := currentUser(c)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	snapshot, err := handlerServices.DashboardService.Snapshot(user)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, snapshot)
}

// RefreshDashboard re-runs the four-table load. Admin only.
func RefreshDashboard(c *gin.Context) {
	user, err := currentUser(c)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	if user.Role != utils.RoleAdmin {
		utils.HandleError(c, utils.NewForbiddenError(utils.ErrAdminOnly))
		return
	}

	if err := handlerServices.DashboardService.Load(c.Request.Context()); err != nil {
		utils.HandleError(c, utils.NewUnavailableError(utils.ErrDashboardUnavailable))
		return
	}

	utils.HandleSuccess(c, gin.H{"refreshed": true})
}

// ExportDashboard exports the dashboard to Excel format
func ExportDashboard(c *gin.Context) {
	user, err := currentUser(c)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	snapshot, err := handlerServices.DashboardService.Snapshot(user)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	excelFile, filename, err := handlerServices.ExcelService.ExportDashboard(snapshot)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export dashboard: " + err.Error()})
		return
	}

	// Set headers for file download
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
	c.Header("Content-Transfer-Encoding", "binary")

	// Write Excel file to response
	if err := excelFile.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file: " + err.Error()})
		return
	}
}
