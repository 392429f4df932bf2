package controllers

import (
	"EAsha/handlers"
	"EAsha/middlewares"
	"EAsha/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

// SetupAdminRoutes installs the administrator app: worker account
// management, the cross-worker reports, and the CSV exports. Every route
// requires an Admin session.
func SetupAdminRoutes(router *gin.Engine, workerHandler *handlers.WorkerHandler, reportHandler *handlers.ReportHandler, authHandler *handlers.AuthHandler) {
	admin := router.Group("/").Use(middlewares.SessionAuth(utils.RoleAdmin, "/admin_login"))
	{
		admin.GET("/home_admin", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"page": "home_admin"})
		})
		admin.GET("/admin_profile", authHandler.AdminProfile)

		admin.GET("/manage_asha", workerHandler.ManageWorkers)
		admin.GET("/add_asha", workerHandler.AddWorkerPage)
		admin.POST("/add_asha", workerHandler.AddWorker)
		admin.GET("/edit_asha/:username", workerHandler.EditWorkerPage)
		admin.POST("/edit_asha/:username", workerHandler.EditWorker)
		admin.GET("/delete_asha/:username", workerHandler.DeleteWorker)

		admin.GET("/allview", reportHandler.AllView)
		admin.GET("/disease_graph", reportHandler.DiseaseGraph)
		admin.GET("/export", reportHandler.ExportWorkers)
		admin.GET("/export_reports", reportHandler.ExportReports)
		admin.POST("/email_report", reportHandler.EmailReport)
	}
}
