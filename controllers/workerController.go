package controllers

import (
	"EAsha/handlers"
	"EAsha/middlewares"
	"EAsha/utils"

	"github.com/gin-gonic/gin"
)

// SetupWorkerRoutes installs the ASHA worker app: the visit workflow, the
// read-only report views, the profile page, and the chat assistant. Every
// route requires a Worker session; without one the middleware redirects to
// the login page.
func SetupWorkerRoutes(router *gin.Engine, visitHandler *handlers.VisitHandler, reportHandler *handlers.ReportHandler, authHandler *handlers.AuthHandler, chatHandler *handlers.ChatHandler) {
	worker := router.Group("/").Use(middlewares.SessionAuth(utils.RoleWorker, "/login"))
	{
		worker.GET("/page1", visitHandler.IntakePage)
		worker.POST("/page1", visitHandler.SubmitIntake)
		worker.GET("/select", visitHandler.SelectPage)
		worker.POST("/select", visitHandler.SubmitDisease)

		worker.GET("/history", reportHandler.History)
		worker.GET("/dashboard", reportHandler.Dashboard)
		worker.POST("/dashboard", reportHandler.Dashboard)

		worker.GET("/profile", authHandler.Profile)

		worker.GET("/chat", chatHandler.ChatPage)
		worker.POST("/ask", chatHandler.Ask)
	}
}
