package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// roleSelectHandler is the entry page: the caller picks a role and is sent
// to the matching login.
func roleSelectHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"page":  "role_select",
		"roles": gin.H{"asha_worker": "/login", "admin": "/admin_login"},
	})
}

// emergencyHandler serves the static emergency contact list. Public, like
// the page it replaces.
func emergencyHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"contacts": []gin.H{
			{"name": "Ambulance Service", "number": "108"},
			{"name": "ASHA Helpline", "number": "1800-180-1104"},
			{"name": "Nearest PHC", "number": "+91 9876543210"},
			{"name": "Women Helpline", "number": "1091"},
			{"name": "Child Helpline", "number": "1098"},
		},
	})
}

// SetupRootRoutes installs the public entry pages.
func SetupRootRoutes(router *gin.Engine) {
	router.GET("/", roleSelectHandler)
	router.GET("/role", roleSelectHandler)
	router.GET("/emergency", emergencyHandler)
}
