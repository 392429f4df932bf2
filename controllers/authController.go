package controllers

import (
	"EAsha/handlers"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Handler *handlers.AuthHandler
}

func NewAuthController(authHandler *handlers.AuthHandler) *AuthController {
	return &AuthController{Handler: authHandler}
}

// RegisterRoutes installs the public login and logout routes.
func (ac *AuthController) RegisterRoutes(router *gin.Engine) {
	router.GET("/login", ac.Handler.LoginPage)
	router.POST("/login", ac.Handler.Login)
	router.GET("/admin_login", ac.Handler.AdminLoginPage)
	router.POST("/admin_login", ac.Handler.AdminLogin)
	router.GET("/logout", ac.Handler.Logout)
}
