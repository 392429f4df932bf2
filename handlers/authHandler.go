package handlers

import (
	"EAsha/middlewares"
	"EAsha/services"
	"EAsha/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginPage describes the worker login form.
func (h *AuthHandler) LoginPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"page": "login", "fields": []string{"username", "password"}})
}

// Login authenticates an ASHA worker against the account table. Success
// establishes the session cookie and redirects to the intake step.
func (h *AuthHandler) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	if err := utils.ValidateLoginForm(username, password); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	worker, err := h.authService.AuthenticateWorker(c.Request.Context(), username, password)
	if err != nil {
		middlewares.HttpError(c, "Failed to verify credentials", http.StatusInternalServerError, err)
		return
	}
	if worker == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password."})
		return
	}

	token, err := utils.GenerateSessionToken(worker.Username, utils.RoleWorker)
	if err != nil {
		middlewares.HttpError(c, "Failed to establish session", http.StatusInternalServerError, err)
		return
	}
	utils.SetSessionCookie(c, token)
	c.Redirect(http.StatusFound, "/page1")
}

// AdminLoginPage describes the admin login form.
func (h *AuthHandler) AdminLoginPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"page": "admin_login", "fields": []string{"username", "password"}})
}

// AdminLogin authenticates an administrator against the admin table.
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	if err := utils.ValidateLoginForm(username, password); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	admin, err := h.authService.AuthenticateAdmin(c.Request.Context(), username, password)
	if err != nil {
		middlewares.HttpError(c, "Failed to verify credentials", http.StatusInternalServerError, err)
		return
	}
	if admin == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		return
	}

	token, err := utils.GenerateSessionToken(admin.Username, utils.RoleAdmin)
	if err != nil {
		middlewares.HttpError(c, "Failed to establish session", http.StatusInternalServerError, err)
		return
	}
	utils.SetSessionCookie(c, token)
	c.Redirect(http.StatusFound, "/home_admin")
}

// Logout discards the session and returns to the role-select page.
func (h *AuthHandler) Logout(c *gin.Context) {
	utils.ClearSessionCookie(c)
	c.Redirect(http.StatusFound, "/")
}

// Profile returns the logged-in worker's public fields.
func (h *AuthHandler) Profile(c *gin.Context) {
	username, err := middlewares.ExtractUsernameFromContext(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not logged in"})
		return
	}

	worker, err := h.authService.WorkerProfile(c.Request.Context(), username)
	if err != nil {
		middlewares.HttpError(c, "Failed to load profile", http.StatusInternalServerError, err)
		return
	}
	if worker == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": worker})
}

// AdminProfile returns the logged-in admin's public fields.
func (h *AuthHandler) AdminProfile(c *gin.Context) {
	username, err := middlewares.ExtractUsernameFromContext(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not logged in"})
		return
	}

	admin, err := h.authService.AdminProfile(c.Request.Context(), username)
	if err != nil {
		middlewares.HttpError(c, "Failed to load profile", http.StatusInternalServerError, err)
		return
	}
	if admin == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Admin not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"admin": admin})
}
