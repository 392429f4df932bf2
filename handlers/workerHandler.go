package handlers

import (
	"EAsha/middlewares"
	"EAsha/models"
	"EAsha/repositories"
	"EAsha/services"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
)

// WorkerHandler is the admin-side management of ASHA worker accounts,
// including the optional profile photo upload.
type WorkerHandler struct {
	workerService *services.WorkerService
	uploadDir     string
}

func NewWorkerHandler(workerService *services.WorkerService, uploadDir string) *WorkerHandler {
	return &WorkerHandler{workerService: workerService, uploadDir: uploadDir}
}

// ManageWorkers lists worker accounts, optionally filtered by a free-text
// query over username, name, mobile, or location.
func (h *WorkerHandler) ManageWorkers(c *gin.Context) {
	workers, err := h.workerService.Search(c.Request.Context(), c.Query("query"))
	if err != nil {
		middlewares.HttpError(c, "Failed to list workers", http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": workers})
}

// AddWorkerPage describes the add-worker form.
func (h *WorkerHandler) AddWorkerPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"page":   "add_asha",
		"fields": []string{"username", "password", "name", "mobile", "location", "photo"},
	})
}

// AddWorker creates a new worker account from the submitted form, saving the
// optional photo under the upload directory.
func (h *WorkerHandler) AddWorker(c *gin.Context) {
	worker := models.Worker{
		Username: c.PostForm("username"),
		Password: c.PostForm("password"),
		Name:     c.PostForm("name"),
		Mobile:   c.PostForm("mobile"),
		Location: c.PostForm("location"),
		Photo:    models.DefaultPhoto,
	}

	if file, err := c.FormFile("photo"); err == nil && file.Filename != "" {
		worker.Photo = fmt.Sprintf("%s_%s", worker.Username, filepath.Base(file.Filename))
		if err := c.SaveUploadedFile(file, filepath.Join(h.uploadDir, worker.Photo)); err != nil {
			middlewares.HttpError(c, "Failed to save photo", http.StatusInternalServerError, err)
			return
		}
	}

	if err := h.workerService.ValidateAndCreate(c.Request.Context(), &worker); err != nil {
		if errors.Is(err, repositories.ErrUsernameTaken) {
			c.JSON(http.StatusConflict, gin.H{
				"error": fmt.Sprintf("⚠️ Username '%s' is already taken. Please choose another.", worker.Username),
			})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.Redirect(http.StatusFound, "/manage_asha")
}

// EditWorkerPage returns the current account fields for the edit form.
func (h *WorkerHandler) EditWorkerPage(c *gin.Context) {
	worker, err := h.workerService.GetByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		middlewares.HttpError(c, "Failed to load worker", http.StatusInternalServerError, err)
		return
	}
	if worker == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": worker})
}

// EditWorker rewrites the account row. Every field except the username can
// change; a replacement photo deletes the old file unless it is the default.
func (h *WorkerHandler) EditWorker(c *gin.Context) {
	username := c.Param("username")
	existing, err := h.workerService.GetByUsername(c.Request.Context(), username)
	if err != nil {
		middlewares.HttpError(c, "Failed to load worker", http.StatusInternalServerError, err)
		return
	}
	if existing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	worker := models.Worker{
		Username: username,
		Password: c.PostForm("password"),
		Name:     c.PostForm("name"),
		Mobile:   c.PostForm("mobile"),
		Location: c.PostForm("location"),
		Photo:    existing.Photo,
	}

	if file, err := c.FormFile("photo"); err == nil && file.Filename != "" {
		if existing.Photo != models.DefaultPhoto {
			oldPath := filepath.Join(h.uploadDir, existing.Photo)
			if err := os.Remove(oldPath); err != nil && !os.IsNotExist(err) {
				middlewares.HttpError(c, "Failed to remove old photo", http.StatusInternalServerError, err)
				return
			}
		}
		worker.Photo = fmt.Sprintf("%s_%s", username, filepath.Base(file.Filename))
		if err := c.SaveUploadedFile(file, filepath.Join(h.uploadDir, worker.Photo)); err != nil {
			middlewares.HttpError(c, "Failed to save photo", http.StatusInternalServerError, err)
			return
		}
	}

	if err := h.workerService.Update(c.Request.Context(), &worker); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.Redirect(http.StatusFound, "/manage_asha")
}

// DeleteWorker removes exactly the named account row.
func (h *WorkerHandler) DeleteWorker(c *gin.Context) {
	if err := h.workerService.Delete(c.Request.Context(), c.Param("username")); err != nil {
		middlewares.HttpError(c, "Failed to delete worker", http.StatusInternalServerError, err)
		return
	}
	c.Redirect(http.StatusFound, "/manage_asha")
}
