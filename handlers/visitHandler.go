package handlers

import (
	"EAsha/middlewares"
	"EAsha/models"
	"EAsha/services"
	"EAsha/utils"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// VisitHandler drives the two-step patient workflow: intake, then disease
// selection. The in-progress draft lives in the session token, so each step
// re-mints the cookie.
type VisitHandler struct {
	visitService *services.VisitService
}

func NewVisitHandler(visitService *services.VisitService) *VisitHandler {
	return &VisitHandler{visitService: visitService}
}

// IntakePage shows the intake step, echoing any draft already in progress.
func (h *VisitHandler) IntakePage(c *gin.Context) {
	claims, err := middlewares.ExtractClaimsFromContext(c.Request.Context())
	if err != nil {
		c.Redirect(http.StatusFound, "/login")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"page":   "page1",
		"name":   claims.PatientName,
		"age":    claims.PatientAge,
		"mobile": claims.PatientMobile,
	})
}

// SubmitIntake stores the patient draft in the session and advances to
// disease selection. Presence is the only validation; age stays free text.
func (h *VisitHandler) SubmitIntake(c *gin.Context) {
	claims, err := middlewares.ExtractClaimsFromContext(c.Request.Context())
	if err != nil {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	name := c.PostForm("name")
	age := c.PostForm("age")
	mobile := c.PostForm("mobile")
	if err := h.visitService.ValidateIntake(name, age, mobile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	claims.PatientName = name
	claims.PatientAge = age
	claims.PatientMobile = mobile
	token, err := utils.EncodeSessionClaims(claims)
	if err != nil {
		middlewares.HttpError(c, "Failed to update session", http.StatusInternalServerError, err)
		return
	}
	utils.SetSessionCookie(c, token)
	c.Redirect(http.StatusFound, "/select")
}

// SelectPage shows the disease-selection step. Reaching it without a
// completed draft bounces back to intake.
func (h *VisitHandler) SelectPage(c *gin.Context) {
	claims, err := middlewares.ExtractClaimsFromContext(c.Request.Context())
	if err != nil {
		c.Redirect(http.StatusFound, "/login")
		return
	}
	if !claims.HasDraft() {
		c.Redirect(http.StatusFound, "/page1")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"page":     "select",
		"name":     claims.PatientName,
		"age":      claims.PatientAge,
		"mobile":   claims.PatientMobile,
		"diseases": models.DiseaseNames(),
	})
}

// SubmitDisease records the visit and re-renders the selection step with the
// resolved medicine. The workflow stays here; a fresh patient requires
// navigating back to intake explicitly.
func (h *VisitHandler) SubmitDisease(c *gin.Context) {
	claims, err := middlewares.ExtractClaimsFromContext(c.Request.Context())
	if err != nil {
		c.Redirect(http.StatusFound, "/login")
		return
	}
	if !claims.HasDraft() {
		c.Redirect(http.StatusFound, "/page1")
		return
	}

	disease := c.PostForm("disease")
	medicine, err := h.visitService.RecordVisit(c.Request.Context(), claims, disease)
	if err != nil {
		if errors.Is(err, services.ErrNoDisease) {
			c.JSON(http.StatusOK, gin.H{
				"page":   "select",
				"name":   claims.PatientName,
				"age":    claims.PatientAge,
				"mobile": claims.PatientMobile,
				"error":  err.Error(),
			})
			return
		}
		middlewares.HttpError(c, "Failed to record visit", http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"page":     "select",
		"name":     claims.PatientName,
		"age":      claims.PatientAge,
		"mobile":   claims.PatientMobile,
		"medicine": medicine,
	})
}
