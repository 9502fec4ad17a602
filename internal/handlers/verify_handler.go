package handlers

import (
	"encoding/base64"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/ardhichain/registry/internal/apierrors"
	"github.com/ardhichain/registry/internal/middleware"
	"github.com/ardhichain/registry/internal/oracle"
)

// VerifyHandler handles verification oracle HTTP requests.
type VerifyHandler struct {
	verifier oracle.Verifier
}

// NewVerifyHandler creates a new VerifyHandler instance.
func NewVerifyHandler(verifier oracle.Verifier) *VerifyHandler {
	return &VerifyHandler{
		verifier: verifier,
	}
}

// DisputeRequest represents the body for the dispute check endpoint.
type DisputeRequest struct {
	LRNumber    string `json:"lr_number" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// DocumentRequest represents the body for the document check endpoint.
// Image carries the scanned title deed as base64.
type DocumentRequest struct {
	Image    string `json:"image" binding:"required,base64"`
	MimeType string `json:"mime_type"`
}

// Dispute handles POST /api/v1/verify/dispute.
// Oracle failures never surface here: the verifier substitutes its neutral
// verdict, so this endpoint only fails on invalid input.
func (h *VerifyHandler) Dispute(c *gin.Context) {
	log := middleware.GetLogger(c)

	var req DisputeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			apierrors.ValidationError(c, validationErrors)
			return
		}
		apierrors.BadRequest(c, "Invalid request body", nil)
		return
	}

	if log != nil {
		log.Info("Processing dispute check", map[string]interface{}{
			"lr_number": req.LRNumber,
		})
	}

	result, _ := h.verifier.CheckDispute(c.Request.Context(), req.LRNumber, req.Description)

	c.JSON(http.StatusOK, result)
}

// Document handles POST /api/v1/verify/document.
// Unlike the dispute check, an oracle failure here is surfaced as 502 so an
// unverifiable document is refused rather than defaulted to authentic.
func (h *VerifyHandler) Document(c *gin.Context) {
	log := middleware.GetLogger(c)

	var req DocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			apierrors.ValidationError(c, validationErrors)
			return
		}
		apierrors.BadRequest(c, "Invalid request body", nil)
		return
	}

	image, err := base64.StdEncoding.DecodeString(req.Image)
	if err != nil {
		apierrors.BadRequest(c, "Image must be valid base64-encoded data", nil)
		return
	}

	if log != nil {
		log.Info("Processing document check", map[string]interface{}{
			"image_bytes": len(image),
		})
	}

	result, err := h.verifier.CheckDocument(c.Request.Context(), image, req.MimeType)
	if err != nil {
		apierrors.OracleUnavailable(c, "Document verification is temporarily unavailable", err)
		return
	}

	c.JSON(http.StatusOK, result)
}
