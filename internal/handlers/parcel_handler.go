package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ardhichain/registry/internal/apierrors"
	"github.com/ardhichain/registry/internal/middleware"
	"github.com/ardhichain/registry/internal/models"
	"github.com/ardhichain/registry/internal/registry"
)

// ParcelHandler handles marketplace parcel and transfer HTTP requests.
type ParcelHandler struct {
	service registry.Service
}

// NewParcelHandler creates a new ParcelHandler instance.
func NewParcelHandler(service registry.Service) *ParcelHandler {
	return &ParcelHandler{
		service: service,
	}
}

// ListResponse represents the response for the parcel list endpoint.
type ListResponse struct {
	Parcels []models.Parcel `json:"parcels"`
	Count   int             `json:"count"`
}

// ParcelResponse represents the response for the single-parcel endpoint.
type ParcelResponse struct {
	Parcel *models.Parcel `json:"parcel"`
}

// PortfolioResponse represents the response for the portfolio endpoint.
type PortfolioResponse struct {
	Parcels        []models.Parcel `json:"parcels"`
	Count          int             `json:"count"`
	PortfolioValue int64           `json:"portfolioValue"`
}

// ProfileResponse represents the response for the profile endpoint.
type ProfileResponse struct {
	User models.UserProfile `json:"user"`
}

// TransferResponse represents the response for a successful transfer.
type TransferResponse struct {
	Parcel       models.Parcel            `json:"parcel"`
	Buyer        models.UserProfile       `json:"buyer"`
	Record       models.TransactionRecord `json:"record"`
	Notification string                   `json:"notification"`
}

// List handles GET /api/v1/parcels.
func (h *ParcelHandler) List(c *gin.Context) {
	parcels := h.service.ListParcels(c.Request.Context())

	c.JSON(http.StatusOK, ListResponse{
		Parcels: parcels,
		Count:   len(parcels),
	})
}

// Get handles GET /api/v1/parcels/:id.
func (h *ParcelHandler) Get(c *gin.Context) {
	parcel, err := h.service.GetParcel(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, registry.ErrParcelNotFound) {
			apierrors.NotFound(c, "No parcel found with this identifier")
			return
		}
		apierrors.InternalServerError(c, "Failed to load parcel", err)
		return
	}

	c.JSON(http.StatusOK, ParcelResponse{Parcel: parcel})
}

// Portfolio handles GET /api/v1/portfolio.
// It returns the parcels owned by the current user and their combined value.
func (h *ParcelHandler) Portfolio(c *gin.Context) {
	parcels, total := h.service.Portfolio(c.Request.Context())

	c.JSON(http.StatusOK, PortfolioResponse{
		Parcels:        parcels,
		Count:          len(parcels),
		PortfolioValue: total,
	})
}

// Profile handles GET /api/v1/profile.
func (h *ParcelHandler) Profile(c *gin.Context) {
	c.JSON(http.StatusOK, ProfileResponse{
		User: h.service.Profile(c.Request.Context()),
	})
}

// Transfer handles POST /api/v1/parcels/:id/transfer.
// It executes the ownership transfer to the current user and maps the service
// error taxonomy onto HTTP statuses.
func (h *ParcelHandler) Transfer(c *gin.Context) {
	log := middleware.GetLogger(c)
	parcelID := c.Param("id")

	if log != nil {
		log.Info("Processing transfer request", map[string]interface{}{
			"parcel_id": parcelID,
		})
	}

	result, err := h.service.Transfer(c.Request.Context(), parcelID)
	if err != nil {
		switch {
		case errors.Is(err, registry.ErrParcelNotFound):
			apierrors.NotFound(c, "No parcel found with this identifier")
		case errors.Is(err, registry.ErrInsufficientFunds):
			apierrors.InsufficientFunds(c, "Insufficient funds in blockchain wallet", nil)
		case errors.Is(err, registry.ErrParcelNotAvailable):
			apierrors.Conflict(c, "This parcel is not available for purchase")
		default:
			apierrors.InternalServerError(c, "Failed to execute transfer", err)
		}
		return
	}

	c.JSON(http.StatusOK, TransferResponse{
		Parcel: result.Parcel,
		Buyer:  result.Buyer,
		Record: result.Record,
		Notification: fmt.Sprintf(
			"Successfully purchased land! Title Deed LR NO: %s has been transferred to your wallet.",
			result.Parcel.LRNumber),
	})
}
