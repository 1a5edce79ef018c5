package rest

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"stayInsights/business/segmentation"
	"stayInsights/domain"
	"stayInsights/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// ResponseError is the error envelope shared by all handlers.
type ResponseError struct {
	Message string `json:"message"`
}

type (
	SegmentationHandler struct {
		validate            *validator.Validate
		segmentationService SegmentationService
		timeout             time.Duration
	}

	SegmentationService interface {
		Segment(ctx context.Context, req segmentation.SegmentationRequest) (*domain.ClusteringResult, error)
		PerformRFMAnalysis(ctx context.Context, tenantID string, customers []domain.CustomerRecord) ([]domain.RFMAnalysis, error)
		PredictSegment(customer domain.CustomerRecord, segments []domain.CustomerSegment) (domain.SegmentPrediction, error)
	}

	SegmentRequest struct {
		CustomerData   []domain.CustomerRecord `json:"customer_data"`
		CustomerIDs    []string                `json:"customer_ids"`
		Algorithm      string                  `json:"algorithm" validate:"omitempty,oneof=kmeans dbscan hierarchical auto"`
		NClusters      int                     `json:"n_clusters" validate:"omitempty,gt=0"`
		Features       []string                `json:"features"`
		MinClusterSize int                     `json:"min_cluster_size" validate:"omitempty,gt=0"`
		Eps            float64                 `json:"eps" validate:"omitempty,gt=0"`
		Seed           int64                   `json:"seed"`
	}

	RFMRequest struct {
		CustomerData []domain.CustomerRecord `json:"customer_data"`
	}

	PredictRequest struct {
		Customer domain.CustomerRecord    `json:"customer" validate:"required"`
		Segments []domain.CustomerSegment `json:"segments" validate:"required,min=1"`
	}
)

func NewSegmentationHandler(svc SegmentationService) *SegmentationHandler {
	return &SegmentationHandler{
		validate:            validator.New(),
		segmentationService: svc,
		timeout:             30 * time.Second,
	}
}

func tenantFromContext(c echo.Context) string {
	if v, ok := c.Get("tenant_id").(string); ok {
		return v
	}
	return ""
}

// POST /api/v1/segmentation
func (h *SegmentationHandler) Segment(c echo.Context) error {
	var req SegmentRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind segmentation request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	result, err := h.segmentationService.Segment(ctx, segmentation.SegmentationRequest{
		TenantID:       tenantFromContext(c),
		CustomerData:   req.CustomerData,
		CustomerIDs:    req.CustomerIDs,
		Algorithm:      req.Algorithm,
		NClusters:      req.NClusters,
		Features:       req.Features,
		MinClusterSize: req.MinClusterSize,
		Eps:            req.Eps,
		Seed:           req.Seed,
	})
	if err != nil {
		logger.Error("Segmentation run failed", err)
		if errors.Is(err, segmentation.ErrInsufficientData) ||
			strings.Contains(err.Error(), "unknown") {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(result))
}

// GET /api/v1/segmentation/features
func (h *SegmentationHandler) Features(c echo.Context) error {
	return c.JSON(http.StatusOK, fres.Response.StatusOK(segmentation.FeatureNames()))
}

// POST /api/v1/segmentation/rfm
func (h *SegmentationHandler) RFM(c echo.Context) error {
	var req RFMRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind rfm request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	analyses, err := h.segmentationService.PerformRFMAnalysis(ctx, tenantFromContext(c), req.CustomerData)
	if err != nil {
		logger.Error("RFM analysis failed", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(analyses))
}

// POST /api/v1/segmentation/predict
func (h *SegmentationHandler) Predict(c echo.Context) error {
	var req PredictRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind predict request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	prediction, err := h.segmentationService.PredictSegment(req.Customer, req.Segments)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(prediction))
}
