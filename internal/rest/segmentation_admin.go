package rest

import (
	"net/http"

	"stayInsights/business/segmentation"
	"stayInsights/domain"

	"github.com/labstack/echo/v4"
)

type SegmentationAdminHandler struct {
	cfgRepo segmentation.ConfigRepository
}

func NewSegmentationAdminHandler(cfgRepo segmentation.ConfigRepository) *SegmentationAdminHandler {
	return &SegmentationAdminHandler{
		cfgRepo: cfgRepo,
	}
}

// GET /api/v1/admin/segmentation/config?tenant_id=acme
func (h *SegmentationAdminHandler) GetConfig(c echo.Context) error {
	ctx := c.Request().Context()

	tenantID := c.QueryParam("tenant_id")
	if tenantID == "" {
		tenantID = tenantFromContext(c)
	}
	if tenantID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "tenant_id is required",
		})
	}

	cfg, ok, err := h.cfgRepo.GetConfig(ctx, tenantID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": err.Error(),
		})
	}
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "config not found",
		})
	}

	return c.JSON(http.StatusOK, cfg)
}

// PUT /api/v1/admin/segmentation/config
// body: SegmentationConfig JSON
func (h *SegmentationAdminHandler) UpsertConfig(c echo.Context) error {
	ctx := c.Request().Context()

	var body domain.SegmentationConfig
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "invalid body: " + err.Error(),
		})
	}
	if body.TenantID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "tenant_id is required",
		})
	}

	if err := h.cfgRepo.UpsertConfig(ctx, body); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status": "ok",
	})
}
