package router

import (
	"stayInsights/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetSegmentationRoutes(api *echo.Group, handler *rest.SegmentationHandler, authRequired echo.MiddlewareFunc) {
	seg := api.Group("/segmentation", authRequired)

	seg.POST("", handler.Segment)
	seg.POST("/rfm", handler.RFM)
	seg.POST("/predict", handler.Predict)
	seg.GET("/features", handler.Features)
}

func SetCustomerRoutes(api *echo.Group, handler *rest.CustomerHandler, authRequired echo.MiddlewareFunc) {
	customers := api.Group("/customers", authRequired)

	customers.GET("", handler.GetAllCustomers)
	customers.GET("/:id", handler.GetCustomerByID)
}

func SetSegmentationAdminRoutes(api *echo.Group, handler *rest.SegmentationAdminHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	admin := api.Group("/admin/segmentation", authRequired, adminOnly)

	admin.GET("/config", handler.GetConfig)
	admin.PUT("/config", handler.UpsertConfig)
}
