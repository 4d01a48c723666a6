// File: handlers/catalog.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	catalogRepo "glowbook/database/repository/catalog"
	"glowbook/utils"
)

// CatalogHandler serves the shop/service catalog for browsing.
type CatalogHandler struct {
	Repo catalogRepo.CatalogRepository
}

// NewCatalogHandler constructs a CatalogHandler.
func NewCatalogHandler(repo catalogRepo.CatalogRepository) *CatalogHandler {
	return &CatalogHandler{Repo: repo}
}

// ListServicesHandler handles GET /api/services.
func (h *CatalogHandler) ListServicesHandler(c *gin.Context) {
	logger := utils.GetLogger()
	if shopID := c.Query("shopId"); shopID != "" {
		services, err := h.Repo.ListServicesByShop(c.Request.Context(), shopID)
		if err != nil {
			logger.Error("Failed to list services for shop", zap.String("shopID", shopID), zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Failed to load services", "")
			return
		}
		c.JSON(http.StatusOK, gin.H{"services": services})
		return
	}

	services, err := h.Repo.ListServices(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list services", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load services", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

// GetServiceHandler handles GET /api/services/:id.
func (h *CatalogHandler) GetServiceHandler(c *gin.Context) {
	id := c.Param("id")
	svc, err := h.Repo.GetServiceByID(c.Request.Context(), id)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Service not found", id)
		return
	}
	c.JSON(http.StatusOK, svc)
}

// ListShopsHandler handles GET /api/shops.
func (h *CatalogHandler) ListShopsHandler(c *gin.Context) {
	logger := utils.GetLogger()
	shops, err := h.Repo.ListShops(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list shops", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load shops", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"shops": shops})
}

// GetShopHandler handles GET /api/shops/:id.
func (h *CatalogHandler) GetShopHandler(c *gin.Context) {
	id := c.Param("id")
	shop, err := h.Repo.GetShopByID(c.Request.Context(), id)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Shop not found", id)
		return
	}
	c.JSON(http.StatusOK, shop)
}
