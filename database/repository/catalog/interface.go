// File: database/repository/catalog/interface.go
package catalogRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"glowbook/database"
	"glowbook/models"
)

// CatalogRepository exposes the shop/service catalog.
type CatalogRepository interface {
	GetServiceByID(ctx context.Context, serviceID string) (*models.Service, error)
	ListServices(ctx context.Context) ([]models.Service, error)
	ListServicesByShop(ctx context.Context, shopID string) ([]models.Service, error)
	GetShopByID(ctx context.Context, shopID string) (*models.Shop, error)
	ListShops(ctx context.Context) ([]models.Shop, error)
}

type mongoCatalogRepo struct {
	services *mongo.Collection
	shops    *mongo.Collection
}

// NewMongoCatalogRepo constructs a new MongoDB CatalogRepository.
func NewMongoCatalogRepo() CatalogRepository {
	db := database.DB()
	return &mongoCatalogRepo{
		services: db.Collection("services"),
		shops:    db.Collection("shops"),
	}
}
