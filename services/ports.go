package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"shop-api/models"
)

// Store interfaces consumed by the services, implemented by the Mongo
// repositories. Lookups return (nil, nil) when the document is absent.

type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}

type ProductStore interface {
	Create(ctx context.Context, product *models.Product) error
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Product, error)
	UpdateFields(ctx context.Context, id primitive.ObjectID, req models.UpdateProductRequest) (*models.Product, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
}

type CartStore interface {
	FindOrCreate(ctx context.Context, userID primitive.ObjectID) (*models.Cart, error)
	FindByUser(ctx context.Context, userID primitive.ObjectID) (*models.Cart, error)
	SaveItems(ctx context.Context, userID primitive.ObjectID, items []models.CartItem) error
	DeleteByUser(ctx context.Context, userID primitive.ObjectID) error
}
