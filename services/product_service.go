package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"shop-api/models"
)

const productListCacheKey = "products_list"

type ProductService struct {
	productStore ProductStore
	cache        *redis.Client
}

// NewProductService accepts a nil cache client; caching is skipped then.
func NewProductService(productStore ProductStore, cache *redis.Client) *ProductService {
	return &ProductService{
		productStore: productStore,
		cache:        cache,
	}
}

func (s *ProductService) GetAllProducts(ctx context.Context) ([]models.Product, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, productListCacheKey).Result()
		if err == nil {
			products := []models.Product{}
			if err := json.Unmarshal([]byte(cached), &products); err == nil {
				return products, nil
			}
		}
	}

	products, err := s.productStore.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if data, err := json.Marshal(products); err == nil {
			s.cache.Set(ctx, productListCacheKey, string(data), 5*time.Minute)
		}
	}
	return products, nil
}

func (s *ProductService) GetProductByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	product, err := s.productStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

func (s *ProductService) CreateProduct(ctx context.Context, req models.CreateProductRequest) (*models.Product, error) {
	product := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
	}

	if err := s.productStore.Create(ctx, product); err != nil {
		return nil, err
	}

	s.invalidateListCache(ctx)
	return product, nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, id primitive.ObjectID, req models.UpdateProductRequest) (*models.Product, error) {
	product, err := s.productStore.UpdateFields(ctx, id, req)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	s.invalidateListCache(ctx)
	return product, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id primitive.ObjectID) error {
	deleted, err := s.productStore.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrProductNotFound
	}

	s.invalidateListCache(ctx)
	return nil
}

func (s *ProductService) invalidateListCache(ctx context.Context) {
	if s.cache != nil {
		s.cache.Del(ctx, productListCacheKey)
	}
}
