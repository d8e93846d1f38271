package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"shop-api/models"
	"shop-api/services"
)

type memProductStore struct {
	products map[primitive.ObjectID]*models.Product
}

func (s *memProductStore) Create(ctx context.Context, p *models.Product) error {
	p.ID = primitive.NewObjectID()
	s.products[p.ID] = p
	return nil
}

func (s *memProductStore) GetAll(ctx context.Context) ([]models.Product, error) {
	out := []models.Product{}
	for _, p := range s.products {
		out = append(out, *p)
	}
	return out, nil
}

func (s *memProductStore) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	if p, ok := s.products[id]; ok {
		return p, nil
	}
	return nil, nil
}

func (s *memProductStore) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Product, error) {
	out := []models.Product{}
	for _, id := range ids {
		if p, ok := s.products[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (s *memProductStore) UpdateFields(ctx context.Context, id primitive.ObjectID, req models.UpdateProductRequest) (*models.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return nil, nil
	}
	return p, nil
}

func (s *memProductStore) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	if _, ok := s.products[id]; !ok {
		return false, nil
	}
	delete(s.products, id)
	return true, nil
}

type memCartStore struct {
	carts map[primitive.ObjectID]*models.Cart
}

func (s *memCartStore) FindOrCreate(ctx context.Context, userID primitive.ObjectID) (*models.Cart, error) {
	if c, ok := s.carts[userID]; ok {
		return c, nil
	}
	cart := &models.Cart{ID: primitive.NewObjectID(), UserID: userID, Items: []models.CartItem{}}
	s.carts[userID] = cart
	return cart, nil
}

func (s *memCartStore) FindByUser(ctx context.Context, userID primitive.ObjectID) (*models.Cart, error) {
	if c, ok := s.carts[userID]; ok {
		return c, nil
	}
	return nil, nil
}

func (s *memCartStore) SaveItems(ctx context.Context, userID primitive.ObjectID, items []models.CartItem) error {
	if c, ok := s.carts[userID]; ok {
		c.Items = items
	}
	return nil
}

func (s *memCartStore) DeleteByUser(ctx context.Context, userID primitive.ObjectID) error {
	delete(s.carts, userID)
	return nil
}

func setupCartRouter(t *testing.T) (*gin.Engine, *memProductStore, primitive.ObjectID) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	products := &memProductStore{products: map[primitive.ObjectID]*models.Product{}}
	carts := &memCartStore{carts: map[primitive.ObjectID]*models.Cart{}}
	ctrl := NewCartController(services.NewCartService(carts, products))

	userID := primitive.NewObjectID()
	router := gin.New()
	// stand-in for the auth middleware
	router.Use(func(c *gin.Context) { c.Set("user_id", userID.Hex()) })

	router.GET("/api/cart", ctrl.GetCart)
	router.POST("/api/cart/add", ctrl.AddToCart)
	router.PUT("/api/cart/:productId", ctrl.UpdateCartItem)
	router.DELETE("/api/cart/:productId", ctrl.RemoveFromCart)
	router.DELETE("/api/cart", ctrl.ClearCart)

	return router, products, userID
}

func doJSON(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCartEndpoints(t *testing.T) {
	router, products, _ := setupCartRouter(t)

	p := &models.Product{Name: "Notebook", Price: 3.5, Stock: 50}
	products.Create(context.Background(), p)

	t.Run("add to cart", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/api/cart/add",
			gin.H{"product_id": p.ID.Hex(), "quantity": 2})
		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d (%s)", w.Code, w.Body.String())
		}
	})

	t.Run("add unknown product is 404", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/api/cart/add",
			gin.H{"product_id": primitive.NewObjectID().Hex(), "quantity": 1})
		if w.Code != http.StatusNotFound {
			t.Errorf("Expected 404, got %d", w.Code)
		}
	})

	t.Run("zero quantity is 400", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/api/cart/add",
			gin.H{"product_id": p.ID.Hex(), "quantity": 0})
		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d", w.Code)
		}
	})

	t.Run("set quantity", func(t *testing.T) {
		w := doJSON(router, http.MethodPut, fmt.Sprintf("/api/cart/%s", p.ID.Hex()),
			gin.H{"quantity": 7})
		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d (%s)", w.Code, w.Body.String())
		}
	})

	t.Run("set quantity for item not in cart is 404", func(t *testing.T) {
		missing := &models.Product{Name: "Stapler", Price: 9, Stock: 5}
		products.Create(context.Background(), missing)

		w := doJSON(router, http.MethodPut, fmt.Sprintf("/api/cart/%s", missing.ID.Hex()),
			gin.H{"quantity": 1})
		if w.Code != http.StatusNotFound {
			t.Errorf("Expected 404, got %d", w.Code)
		}
	})

	t.Run("get cart resolves products", func(t *testing.T) {
		w := doJSON(router, http.MethodGet, "/api/cart", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d", w.Code)
		}

		var resp struct {
			Data models.CartView `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("Failed to decode body: %v", err)
		}
		if len(resp.Data.Items) != 1 {
			t.Fatalf("Expected 1 item, got %d", len(resp.Data.Items))
		}
		if resp.Data.Items[0].Product == nil || resp.Data.Items[0].Product.Name != "Notebook" {
			t.Errorf("Expected populated product, got %+v", resp.Data.Items[0].Product)
		}
		if resp.Data.Items[0].Quantity != 7 {
			t.Errorf("Expected quantity 7, got %d", resp.Data.Items[0].Quantity)
		}
	})

	t.Run("remove item", func(t *testing.T) {
		w := doJSON(router, http.MethodDelete, fmt.Sprintf("/api/cart/%s", p.ID.Hex()), nil)
		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d", w.Code)
		}

		w = doJSON(router, http.MethodDelete, fmt.Sprintf("/api/cart/%s", p.ID.Hex()), nil)
		if w.Code != http.StatusNotFound {
			t.Errorf("Expected 404 removing again, got %d", w.Code)
		}
	})

	t.Run("clear cart", func(t *testing.T) {
		w := doJSON(router, http.MethodDelete, "/api/cart", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d", w.Code)
		}

		w = doJSON(router, http.MethodGet, "/api/cart", nil)
		var resp struct {
			Data models.CartView `json:"data"`
		}
		json.Unmarshal(w.Body.Bytes(), &resp)
		if len(resp.Data.Items) != 0 {
			t.Errorf("Expected empty cart after clear, got %d items", len(resp.Data.Items))
		}
	})
}
