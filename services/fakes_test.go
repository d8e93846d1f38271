package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"shop-api/models"
)

type fakeUserStore struct {
	users map[string]*models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]*models.User{}}
}

func (s *fakeUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if u, ok := s.users[email]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, nil
}

func (s *fakeUserStore) Create(ctx context.Context, user *models.User) error {
	user.ID = primitive.NewObjectID()
	copied := *user
	s.users[user.Email] = &copied
	return nil
}

type fakeProductStore struct {
	products map[primitive.ObjectID]*models.Product
}

func newFakeProductStore() *fakeProductStore {
	return &fakeProductStore{products: map[primitive.ObjectID]*models.Product{}}
}

func (s *fakeProductStore) add(name string, price float64, stock int) primitive.ObjectID {
	id := primitive.NewObjectID()
	s.products[id] = &models.Product{ID: id, Name: name, Price: price, Stock: stock}
	return id
}

func (s *fakeProductStore) Create(ctx context.Context, product *models.Product) error {
	product.ID = primitive.NewObjectID()
	copied := *product
	s.products[product.ID] = &copied
	return nil
}

func (s *fakeProductStore) GetAll(ctx context.Context) ([]models.Product, error) {
	out := []models.Product{}
	for _, p := range s.products {
		out = append(out, *p)
	}
	return out, nil
}

func (s *fakeProductStore) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	if p, ok := s.products[id]; ok {
		copied := *p
		return &copied, nil
	}
	return nil, nil
}

func (s *fakeProductStore) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Product, error) {
	out := []models.Product{}
	for _, id := range ids {
		if p, ok := s.products[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (s *fakeProductStore) UpdateFields(ctx context.Context, id primitive.ObjectID, req models.UpdateProductRequest) (*models.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return nil, nil
	}
	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Price != nil {
		p.Price = *req.Price
	}
	if req.Stock != nil {
		p.Stock = *req.Stock
	}
	copied := *p
	return &copied, nil
}

func (s *fakeProductStore) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	if _, ok := s.products[id]; !ok {
		return false, nil
	}
	delete(s.products, id)
	return true, nil
}

type fakeCartStore struct {
	carts map[primitive.ObjectID]*models.Cart
}

func newFakeCartStore() *fakeCartStore {
	return &fakeCartStore{carts: map[primitive.ObjectID]*models.Cart{}}
}

func (s *fakeCartStore) FindOrCreate(ctx context.Context, userID primitive.ObjectID) (*models.Cart, error) {
	if c, ok := s.carts[userID]; ok {
		copied := *c
		copied.Items = append([]models.CartItem{}, c.Items...)
		return &copied, nil
	}
	cart := &models.Cart{ID: primitive.NewObjectID(), UserID: userID, Items: []models.CartItem{}}
	s.carts[userID] = cart
	copied := *cart
	return &copied, nil
}

func (s *fakeCartStore) FindByUser(ctx context.Context, userID primitive.ObjectID) (*models.Cart, error) {
	if c, ok := s.carts[userID]; ok {
		copied := *c
		copied.Items = append([]models.CartItem{}, c.Items...)
		return &copied, nil
	}
	return nil, nil
}

func (s *fakeCartStore) SaveItems(ctx context.Context, userID primitive.ObjectID, items []models.CartItem) error {
	if c, ok := s.carts[userID]; ok {
		c.Items = append([]models.CartItem{}, items...)
	}
	return nil
}

func (s *fakeCartStore) DeleteByUser(ctx context.Context, userID primitive.ObjectID) error {
	delete(s.carts, userID)
	return nil
}
