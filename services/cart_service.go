package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"shop-api/models"
)

type CartService struct {
	cartStore    CartStore
	productStore ProductStore
}

func NewCartService(cartStore CartStore, productStore ProductStore) *CartService {
	return &CartService{
		cartStore:    cartStore,
		productStore: productStore,
	}
}

// GetCart returns the user's cart with each line item's product resolved.
// An absent cart reads as empty. Items whose product has since been deleted
// keep their quantity but carry no product.
func (s *CartService) GetCart(ctx context.Context, userID primitive.ObjectID) (*models.CartView, error) {
	cart, err := s.cartStore.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	view := &models.CartView{UserID: userID, Items: []models.CartItemView{}}
	if cart == nil || len(cart.Items) == 0 {
		return view, nil
	}

	ids := make([]primitive.ObjectID, 0, len(cart.Items))
	for _, item := range cart.Items {
		ids = append(ids, item.ProductID)
	}

	products, err := s.productStore.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[primitive.ObjectID]*models.Product, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}

	for _, item := range cart.Items {
		view.Items = append(view.Items, models.CartItemView{
			ProductID: item.ProductID,
			Product:   byID[item.ProductID],
			Quantity:  item.Quantity,
		})
	}
	return view, nil
}

// AddToCart merges the quantity into an existing line item for the product,
// or appends a new line. The cart is created on first add.
func (s *CartService) AddToCart(ctx context.Context, userID, productID primitive.ObjectID, quantity int) (*models.Cart, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	product, err := s.productStore.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	cart, err := s.cartStore.FindOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	cart.AddItem(productID, quantity)
	if err := s.cartStore.SaveItems(ctx, userID, cart.Items); err != nil {
		return nil, err
	}
	return cart, nil
}

// UpdateQuantity replaces the line item's quantity outright. Unlike add it
// never creates the line item.
func (s *CartService) UpdateQuantity(ctx context.Context, userID, productID primitive.ObjectID, quantity int) (*models.Cart, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	cart, err := s.cartStore.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, ErrCartNotFound
	}

	if !cart.SetItemQuantity(productID, quantity) {
		return nil, ErrItemNotFound
	}

	if err := s.cartStore.SaveItems(ctx, userID, cart.Items); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *CartService) RemoveFromCart(ctx context.Context, userID, productID primitive.ObjectID) (*models.Cart, error) {
	cart, err := s.cartStore.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, ErrCartNotFound
	}

	if !cart.RemoveItem(productID) {
		return nil, ErrItemNotFound
	}

	if err := s.cartStore.SaveItems(ctx, userID, cart.Items); err != nil {
		return nil, err
	}
	return cart, nil
}

// ClearCart drops the whole cart document. Clearing an absent cart succeeds.
func (s *CartService) ClearCart(ctx context.Context, userID primitive.ObjectID) error {
	return s.cartStore.DeleteByUser(ctx, userID)
}
