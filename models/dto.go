package models

type RegisterRequest struct {
	Name     string `json:"name" form:"name" binding:"required,min=2"`
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required"`
}

type CreateProductRequest struct {
	Name        string  `json:"name" form:"name" binding:"required"`
	Description string  `json:"description" form:"description"`
	Price       float64 `json:"price" form:"price" binding:"gte=0"`
	Stock       int     `json:"stock" form:"stock" binding:"gte=0"`
}

// UpdateProductRequest carries only the fields present in the request body;
// nil fields stay untouched on the stored document.
type UpdateProductRequest struct {
	Name        *string  `json:"name" form:"name"`
	Description *string  `json:"description" form:"description"`
	Price       *float64 `json:"price" form:"price" binding:"omitempty,gte=0"`
	Stock       *int     `json:"stock" form:"stock" binding:"omitempty,gte=0"`
}

type AddToCartRequest struct {
	ProductID string `json:"product_id" form:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" form:"quantity" binding:"required,gte=1"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" form:"quantity" binding:"required,gte=1"`
}
