package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"shop-api/models"
	"shop-api/services"
)

type CartController struct {
	cartService *services.CartService
}

func NewCartController(cartService *services.CartService) *CartController {
	return &CartController{cartService: cartService}
}

// currentUserID reads the verified user id the auth middleware stored on
// the context.
func currentUserID(c *gin.Context) (primitive.ObjectID, bool) {
	raw := c.GetString("user_id")
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Success: false,
			Message: "Invalid token subject",
		})
		return primitive.NilObjectID, false
	}
	return id, true
}

func cartErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, services.ErrInvalidQuantity):
		return http.StatusBadRequest, "Quantity must be at least 1"
	case errors.Is(err, services.ErrProductNotFound):
		return http.StatusNotFound, "Product not found"
	case errors.Is(err, services.ErrCartNotFound):
		return http.StatusNotFound, "Cart not found"
	case errors.Is(err, services.ErrItemNotFound):
		return http.StatusNotFound, "Product not in cart"
	default:
		return http.StatusInternalServerError, "Unexpected error"
	}
}

// @Summary Get cart
// @Description Get the caller's cart with product details resolved
// @Tags Cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Response
// @Router /api/cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	cart, err := ctrl.cartService.GetCart(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Error fetching cart",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Cart retrieved",
		Data:    cart,
	})
}

// @Summary Add to cart
// @Description Add a product to the caller's cart, merging with an existing line item
// @Tags Cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.AddToCartRequest true "Product and quantity"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/cart/add [post]
func (ctrl *CartController) AddToCart(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.AddToCartRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Quantity must be at least 1",
			Error:   err.Error(),
		})
		return
	}

	productID, err := primitive.ObjectIDFromHex(req.ProductID)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid product ID",
		})
		return
	}

	cart, err := ctrl.cartService.AddToCart(c.Request.Context(), userID, productID, req.Quantity)
	if err != nil {
		status, msg := cartErrorStatus(err)
		c.JSON(status, models.ErrorResponse{Success: false, Message: msg})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Product added to cart",
		Data:    cart,
	})
}

// @Summary Update cart item quantity
// @Description Set the quantity of a line item outright
// @Tags Cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param productId path string true "Product ID"
// @Param request body models.UpdateCartItemRequest true "New quantity"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/cart/{productId} [put]
func (ctrl *CartController) UpdateCartItem(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	productID, err := primitive.ObjectIDFromHex(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid product ID",
		})
		return
	}

	var req models.UpdateCartItemRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Quantity must be at least 1",
			Error:   err.Error(),
		})
		return
	}

	cart, err := ctrl.cartService.UpdateQuantity(c.Request.Context(), userID, productID, req.Quantity)
	if err != nil {
		status, msg := cartErrorStatus(err)
		c.JSON(status, models.ErrorResponse{Success: false, Message: msg})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Cart updated successfully",
		Data:    cart,
	})
}

// @Summary Remove cart item
// @Description Remove a product's line item from the caller's cart
// @Tags Cart
// @Produce json
// @Security BearerAuth
// @Param productId path string true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /api/cart/{productId} [delete]
func (ctrl *CartController) RemoveFromCart(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	productID, err := primitive.ObjectIDFromHex(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid product ID",
		})
		return
	}

	cart, err := ctrl.cartService.RemoveFromCart(c.Request.Context(), userID, productID)
	if err != nil {
		status, msg := cartErrorStatus(err)
		c.JSON(status, models.ErrorResponse{Success: false, Message: msg})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Item removed from cart successfully",
		Data:    cart,
	})
}

// @Summary Clear cart
// @Description Remove the caller's whole cart
// @Tags Cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Response
// @Router /api/cart [delete]
func (ctrl *CartController) ClearCart(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := ctrl.cartService.ClearCart(c.Request.Context(), userID); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Error clearing cart",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Cart cleared",
	})
}
