package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	cartapp "github.com/lotusnegra/storefront/internal/cart/app"
	"github.com/lotusnegra/storefront/internal/cart/domain"
	catalogapp "github.com/lotusnegra/storefront/internal/catalog/app"
	sessionrest "github.com/lotusnegra/storefront/internal/session/rest"
	"github.com/lotusnegra/storefront/internal/web"
)

type Handler struct {
	carts   *cartapp.Service
	catalog *catalogapp.Service
}

func NewHandler(carts *cartapp.Service, catalog *catalogapp.Service) *Handler {
	return &Handler{
		carts:   carts,
		catalog: catalog,
	}
}

func (h *Handler) Register(r gin.IRoutes) {
	r.GET("/cart", h.getCart)
	r.DELETE("/cart", h.clear)
	r.POST("/cart/items", h.addItem)
	r.PUT("/cart/items/:productID", h.setQuantity)
	r.DELETE("/cart/items/:productID", h.removeItem)
	r.GET("/cart/staged/:productID", h.stagedQuantity)
	r.PUT("/cart/staged/:productID", h.stageQuantity)
}

type addItemRequest struct {
	ProductID string `json:"product_id"`
	// Quantity is free text straight from the input field. Anything that is
	// not a whole number of at least 1 is treated as 1, never rejected.
	Quantity string `json:"quantity"`
}

type setQuantityRequest struct {
	Quantity string `json:"quantity"`
}

type lineItemResponse struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	UnitPrice string `json:"unit_price"`
	Quantity  int    `json:"quantity"`
}

type cartResponse struct {
	Items []lineItemResponse `json:"items"`
}

func (h *Handler) getCart(c *gin.Context) {
	cart, err := h.carts.Cart(c.Request.Context(), sessionrest.SessionID(c))
	if err != nil {
		web.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, toResponse(cart))
}

func (h *Handler) addItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		web.Error(c, catalogapp.ErrInvalidInput)
		return
	}

	ctx := c.Request.Context()
	sessionID := sessionrest.SessionID(c)

	product, err := h.catalog.GetProduct(ctx, req.ProductID)
	if err != nil {
		web.Error(c, err)
		return
	}

	err = h.carts.AddItem(ctx, sessionID, cartapp.Product{
		ID:    product.ID,
		Name:  product.Name,
		Price: product.Price,
	}, req.Quantity)
	if err != nil {
		web.Error(c, err)
		return
	}

	cart, err := h.carts.Cart(ctx, sessionID)
	if err != nil {
		web.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, toResponse(cart))
}

func (h *Handler) setQuantity(c *gin.Context) {
	var req setQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		web.Error(c, catalogapp.ErrInvalidInput)
		return
	}

	ctx := c.Request.Context()
	sessionID := sessionrest.SessionID(c)

	if err := h.carts.SetQuantity(ctx, sessionID, c.Param("productID"), req.Quantity); err != nil {
		web.Error(c, err)
		return
	}

	cart, err := h.carts.Cart(ctx, sessionID)
	if err != nil {
		web.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, toResponse(cart))
}

func (h *Handler) removeItem(c *gin.Context) {
	ctx := c.Request.Context()
	sessionID := sessionrest.SessionID(c)

	if err := h.carts.RemoveItem(ctx, sessionID, c.Param("productID")); err != nil {
		web.Error(c, err)
		return
	}

	cart, err := h.carts.Cart(ctx, sessionID)
	if err != nil {
		web.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, toResponse(cart))
}

func (h *Handler) clear(c *gin.Context) {
	if err := h.carts.Clear(c.Request.Context(), sessionrest.SessionID(c)); err != nil {
		web.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// stageQuantity stores the free-text quantity typed next to a catalog entry
// without touching the cart. Adding the product later resets it to "1".
func (h *Handler) stageQuantity(c *gin.Context) {
	var req setQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		web.Error(c, catalogapp.ErrInvalidInput)
		return
	}

	productID := c.Param("productID")
	if err := h.carts.StageQuantity(c.Request.Context(), sessionrest.SessionID(c), productID, req.Quantity); err != nil {
		web.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"product_id": productID, "quantity": req.Quantity})
}

func (h *Handler) stagedQuantity(c *gin.Context) {
	productID := c.Param("productID")
	raw, err := h.carts.StagedQuantity(c.Request.Context(), sessionrest.SessionID(c), productID)
	if err != nil {
		web.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"product_id": productID, "quantity": raw})
}

func toResponse(cart domain.Cart) cartResponse {
	items := make([]lineItemResponse, 0, len(cart.Items))
	for _, it := range cart.Items {
		items = append(items, lineItemResponse{
			ProductID: it.ProductID,
			Name:      it.Name,
			UnitPrice: it.UnitPrice.StringFixed(2),
			Quantity:  it.Quantity,
		})
	}
	return cartResponse{Items: items}
}
