package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lotusnegra/storefront/internal/catalog/app"
	"github.com/lotusnegra/storefront/internal/web"
)

type Handler struct {
	svc *app.Service
}

func NewHandler(svc *app.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Register(r gin.IRoutes) {
	r.GET("/products", h.listProducts)
	r.GET("/products/:productID", h.getProduct)
}

type productResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price string `json:"price"`
	Image string `json:"image"`
}

func (h *Handler) listProducts(c *gin.Context) {
	products, err := h.svc.ListProducts(c.Request.Context())
	if err != nil {
		web.Error(c, err)
		return
	}

	out := make([]productResponse, 0, len(products))
	for _, p := range products {
		out = append(out, productResponse{
			ID:    p.ID,
			Name:  p.Name,
			Price: p.Price.StringFixed(2),
			Image: p.Image,
		})
	}
	c.JSON(http.StatusOK, gin.H{"products": out})
}

func (h *Handler) getProduct(c *gin.Context) {
	p, err := h.svc.GetProduct(c.Request.Context(), c.Param("productID"))
	if err != nil {
		web.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, productResponse{
		ID:    p.ID,
		Name:  p.Name,
		Price: p.Price.StringFixed(2),
		Image: p.Image,
	})
}
