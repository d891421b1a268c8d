package rest

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lotusnegra/storefront/internal/quote/app"
	"github.com/lotusnegra/storefront/internal/quote/document"
	sessionrest "github.com/lotusnegra/storefront/internal/session/rest"
	"github.com/lotusnegra/storefront/internal/web"
)

type Handler struct {
	quotes   *app.Service
	builder  *document.Builder
	sink     document.Sink
	filename string
}

func NewHandler(quotes *app.Service, builder *document.Builder, sink document.Sink, filename string) *Handler {
	if filename == "" {
		filename = "quote.pdf"
	}
	return &Handler{
		quotes:   quotes,
		builder:  builder,
		sink:     sink,
		filename: filename,
	}
}

func (h *Handler) Register(r gin.IRoutes) {
	r.GET("/quote", h.getQuote)
	r.GET("/quote/export", h.export)
}

type lineResponse struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	Subtotal  string `json:"subtotal"`
}

type quoteResponse struct {
	Lines []lineResponse `json:"lines"`
	Total string         `json:"total"`
}

func (h *Handler) getQuote(c *gin.Context) {
	q, err := h.quotes.Quote(c.Request.Context(), sessionrest.SessionID(c))
	if err != nil {
		web.Error(c, err)
		return
	}

	lines := make([]lineResponse, 0, len(q.Lines))
	for _, ln := range q.Lines {
		lines = append(lines, lineResponse{
			ProductID: ln.ProductID,
			Name:      ln.Name,
			Quantity:  ln.Quantity,
			UnitPrice: ln.UnitPrice.StringFixed(2),
			Subtotal:  ln.Subtotal.StringFixed(2),
		})
	}
	c.JSON(http.StatusOK, quoteResponse{Lines: lines, Total: q.Total.StringFixed(2)})
}

// export builds the quote document and streams it as a PDF download.
// Exporting an empty cart is allowed and yields a title plus a zero total.
func (h *Handler) export(c *gin.Context) {
	q, err := h.quotes.Quote(c.Request.Context(), sessionrest.SessionID(c))
	if err != nil {
		web.Error(c, err)
		return
	}

	data, err := h.sink.Render(h.builder.Build(q))
	if err != nil {
		web.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", h.filename))
	c.Data(http.StatusOK, "application/pdf", data)
}
