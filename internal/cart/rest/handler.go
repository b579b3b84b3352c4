package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kvellan/gamestore/internal/cart/app"
	"github.com/kvellan/gamestore/internal/cart/domain"
	"github.com/kvellan/gamestore/internal/web"
)

type Handler struct {
	svc *app.Service
}

func NewHandler(svc *app.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Register(r gin.IRouter) {
	r.GET("/cart", h.get)
	r.POST("/cart/items", h.addItem)
	r.DELETE("/cart/items/:id", h.removeItem)
	r.GET("/cart/items/:id", h.contains)
	r.POST("/cart/merge", h.merge)
}

type addItemRequest struct {
	GameID string `json:"game_id" binding:"required"`
}

type moneyResponse struct {
	Currency string `json:"currency"`
	Amount   int64  `json:"amount"`
}

type lineResponse struct {
	GameID string        `json:"game_id"`
	Title  string        `json:"title"`
	Price  moneyResponse `json:"price"`
}

type cartResponse struct {
	Items []lineResponse `json:"items"`
	Total moneyResponse  `json:"total"`
}

func (h *Handler) get(c *gin.Context) {
	cart, err := h.svc.GetCart(c.Request.Context(), web.Identity(c))
	if err != nil {
		web.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, toResponse(cart))
}

func (h *Handler) addItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "INVALID_ARGUMENT", "message": err.Error()})
		return
	}

	cart, err := h.svc.AddItem(c.Request.Context(), web.Identity(c), req.GameID)
	if err != nil {
		web.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, toResponse(cart))
}

func (h *Handler) removeItem(c *gin.Context) {
	cart, err := h.svc.RemoveItem(c.Request.Context(), web.Identity(c), c.Param("id"))
	if err != nil {
		web.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, toResponse(cart))
}

func (h *Handler) contains(c *gin.Context) {
	ok, err := h.svc.Contains(c.Request.Context(), web.Identity(c), c.Param("id"))
	if err != nil {
		web.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"in_cart": ok})
}

func (h *Handler) merge(c *gin.Context) {
	cart, err := h.svc.Merge(c.Request.Context(), web.Identity(c))
	if err != nil {
		web.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, toResponse(cart))
}

func toResponse(cart domain.Cart) cartResponse {
	items := make([]lineResponse, 0, len(cart.Lines))
	for _, l := range cart.Lines {
		items = append(items, lineResponse{
			GameID: l.ProductID,
			Title:  l.Title,
			Price:  moneyResponse{Currency: l.UnitPrice.Currency, Amount: l.UnitPrice.Amount},
		})
	}

	return cartResponse{
		Items: items,
		Total: moneyResponse{Currency: cart.Total.Currency, Amount: cart.Total.Amount},
	}
}
