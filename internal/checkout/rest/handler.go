package rest

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kvellan/gamestore/internal/checkout/app"
	"github.com/kvellan/gamestore/internal/checkout/domain"
	"github.com/kvellan/gamestore/internal/web"
)

type Handler struct {
	svc *app.Service
}

func NewHandler(svc *app.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Register(r gin.IRouter) {
	r.GET("/checkout/quote", h.quote)
	r.POST("/checkout/purchase", h.purchase)
}

type moneyResponse struct {
	Currency string `json:"currency"`
	Amount   int64  `json:"amount"`
}

type quoteLineResponse struct {
	GameID string        `json:"game_id"`
	Title  string        `json:"title"`
	Price  moneyResponse `json:"price"`
}

type quoteResponse struct {
	Lines []quoteLineResponse `json:"lines"`
	Total moneyResponse       `json:"total"`
}

type receiptResponse struct {
	OrderID   string        `json:"order_id"`
	Status    string        `json:"status"`
	Total     moneyResponse `json:"total"`
	CreatedAt time.Time     `json:"created_at"`
}

func (h *Handler) quote(c *gin.Context) {
	q, err := h.svc.Quote(c.Request.Context(), shopper(c))
	if err != nil {
		web.Error(c, err)
		return
	}

	lines := make([]quoteLineResponse, 0, len(q.Lines))
	for _, l := range q.Lines {
		lines = append(lines, quoteLineResponse{
			GameID: l.ProductID,
			Title:  l.Title,
			Price:  moneyResponse{Currency: l.Price.Currency, Amount: l.Price.Amount},
		})
	}

	c.JSON(http.StatusOK, quoteResponse{
		Lines: lines,
		Total: moneyResponse{Currency: q.Total.Currency, Amount: q.Total.Amount},
	})
}

func (h *Handler) purchase(c *gin.Context) {
	receipt, err := h.svc.Purchase(c.Request.Context(), shopper(c))
	if err != nil {
		web.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, toReceipt(receipt))
}

func toReceipt(r domain.Receipt) receiptResponse {
	return receiptResponse{
		OrderID:   r.OrderID,
		Status:    r.Status,
		Total:     moneyResponse{Currency: r.Total.Currency, Amount: r.Total.Amount},
		CreatedAt: r.CreatedAt,
	}
}

func shopper(c *gin.Context) app.Shopper {
	id := web.Identity(c)
	return app.Shopper{UserID: id.UserID, SessionID: id.SessionID}
}
