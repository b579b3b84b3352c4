package rest

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kvellan/gamestore/internal/order/app"
	"github.com/kvellan/gamestore/internal/order/domain"
	"github.com/kvellan/gamestore/internal/web"
)

type Handler struct {
	svc *app.Service
}

func NewHandler(svc *app.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Register(r gin.IRouter) {
	r.GET("/orders", h.list)
}

type orderItemResponse struct {
	GameID     string `json:"game_id"`
	Title      string `json:"title"`
	UnitAmount int64  `json:"unit_amount"`
}

type orderResponse struct {
	ID          string              `json:"id"`
	Status      string              `json:"status"`
	Currency    string              `json:"currency"`
	TotalAmount int64               `json:"total_amount"`
	Items       []orderItemResponse `json:"items"`
	CreatedAt   time.Time           `json:"created_at"`
}

func (h *Handler) list(c *gin.Context) {
	id := web.Identity(c)
	if !id.Authenticated() {
		web.Error(c, web.ErrUnauthenticated)
		return
	}

	orders, err := h.svc.ListOrders(c.Request.Context(), id.UserID)
	if err != nil {
		web.Error(c, err)
		return
	}

	out := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, toResponse(o))
	}
	c.JSON(http.StatusOK, gin.H{"orders": out})
}

func toResponse(o domain.Order) orderResponse {
	items := make([]orderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, orderItemResponse{
			GameID:     it.ProductID,
			Title:      it.Title,
			UnitAmount: it.UnitAmount,
		})
	}

	return orderResponse{
		ID:          o.ID,
		Status:      o.Status,
		Currency:    o.Currency,
		TotalAmount: o.TotalAmount,
		Items:       items,
		CreatedAt:   o.CreatedAt,
	}
}
