package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kvellan/gamestore/internal/catalog/app"
	"github.com/kvellan/gamestore/internal/catalog/domain"
	"github.com/kvellan/gamestore/internal/web"
)

type Handler struct {
	svc *app.Service
}

func NewHandler(svc *app.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Register(r gin.IRouter) {
	r.POST("/games", h.create)
	r.GET("/games", h.list)
	r.GET("/games/:id", h.get)
}

type createGameRequest struct {
	Title       string `json:"title" binding:"required"`
	Developer   string `json:"developer" binding:"required"`
	Genre       string `json:"genre"`
	Description string `json:"description"`
	Currency    string `json:"currency" binding:"required"`
	Amount      int64  `json:"amount" binding:"required,gt=0"`
}

type moneyResponse struct {
	Currency string `json:"currency"`
	Amount   int64  `json:"amount"`
}

type gameResponse struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Developer   string        `json:"developer"`
	Genre       string        `json:"genre,omitempty"`
	Description string        `json:"description,omitempty"`
	Price       moneyResponse `json:"price"`
}

func (h *Handler) create(c *gin.Context) {
	var req createGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "INVALID_ARGUMENT", "message": err.Error()})
		return
	}

	g, err := h.svc.CreateGame(c.Request.Context(), domain.Game{
		Title:       req.Title,
		Developer:   req.Developer,
		Genre:       req.Genre,
		Description: req.Description,
		Price:       domain.Money{Currency: req.Currency, Amount: req.Amount},
	})
	if err != nil {
		web.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, toResponse(g))
}

func (h *Handler) get(c *gin.Context) {
	g, err := h.svc.GetGame(c.Request.Context(), c.Param("id"))
	if err != nil {
		web.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, toResponse(g))
}

func (h *Handler) list(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	games, next, err := h.svc.ListGames(c.Request.Context(), c.Query("q"), limit, c.Query("cursor"))
	if err != nil {
		web.Error(c, err)
		return
	}

	out := make([]gameResponse, 0, len(games))
	for _, g := range games {
		out = append(out, toResponse(g))
	}

	c.JSON(http.StatusOK, gin.H{"games": out, "next_cursor": next})
}

func toResponse(g domain.Game) gameResponse {
	return gameResponse{
		ID:          g.ID,
		Title:       g.Title,
		Developer:   g.Developer,
		Genre:       g.Genre,
		Description: g.Description,
		Price:       moneyResponse{Currency: g.Price.Currency, Amount: g.Price.Amount},
	}
}
