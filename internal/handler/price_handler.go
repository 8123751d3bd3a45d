package handler

import (
	"net/http"
	"time"

	"app/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type PriceHandler struct {
	uc  *usecase.PriceUsecase
	log *zap.Logger
}

func NewPriceHandler(uc *usecase.PriceUsecase, log *zap.Logger) *PriceHandler {
	return &PriceHandler{uc: uc, log: log}
}

func (h *PriceHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/prices")
	g.POST("", h.create)
	g.GET("", h.list)
	g.GET("/:priceId", h.detail)
	g.PUT("/:priceId", h.update)
	g.DELETE("/:priceId", h.delete)
}

type PriceCreateRequest struct {
	ProductID   string `json:"productId"`
	PriceAmount string `json:"priceAmount"`
	PriceDate   string `json:"priceDate"`
}

type PriceUpdateRequest struct {
	ProductID   *string `json:"productId"`
	PriceAmount *string `json:"priceAmount"`
	PriceDate   *string `json:"priceDate"`
}

func (h *PriceHandler) create(c echo.Context) error {
	var req PriceCreateRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid request body")
	}

	amount, err := decimal.NewFromString(req.PriceAmount)
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid priceAmount")
	}
	date, err := time.Parse("2006-01-02", req.PriceDate)
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid priceDate")
	}

	out, err := h.uc.CreatePrice(c.Request().Context(), usecase.CreatePriceInput{
		ProductID:   req.ProductID,
		PriceAmount: amount,
		PriceDate:   date,
	})
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *PriceHandler) detail(c echo.Context) error {
	priceID, ok := uuidParam(c, "priceId")
	if !ok {
		return errorJSON(c, http.StatusBadRequest, "invalid priceId")
	}

	out, err := h.uc.GetPrice(c.Request().Context(), priceID)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}

// productId指定時はその商品の履歴、なければ全件。
func (h *PriceHandler) list(c echo.Context) error {
	productID := c.QueryParam("productId")
	if productID != "" {
		if _, err := uuid.Parse(productID); err != nil {
			return errorJSON(c, http.StatusBadRequest, "invalid productId")
		}
	}

	out, err := h.uc.ListPrices(c.Request().Context(), productID)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PriceHandler) update(c echo.Context) error {
	priceID, ok := uuidParam(c, "priceId")
	if !ok {
		return errorJSON(c, http.StatusBadRequest, "invalid priceId")
	}

	var req PriceUpdateRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid request body")
	}

	in := usecase.UpdatePriceInput{ProductID: req.ProductID}
	if req.PriceAmount != nil {
		amount, err := decimal.NewFromString(*req.PriceAmount)
		if err != nil {
			return errorJSON(c, http.StatusBadRequest, "invalid priceAmount")
		}
		in.PriceAmount = &amount
	}
	if req.PriceDate != nil {
		date, err := time.Parse("2006-01-02", *req.PriceDate)
		if err != nil {
			return errorJSON(c, http.StatusBadRequest, "invalid priceDate")
		}
		in.PriceDate = &date
	}

	out, err := h.uc.UpdatePrice(c.Request().Context(), priceID, in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PriceHandler) delete(c echo.Context) error {
	priceID, ok := uuidParam(c, "priceId")
	if !ok {
		return errorJSON(c, http.StatusBadRequest, "invalid priceId")
	}

	if err := h.uc.DeletePrice(c.Request().Context(), priceID); err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"priceId": priceID})
}
