package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type ItemHandler struct {
	uc  *usecase.ItemUsecase
	log *zap.Logger
}

func NewItemHandler(uc *usecase.ItemUsecase, log *zap.Logger) *ItemHandler {
	return &ItemHandler{uc: uc, log: log}
}

func (h *ItemHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/items", h.listAll)
	e.PUT("/orders/:orderId/items", h.replace)
	e.GET("/orders/:orderId/items", h.listByOrder)
	e.GET("/orders/:orderId/items/:productId", h.detail)
}

type ItemRequest struct {
	ProductID    string `json:"productId"`
	ItemQuantity int64  `json:"itemQuantity"`
}

type ItemListRequest struct {
	ListItem []ItemRequest `json:"listItem"`
}

// 注文の明細リストをまるごと差し替える。
func (h *ItemHandler) replace(c echo.Context) error {
	orderID, ok := uuidParam(c, "orderId")
	if !ok {
		return errorJSON(c, http.StatusBadRequest, "invalid orderId")
	}

	var req ItemListRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid request body")
	}

	inputs := make([]usecase.ItemInput, 0, len(req.ListItem))
	for _, it := range req.ListItem {
		if _, err := uuid.Parse(it.ProductID); err != nil {
			return errorJSON(c, http.StatusBadRequest, "invalid productId")
		}
		inputs = append(inputs, usecase.ItemInput{
			ProductID:    it.ProductID,
			ItemQuantity: it.ItemQuantity,
		})
	}

	out, err := h.uc.ReplaceOrderItems(c.Request().Context(), orderID, inputs)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ItemHandler) listByOrder(c echo.Context) error {
	orderID, ok := uuidParam(c, "orderId")
	if !ok {
		return errorJSON(c, http.StatusBadRequest, "invalid orderId")
	}

	out, err := h.uc.ListItemsByOrder(c.Request().Context(), orderID)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ItemHandler) detail(c echo.Context) error {
	orderID, ok := uuidParam(c, "orderId")
	if !ok {
		return errorJSON(c, http.StatusBadRequest, "invalid orderId")
	}
	productID, ok := uuidParam(c, "productId")
	if !ok {
		return errorJSON(c, http.StatusBadRequest, "invalid productId")
	}

	out, err := h.uc.GetItem(c.Request().Context(), orderID, productID)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ItemHandler) listAll(c echo.Context) error {
	out, err := h.uc.ListAllItems(c.Request().Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}
