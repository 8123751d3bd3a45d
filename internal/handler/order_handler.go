package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"app/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type OrderHandler struct {
	uc  *usecase.OrderUsecase
	log *zap.Logger
}

func NewOrderHandler(uc *usecase.OrderUsecase, log *zap.Logger) *OrderHandler {
	return &OrderHandler{uc: uc, log: log}
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/orders")
	g.POST("", h.create)
	g.GET("", h.list)
	g.GET("/:orderId", h.detail)
	g.PATCH("/:orderId/status", h.updateStatus)
	g.DELETE("/:orderId", h.delete)

	g.PUT("/:orderId/attachment", h.setAttachment)
	g.GET("/:orderId/attachment", h.getAttachment)
	g.DELETE("/:orderId/attachment", h.deleteAttachment)
}

type OrderCreateRequest struct {
	CustomerID string `json:"customerId"`
	UserID     string `json:"userId"`
}

func (h *OrderHandler) create(c echo.Context) error {
	var req OrderCreateRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid request body")
	}
	if _, err := uuid.Parse(req.CustomerID); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid customerId")
	}
	if _, err := uuid.Parse(req.UserID); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid userId")
	}

	out, err := h.uc.CreateOrder(c.Request().Context(), usecase.CreateOrderInput{
		CustomerID: req.CustomerID,
		UserID:     req.UserID,
	})
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, out)
}

// GET /orders のクエリを内部表現へ。形式エラーはここで弾く。
// モードの整合性チェックはusecase側。
func parseListOrdersQuery(c echo.Context) (usecase.ListOrdersInput, error) {
	var in usecase.ListOrdersInput

	if v := c.QueryParam("userId"); v != "" {
		if _, err := uuid.Parse(v); err != nil {
			return in, errors.New("invalid userId")
		}
		in.UserID = &v
	}
	if v := c.QueryParam("customerId"); v != "" {
		if _, err := uuid.Parse(v); err != nil {
			return in, errors.New("invalid customerId")
		}
		in.CustomerID = &v
	}
	if v := c.QueryParam("statusCode"); v != "" {
		in.StatusCode = &v
	}
	if v := c.QueryParam("orderDate"); v != "" {
		d, err := time.Parse("2006-01-02", v)
		if err != nil {
			return in, errors.New("invalid orderDate")
		}
		in.OrderDate = &d
	}
	if v := c.QueryParam("page"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return in, errors.New("invalid page")
		}
		in.Page = &p
	}
	if v := c.QueryParam("cursorDate"); v != "" {
		d, err := time.Parse(time.RFC3339Nano, v)
		if err != nil {
			return in, errors.New("invalid cursorDate")
		}
		in.CursorDate = &d
	}
	if v := c.QueryParam("cursorId"); v != "" {
		if _, err := uuid.Parse(v); err != nil {
			return in, errors.New("invalid cursorId")
		}
		in.CursorID = &v
	}
	if v := c.QueryParam("direction"); v != "" {
		in.Direction = &v
	}
	if v := c.QueryParam("currentPage"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return in, errors.New("invalid currentPage")
		}
		in.CurrentPage = &p
	}

	return in, nil
}

func (h *OrderHandler) list(c echo.Context) error {
	in, err := parseListOrdersQuery(c)
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, err.Error())
	}

	out, err := h.uc.ListOrders(c.Request().Context(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) detail(c echo.Context) error {
	orderID, ok := uuidParam(c, "orderId")
	if !ok {
		return errorJSON(c, http.StatusBadRequest, "invalid orderId")
	}

	out, err := h.uc.GetOrder(c.Request().Context(), orderID)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}

type OrderUpdateStatusRequest struct {
	StatusCode string `json:"statusCode"`
}

func (h *OrderHandler) updateStatus(c echo.Context) error {
	orderID, ok := uuidParam(c, "orderId")
	if !ok {
		return errorJSON(c, http.StatusBadRequest, "invalid orderId")
	}

	var req OrderUpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid request body")
	}

	out, err := h.uc.UpdateOrderStatus(c.Request().Context(), orderID, req.StatusCode)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) delete(c echo.Context) error {
	orderID, ok := uuidParam(c, "orderId")
	if !ok {
		return errorJSON(c, http.StatusBadRequest, "invalid orderId")
	}

	if err := h.uc.DeleteOrder(c.Request().Context(), orderID); err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"orderId": orderID})
}

type OrderAttachmentRequest struct {
	AttachmentKey string `json:"attachmentKey"`
}

func (h *OrderHandler) setAttachment(c echo.Context) error {
	orderID, ok := uuidParam(c, "orderId")
	if !ok {
		return errorJSON(c, http.StatusBadRequest, "invalid orderId")
	}

	var req OrderAttachmentRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid request body")
	}

	out, err := h.uc.SetOrderAttachment(c.Request().Context(), orderID, req.AttachmentKey)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) getAttachment(c echo.Context) error {
	orderID, ok := uuidParam(c, "orderId")
	if !ok {
		return errorJSON(c, http.StatusBadRequest, "invalid orderId")
	}

	out, err := h.uc.GetOrderAttachment(c.Request().Context(), orderID)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) deleteAttachment(c echo.Context) error {
	orderID, ok := uuidParam(c, "orderId")
	if !ok {
		return errorJSON(c, http.StatusBadRequest, "invalid orderId")
	}

	if err := h.uc.DeleteOrderAttachment(c.Request().Context(), orderID); err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Attachment deleted successfully"})
}
