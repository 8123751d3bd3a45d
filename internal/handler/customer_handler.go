package handler

import (
	"net/http"

	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type CustomerHandler struct {
	uc  *usecase.CustomerUsecase
	log *zap.Logger
}

func NewCustomerHandler(uc *usecase.CustomerUsecase, log *zap.Logger) *CustomerHandler {
	return &CustomerHandler{uc: uc, log: log}
}

func (h *CustomerHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/customers")
	g.POST("", h.create)
	g.GET("", h.list)
	g.GET("/by-email", h.byEmail)
	g.GET("/:customerId", h.detail)
	g.PUT("/:customerId", h.update)
	g.DELETE("/:customerId", h.delete)
}

type CustomerCreateRequest struct {
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	CustomerPhone string `json:"customerPhone"`
}

type CustomerUpdateRequest struct {
	CustomerName  *string `json:"customerName"`
	CustomerEmail *string `json:"customerEmail"`
	CustomerPhone *string `json:"customerPhone"`
}

func (h *CustomerHandler) create(c echo.Context) error {
	var req CustomerCreateRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid request body")
	}

	out, err := h.uc.CreateCustomer(c.Request().Context(), usecase.CreateCustomerInput{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
	})
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, out)
}

// 検索条件が全部空なら全件
func (h *CustomerHandler) list(c echo.Context) error {
	out, err := h.uc.ListCustomers(c.Request().Context(), repo.CustomerSearch{
		Name:  c.QueryParam("customerName"),
		Email: c.QueryParam("customerEmail"),
		Phone: c.QueryParam("customerPhone"),
	})
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CustomerHandler) byEmail(c echo.Context) error {
	out, err := h.uc.GetCustomerByEmail(c.Request().Context(), c.QueryParam("customerEmail"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CustomerHandler) detail(c echo.Context) error {
	customerID, ok := uuidParam(c, "customerId")
	if !ok {
		return errorJSON(c, http.StatusBadRequest, "invalid customerId")
	}

	out, err := h.uc.GetCustomer(c.Request().Context(), customerID)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CustomerHandler) update(c echo.Context) error {
	customerID, ok := uuidParam(c, "customerId")
	if !ok {
		return errorJSON(c, http.StatusBadRequest, "invalid customerId")
	}

	var req CustomerUpdateRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid request body")
	}

	out, err := h.uc.UpdateCustomer(c.Request().Context(), customerID, usecase.UpdateCustomerInput{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
	})
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CustomerHandler) delete(c echo.Context) error {
	customerID, ok := uuidParam(c, "customerId")
	if !ok {
		return errorJSON(c, http.StatusBadRequest, "invalid customerId")
	}

	if err := h.uc.DeleteCustomer(c.Request().Context(), customerID); err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"customerId": customerID})
}
