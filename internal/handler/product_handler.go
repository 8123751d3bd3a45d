package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type ProductHandler struct {
	uc  *usecase.ProductUsecase
	log *zap.Logger
}

func NewProductHandler(uc *usecase.ProductUsecase, log *zap.Logger) *ProductHandler {
	return &ProductHandler{uc: uc, log: log}
}

func (h *ProductHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/products")
	g.POST("", h.create)
	g.GET("", h.list)
	g.GET("/:productId", h.detail)
	g.PUT("/:productId", h.update)
	g.DELETE("/:productId", h.delete)
}

type ProductCreateRequest struct {
	ProductName        string  `json:"productName"`
	ProductDescription *string `json:"productDescription"`
	ProductQuantity    int64   `json:"productQuantity"`
}

type ProductUpdateRequest struct {
	ProductName        *string `json:"productName"`
	ProductDescription *string `json:"productDescription"`
	ProductQuantity    *int64  `json:"productQuantity"`
}

func (h *ProductHandler) create(c echo.Context) error {
	var req ProductCreateRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid request body")
	}

	out, err := h.uc.CreateProduct(c.Request().Context(), usecase.CreateProductInput{
		ProductName:        req.ProductName,
		ProductDescription: req.ProductDescription,
		ProductQuantity:    req.ProductQuantity,
	})
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *ProductHandler) list(c echo.Context) error {
	out, err := h.uc.ListProducts(c.Request().Context(), c.QueryParam("productName"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) detail(c echo.Context) error {
	productID, ok := uuidParam(c, "productId")
	if !ok {
		return errorJSON(c, http.StatusBadRequest, "invalid productId")
	}

	out, err := h.uc.GetProduct(c.Request().Context(), productID)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) update(c echo.Context) error {
	productID, ok := uuidParam(c, "productId")
	if !ok {
		return errorJSON(c, http.StatusBadRequest, "invalid productId")
	}

	var req ProductUpdateRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid request body")
	}

	out, err := h.uc.UpdateProduct(c.Request().Context(), productID, usecase.UpdateProductInput{
		ProductName:        req.ProductName,
		ProductDescription: req.ProductDescription,
		ProductQuantity:    req.ProductQuantity,
	})
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) delete(c echo.Context) error {
	productID, ok := uuidParam(c, "productId")
	if !ok {
		return errorJSON(c, http.StatusBadRequest, "invalid productId")
	}

	if err := h.uc.DeleteProduct(c.Request().Context(), productID); err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"productId": productID})
}
