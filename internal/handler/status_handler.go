package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type StatusHandler struct {
	uc  *usecase.StatusUsecase
	log *zap.Logger
}

func NewStatusHandler(uc *usecase.StatusUsecase, log *zap.Logger) *StatusHandler {
	return &StatusHandler{uc: uc, log: log}
}

func (h *StatusHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/statuses")
	g.POST("", h.create)
	g.GET("", h.list)
	g.GET("/:statusId", h.detail)
	g.PUT("/:statusId", h.update)
	g.DELETE("/:statusId", h.delete)
}

type StatusCreateRequest struct {
	StatusName string `json:"statusName"`
	StatusCode string `json:"statusCode"`
}

type StatusUpdateRequest struct {
	StatusName *string `json:"statusName"`
	StatusCode *string `json:"statusCode"`
}

func (h *StatusHandler) create(c echo.Context) error {
	var req StatusCreateRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid request body")
	}

	out, err := h.uc.CreateStatus(c.Request().Context(), usecase.CreateStatusInput{
		StatusName: req.StatusName,
		StatusCode: req.StatusCode,
	})
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *StatusHandler) list(c echo.Context) error {
	out, err := h.uc.ListStatuses(c.Request().Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *StatusHandler) detail(c echo.Context) error {
	statusID, ok := uuidParam(c, "statusId")
	if !ok {
		return errorJSON(c, http.StatusBadRequest, "invalid statusId")
	}

	out, err := h.uc.GetStatus(c.Request().Context(), statusID)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *StatusHandler) update(c echo.Context) error {
	statusID, ok := uuidParam(c, "statusId")
	if !ok {
		return errorJSON(c, http.StatusBadRequest, "invalid statusId")
	}

	var req StatusUpdateRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid request body")
	}

	out, err := h.uc.UpdateStatus(c.Request().Context(), statusID, usecase.UpdateStatusInput{
		StatusName: req.StatusName,
		StatusCode: req.StatusCode,
	})
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *StatusHandler) delete(c echo.Context) error {
	statusID, ok := uuidParam(c, "statusId")
	if !ok {
		return errorJSON(c, http.StatusBadRequest, "invalid statusId")
	}

	if err := h.uc.DeleteStatus(c.Request().Context(), statusID); err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"statusId": statusID})
}
