package handler

import (
	"net/http"

	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type UserHandler struct {
	uc  *usecase.UserUsecase
	log *zap.Logger
}

func NewUserHandler(uc *usecase.UserUsecase, log *zap.Logger) *UserHandler {
	return &UserHandler{uc: uc, log: log}
}

func (h *UserHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/users")
	g.POST("", h.create)
	g.GET("", h.list)
	g.GET("/by-account", h.byAccount)
	g.GET("/:userId", h.detail)
	g.PUT("/:userId", h.update)
	g.PUT("/:userId/password", h.updatePassword)
	g.DELETE("/:userId", h.delete)
}

type UserCreateRequest struct {
	UserName     string `json:"userName"`
	UserEmail    string `json:"userEmail"`
	UserPhone    string `json:"userPhone"`
	UserAccount  string `json:"userAccount"`
	UserPassword string `json:"userPassword"`
}

type UserUpdateRequest struct {
	UserName  *string `json:"userName"`
	UserEmail *string `json:"userEmail"`
	UserPhone *string `json:"userPhone"`
}

type UserPasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

func (h *UserHandler) create(c echo.Context) error {
	var req UserCreateRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid request body")
	}

	out, err := h.uc.CreateUser(c.Request().Context(), usecase.CreateUserInput{
		UserName:     req.UserName,
		UserEmail:    req.UserEmail,
		UserPhone:    req.UserPhone,
		UserAccount:  req.UserAccount,
		UserPassword: req.UserPassword,
	})
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, out)
}

// 検索条件が全部空なら全件
func (h *UserHandler) list(c echo.Context) error {
	out, err := h.uc.ListUsers(c.Request().Context(), repo.UserSearch{
		Name:    c.QueryParam("userName"),
		Email:   c.QueryParam("userEmail"),
		Account: c.QueryParam("userAccount"),
		Phone:   c.QueryParam("userPhone"),
	})
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *UserHandler) byAccount(c echo.Context) error {
	out, err := h.uc.GetUserByAccount(c.Request().Context(), c.QueryParam("userAccount"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *UserHandler) detail(c echo.Context) error {
	userID, ok := uuidParam(c, "userId")
	if !ok {
		return errorJSON(c, http.StatusBadRequest, "invalid userId")
	}

	out, err := h.uc.GetUser(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *UserHandler) update(c echo.Context) error {
	userID, ok := uuidParam(c, "userId")
	if !ok {
		return errorJSON(c, http.StatusBadRequest, "invalid userId")
	}

	var req UserUpdateRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid request body")
	}

	out, err := h.uc.UpdateUser(c.Request().Context(), userID, usecase.UpdateUserInput{
		UserName:  req.UserName,
		UserEmail: req.UserEmail,
		UserPhone: req.UserPhone,
	})
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *UserHandler) updatePassword(c echo.Context) error {
	userID, ok := uuidParam(c, "userId")
	if !ok {
		return errorJSON(c, http.StatusBadRequest, "invalid userId")
	}

	var req UserPasswordRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid request body")
	}

	if err := h.uc.UpdateUserPassword(c.Request().Context(), userID, usecase.UpdateUserPasswordInput{
		OldPassword: req.OldPassword,
		NewPassword: req.NewPassword,
	}); err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Password updated successfully"})
}

func (h *UserHandler) delete(c echo.Context) error {
	userID, ok := uuidParam(c, "userId")
	if !ok {
		return errorJSON(c, http.StatusBadRequest, "invalid userId")
	}

	if err := h.uc.DeleteUser(c.Request().Context(), userID); err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"userId": userID})
}
