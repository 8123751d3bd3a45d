package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// エラーレスポンスは常にこの形
type ErrorResponse struct {
	Message string `json:"message"`
	Details any    `json:"details"`
}

func errorJSON(c echo.Context, status int, message string) error {
	return c.JSON(status, ErrorResponse{Message: message})
}

// ドメインエラーをHTTPステータスへ写す。
// 想定外はログに残して中身は返さない。
func writeError(c echo.Context, log *zap.Logger, err error) error {
	if err == nil {
		return nil
	}

	if de, ok := usecase.AsDomainError(err); ok {
		status := http.StatusInternalServerError
		switch de.Kind {
		case usecase.KindValidation:
			status = http.StatusBadRequest
		case usecase.KindNotFound:
			status = http.StatusNotFound
		case usecase.KindDuplicate:
			status = http.StatusConflict
		case usecase.KindWrongStatus, usecase.KindNotEnough:
			status = http.StatusUnprocessableEntity
		}
		return c.JSON(status, ErrorResponse{Message: de.Message, Details: de.Details})
	}

	//500
	if log != nil {
		log.Error("unexpected error",
			zap.String("method", c.Request().Method),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
	}
	return errorJSON(c, http.StatusInternalServerError, "Internal server error")
}

// パスパラメータのUUID検証
func uuidParam(c echo.Context, name string) (string, bool) {
	v := c.Param(name)
	if _, err := uuid.Parse(v); err != nil {
		return "", false
	}
	return v, true
}
