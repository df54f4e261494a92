package apperror

import (
	"fmt"
	"log/slog"

	"github.com/gin-gonic/gin"

	"mtc_backend/internal/api"
)

// ErrorHandler renders the last error attached to the gin context as the
// ErrorResponse envelope. Handlers attach errors with c.Error and return;
// this middleware is the single place where error kind becomes HTTP status.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		appErr := From(c.Errors.Last().Err)
		if appErr.Type == TypeInternalServerError {
			slog.Error("request failed",
				"error_code", appErr.Code,
				"details", appErr.Details,
				"path", c.Request.URL.Path,
			)
		} else {
			slog.Warn("request rejected",
				"error_code", appErr.Code,
				"type", string(appErr.Type),
				"path", c.Request.URL.Path,
			)
		}

		c.JSON(appErr.Type.HTTPStatus(), api.ErrorResponse{
			ErrorCode:    appErr.Code,
			ErrorDetails: appErr.Details,
			Type:         string(appErr.Type),
		})
	}
}

// Recovery converts panics into INTERNAL_SERVER_ERROR responses carrying the
// raw panic content. This API is internal-facing, so the content is exposed
// for diagnostics rather than hidden.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		slog.Error("panic recovered", "panic", recovered, "path", c.Request.URL.Path)

		c.AbortWithStatusJSON(TypeInternalServerError.HTTPStatus(), api.ErrorResponse{
			ErrorCode:    CodeInternalServerError,
			ErrorDetails: []any{fmt.Sprint(recovered)},
			Type:         string(TypeInternalServerError),
		})
	})
}
