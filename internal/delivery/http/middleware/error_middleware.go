package middleware

import (
	"errors"
	"net/http"

	"md-terceirizacao-api/internal/delivery/http/response"
	"md-terceirizacao-api/internal/domain"
	"md-terceirizacao-api/pkg/apperror"
	"md-terceirizacao-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Code >= http.StatusInternalServerError {
				// The cause is logged server-side only; clients get appErr.Message.
				logger.Log.Error("Request failed",
					"request_id", c.GetString(RequestIDKey),
					"path", c.Request.URL.Path,
					"kind", appErr.Kind,
					"error", appErr.Err,
				)
			} else {
				logger.Log.Info("Request rejected",
					"request_id", c.GetString(RequestIDKey),
					"path", c.Request.URL.Path,
					"kind", appErr.Kind,
					"fields", appErr.Fields,
				)
			}
			response.Error(c, appErr.Code, appErr.Message)
			return
		}

		logger.Log.Error("Internal Server Error",
			"request_id", c.GetString(RequestIDKey),
			"path", c.Request.URL.Path,
			"error", err,
		)
		response.Error(c, http.StatusInternalServerError, domain.MsgSendFailed)
	}
}
