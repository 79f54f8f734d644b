package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Ack sends 200 {"ok": true}.
func Ack(c *gin.Context) {
	c.JSON(http.StatusOK, AckResp{OK: true})
}

// Status sends 200 {"status": "ok"}.
func Status(c *gin.Context) {
	c.JSON(http.StatusOK, StatusResp{Status: StatusOK})
}

// Unauthorized sends 401 response.
func Unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, Resp{
		ErrorCode: http.StatusUnauthorized,
		Message:   MessageUnauthorized,
	})
}

// Forbidden sends 403 response.
func Forbidden(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusForbidden, Resp{
		ErrorCode: http.StatusForbidden,
		Message:   MessageForbidden,
	})
}
