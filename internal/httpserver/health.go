package httpserver

import (
	"github.com/gin-gonic/gin"

	"service-desk-bot/pkg/response"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Liveness probe. The webhook URL is never echoed.
// @Tags Health
// @Produce json
// @Success 200 {object} response.StatusResp "Service is up"
// @Router /healthz [get]
// @Router / [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.Status(c)
}
