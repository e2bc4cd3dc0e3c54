package handlers

import (
	"net"

	"samfit/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// utilsLogger retrieves the shared Zap logger.
func utilsLogger() *zap.Logger {
	return utils.GetLogger()
}

// getClientKey identifies an anonymous caller for submit deduplication.
func getClientKey(c *gin.Context) string {
	ip := c.Request.RemoteAddr
	if host, _, err := net.SplitHostPort(ip); err == nil {
		return host
	}
	return ip
}
