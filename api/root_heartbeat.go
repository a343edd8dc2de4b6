package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Heartbeat is used by monitoring to check that the server is alive
func (a *API) Heartbeat(c *gin.Context) {
	c.Status(http.StatusOK)
}
