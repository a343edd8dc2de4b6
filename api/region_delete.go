package api

import (
	"net/http"

	"parasport/games-api/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (a *API) RegionDelete(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	code := c.Param("code")

	res := a.DB.
		Where("noc = ?", code).
		Delete(model.Region{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to delete region", zap.Error(res.Error), zap.String("requestID", requestID))
		return
	}

	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"error":     "Region " + code + " not found",
			"requestID": requestID,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Region " + code + " deleted.",
	})
}
