package api

import (
	"net/http"

	"parasport/games-api/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// regionPatch carries only the fields a PATCH may change. Pointer
// fields so absent keys aren't written, the mapping to columns is
// spelled out below instead of reflecting over the model. An explicit
// JSON null decodes to nil just like an absent key, so null is a no-op
// rather than a way to clear a field.
type regionPatch struct {
	Region *string `json:"region"`
	Notes  *string `json:"notes"`
}

func (p *regionPatch) changes() map[string]any {
	m := map[string]any{}

	if p.Region != nil {
		m["region"] = *p.Region
	}
	if p.Notes != nil {
		m["notes"] = *p.Notes
	}

	return m
}

func (a *API) RegionUpdate(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	code := c.Param("code")

	var patch regionPatch
	if err := c.BindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Malformed or invalid JSON request body",
			"requestID": requestID,
		})

		zap.L().Error("Failed to read JSON body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	changes := patch.changes()
	if len(changes) > 0 {
		err := a.DB.
			Model(model.Region{}).
			Where("noc = ?", code).
			Updates(changes).
			Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":     "Internal server error",
				"requestID": requestID,
			})

			zap.L().Error("Failed to update region", zap.Error(err), zap.String("requestID", requestID))
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Region " + code + " updated.",
	})
}
