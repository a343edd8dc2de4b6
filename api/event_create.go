package api

import (
	"fmt"
	"net/http"

	"parasport/games-api/model"
	"parasport/games-api/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (a *API) EventCreate(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var event model.Event
	if err := c.BindJSON(&event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Malformed or invalid JSON request body",
			"requestID": requestID,
		})

		zap.L().Error("Failed to read JSON body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if err := validators.EventValidator(&event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	// IDs are assigned by the database, a client-supplied one would
	// turn a duplicate into a constraint failure
	event.ID = 0

	// The NOC code must reference an existing region. SQLite enforces the
	// constraint too, the explicit check is here to answer with a clear
	// 400 instead of a bare constraint failure
	var found bool

	r := a.DB.Model(model.Region{}).
		Select("count(*) > 0").
		Where("noc = ?", event.NOC).
		Find(&found)
	if r.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to check NOC code", zap.Error(r.Error), zap.String("requestID", requestID))
		return
	}

	if !found {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "NOC code " + event.NOC + " doesn't reference an existing region",
			"requestID": requestID,
		})
		return
	}

	if err := a.DB.Create(&event).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to create event", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Event added with id= %d", event.ID),
	})
}
