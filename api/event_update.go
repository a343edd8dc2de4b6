package api

import (
	"net/http"

	"parasport/games-api/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// eventPatch mirrors the updatable event columns, pointer fields so
// only what the caller sent gets written
type eventPatch struct {
	Type                 *string `json:"type"`
	Year                 *int    `json:"year"`
	Country              *string `json:"country"`
	Host                 *string `json:"host"`
	NOC                  *string `json:"NOC"`
	Start                *string `json:"start"`
	End                  *string `json:"end"`
	Duration             *int    `json:"duration"`
	DisabilitiesIncluded *string `json:"disabilities_included"`
	Countries            *int    `json:"countries"`
	Events               *int    `json:"events"`
	Sports               *int    `json:"sports"`
	ParticipantsM        *int    `json:"participants_m"`
	ParticipantsF        *int    `json:"participants_f"`
	Participants         *int    `json:"participants"`
	Highlights           *string `json:"highlights"`
}

func (p *eventPatch) changes() map[string]any {
	m := map[string]any{}

	if p.Type != nil {
		m["type"] = *p.Type
	}
	if p.Year != nil {
		m["year"] = *p.Year
	}
	if p.Country != nil {
		m["country"] = *p.Country
	}
	if p.Host != nil {
		m["host"] = *p.Host
	}
	if p.NOC != nil {
		m["noc"] = *p.NOC
	}
	if p.Start != nil {
		m["start"] = *p.Start
	}
	if p.End != nil {
		m["end"] = *p.End
	}
	if p.Duration != nil {
		m["duration"] = *p.Duration
	}
	if p.DisabilitiesIncluded != nil {
		m["disabilities_included"] = *p.DisabilitiesIncluded
	}
	if p.Countries != nil {
		m["countries"] = *p.Countries
	}
	if p.Events != nil {
		m["events"] = *p.Events
	}
	if p.Sports != nil {
		m["sports"] = *p.Sports
	}
	if p.ParticipantsM != nil {
		m["participants_m"] = *p.ParticipantsM
	}
	if p.ParticipantsF != nil {
		m["participants_f"] = *p.ParticipantsF
	}
	if p.Participants != nil {
		m["participants"] = *p.Participants
	}
	if p.Highlights != nil {
		m["highlights"] = *p.Highlights
	}

	return m
}

// EventUpdate applies the changed fields to an event. The lookup is by
// the primary key column
func (a *API) EventUpdate(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	eventID := c.Param("id")

	var patch eventPatch
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
			Model(model.Event{}).
			Where("id = ?", eventID).
			Updates(changes).
			Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":     "Internal server error",
				"requestID": requestID,
			})

			zap.L().Error("Failed to update event", zap.Error(err), zap.String("requestID", requestID))
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Event with id=" + eventID + " updated.",
	})
}
