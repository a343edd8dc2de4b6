package validators

import (
	"errors"

	"parasport/games-api/model"
)

var (
	ErrEventNoType    = errors.New("no event type provided")
	ErrEventBadYear   = errors.New("invalid event year provided")
	ErrEventNoCountry = errors.New("no event country provided")
	ErrEventNoHost    = errors.New("no event host provided")
	ErrEventNoNOC     = errors.New("no NOC code provided for event")
)

// EventValidator checks an event payload before it's persisted. The
// foreign key itself is checked against the regions table separately.
func EventValidator(e *model.Event) error {
	if e.Type == "" {
		return ErrEventNoType
	}

	if e.Year <= 0 {
		return ErrEventBadYear
	}

	if e.Country == "" {
		return ErrEventNoCountry
	}

	if e.Host == "" {
		return ErrEventNoHost
	}

	if e.NOC == "" {
		return ErrEventNoNOC
	}

	return nil
}
