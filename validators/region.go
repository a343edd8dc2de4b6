package validators

import (
	"errors"

	"parasport/games-api/model"
)

var (
	ErrNOCEmpty     = errors.New("no NOC code provided")
	ErrNOCLength    = errors.New("NOC code must be 3 characters")
	ErrRegionNoName = errors.New("no region name provided")
)

// RegionValidator checks a region payload before it's persisted
func RegionValidator(r *model.Region) error {
	if r.NOC == "" {
		return ErrNOCEmpty
	}

	if len(r.NOC) != 3 {
		return ErrNOCLength
	}

	if r.Region == "" {
		return ErrRegionNoName
	}

	return nil
}
