// Package db contains things related to SQLite
package db

import (
	"fmt"

	"parasport/games-api/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// New opens (or creates) the SQLite database at path and migrates the
// schema. Foreign keys are switched on so events can't reference a
// region that doesn't exist.
func New(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path + "?_fk=1"))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize SQLite database, %w", err)
	}

	err = db.AutoMigrate(model.Region{}, model.Event{}, model.User{})
	if err != nil {
		return nil, fmt.Errorf("failed to automigrate tables, %w", err)
	}

	return db, nil
}
