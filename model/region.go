// Package model defines database models
package model

// Region is a National Olympic Committee region. The NOC code is the
// primary key and the value events reference as their foreign key.
type Region struct {
	NOC    string  `gorm:"primaryKey" json:"NOC"`
	Region string  `gorm:"not null" json:"region"`
	Notes  *string `json:"notes"`

	Events []Event `gorm:"foreignKey:NOC;references:NOC;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}
