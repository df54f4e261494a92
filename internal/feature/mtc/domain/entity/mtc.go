// Package entity defines the domain entities for the mtc feature.
package entity

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// Field length ceilings enforced by the request validators.
const (
	NameMaxLength        = 100
	DescriptionMaxLength = 1000
	PhoneMaxLength       = 20
	AddressMaxLength     = 300

	AverageRatingMinValue = 1
	AverageRatingMaxValue = 10
)

// DefaultPhoto is used until an mtc photo is uploaded.
const DefaultPhoto = "default-photo.jpg"

// CareerType is a healthcare career track an mtc prepares students for.
type CareerType string

const (
	CareerNursing               CareerType = "nursing"
	CareerLaboratoryDiagnostics CareerType = "laboratory-diagnostics"
	CareerPharmacology          CareerType = "pharmacology"
	CareerRadiology             CareerType = "radiology"
	CareerSurgeryAssistance     CareerType = "surgery-assistance"
	CareerParamedic             CareerType = "paramedic"
)

// CareerTypeValues returns every allowed career value.
func CareerTypeValues() []CareerType {
	return []CareerType{
		CareerNursing,
		CareerLaboratoryDiagnostics,
		CareerPharmacology,
		CareerRadiology,
		CareerSurgeryAssistance,
		CareerParamedic,
	}
}

// IsValidCareerType reports whether s is an allowed career value.
func IsValidCareerType(s string) bool {
	for _, c := range CareerTypeValues() {
		if string(c) == s {
			return true
		}
	}
	return false
}

// CareerList stores careers as a single comma-joined column so the same
// schema works on both the postgres production database and the sqlite
// test database.
type CareerList []CareerType

// Value implements driver.Valuer.
func (l CareerList) Value() (driver.Value, error) {
	parts := make([]string, 0, len(l))
	for _, c := range l {
		parts = append(parts, string(c))
	}
	return strings.Join(parts, ","), nil
}

// Scan implements sql.Scanner.
func (l *CareerList) Scan(src any) error {
	var raw string
	switch v := src.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	case nil:
		*l = nil
		return nil
	default:
		return fmt.Errorf("cannot scan %T into CareerList", src)
	}
	if raw == "" {
		*l = nil
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make(CareerList, 0, len(parts))
	for _, p := range parts {
		out = append(out, CareerType(p))
	}
	*l = out
	return nil
}

// Location is a geocoded point with its administrative fields. It is never
// supplied by clients directly; it is resolved from the mtc address through
// the geocoding provider.
type Location struct {
	Type             string  `gorm:"size:16" json:"type"`
	Longitude        float64 `json:"longitude"`
	Latitude         float64 `json:"latitude"`
	FormattedAddress string  `gorm:"size:512" json:"formattedAddress"`
	Street           string  `gorm:"size:255" json:"street"`
	City             string  `gorm:"size:255" json:"city"`
	State            string  `gorm:"size:255" json:"state"`
	Zipcode          string  `gorm:"size:32" json:"zipcode"`
	Country          string  `gorm:"size:255" json:"country"`
}

// LocationTypePoint is the only supported location geometry.
const LocationTypePoint = "Point"

// Mtc represents a medical training center that publishes courses.
type Mtc struct {
	ID          string `gorm:"primaryKey;size:36" json:"id"`
	Name        string `gorm:"uniqueIndex;size:100;not null" json:"name"`
	Slug        string `gorm:"size:120" json:"slug"`
	Description string `gorm:"size:1000;not null" json:"description"`
	Website     string `gorm:"size:255" json:"website"`
	Phone       string `gorm:"size:20" json:"phone"`
	Email       string `gorm:"size:255;not null" json:"email"`
	Address     string `gorm:"size:300;not null" json:"address"`

	Location Location `gorm:"embedded;embeddedPrefix:location_" json:"location"`

	Careers CareerList `gorm:"type:text;not null" json:"careers"`

	// AverageRating is an editorial 1-10 score; AverageCost is derived from
	// the mean tuition cost of the mtc's courses and is nil while the mtc
	// has no courses.
	AverageRating *int     `json:"averageRating,omitempty"`
	AverageCost   *float64 `json:"averageCost,omitempty"`

	Photo string `gorm:"size:255" json:"photo"`

	Housing       bool `json:"housing"`
	JobAssistance bool `json:"jobAssistance"`
	JobGuarantee  bool `json:"jobGuarantee"`
	AcceptGiBill  bool `json:"acceptGiBill"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
