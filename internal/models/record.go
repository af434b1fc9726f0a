package models

import "time"

// LabRecord is a single microbiological result for one sample point and
// attribute on one calendar day. Dates are stored as YYYY-MM-DD strings; the
// fixed-width format keeps lexicographic range comparisons valid.
type LabRecord struct {
	ID              string     `gorm:"primaryKey" json:"id"`
	Date            string     `gorm:"not null;index:idx_lab_records_cell" json:"date"`
	SamplePoint     string     `gorm:"not null;index:idx_lab_records_cell" json:"samplePoint"`
	Attribute       string     `gorm:"not null;index:idx_lab_records_cell" json:"attribute"`
	Value           string     `gorm:"not null;default:''" json:"value"`
	Limit           string     `gorm:"column:limit_value;not null;default:''" json:"limit"`
	Observation24h  string     `gorm:"column:observation_24h;not null;default:''" json:"observation24h"`
	Observation48h  string     `gorm:"column:observation_48h;not null;default:''" json:"observation48h"`
	Observation72h  string     `gorm:"column:observation_72h;not null;default:''" json:"observation72h"`
	NegativeControl string     `gorm:"not null;default:''" json:"negativeControl"`
	Remarks         string     `gorm:"not null;default:''" json:"remarks"`
	CreatedBy       string     `gorm:"not null;default:''" json:"createdBy"`
	CreatedByID     string     `gorm:"not null;default:''" json:"createdById"`
	CreatedAt       time.Time  `gorm:"not null" json:"createdAt"`
	LastModifiedBy  string     `json:"lastModifiedBy,omitempty"`
	LastModifiedAt  *time.Time `json:"lastModifiedAt,omitempty"`
	AdminRemark     string     `json:"adminRemark,omitempty"`
}

// SamplePoints lists the fixed sampling locations in process order. The grid
// iterates them in this declared order.
var SamplePoints = []string{
	"PSF Inlet",
	"PSF Outlet",
	"ACF Outlet",
	"Lead ACF Outlet",
	"Lag ACF Outlet",
	"UF Outlet",
}

// Attributes lists the fixed measurement types in declared order.
var Attributes = []string{
	"TPC 22°C",
	"TPC 36°C",
	"Coliform",
	"E.coli",
	"Pseudomonas.A",
}

var defaultLimits = map[string]string{
	"TPC 22°C":      "<100 cfu/ml",
	"TPC 36°C":      "<50 cfu/ml",
	"Coliform":      "<1 cfu/100ml",
	"E.coli":        "<1 cfu/100ml",
	"Pseudomonas.A": "Absent/100ml",
}

// DefaultLimitFor returns the threshold text pre-filled for an attribute, or
// an empty string when the attribute has no configured default.
func DefaultLimitFor(attribute string) string {
	return defaultLimits[attribute]
}

func KnownSamplePoint(point string) bool {
	for _, candidate := range SamplePoints {
		if candidate == point {
			return true
		}
	}
	return false
}

func KnownAttribute(attribute string) bool {
	for _, candidate := range Attributes {
		if candidate == attribute {
			return true
		}
	}
	return false
}
