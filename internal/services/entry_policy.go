package services

import (
	"errors"
	"strings"
	"time"

	"github.com/aqualims/aqualims/internal/models"
)

var (
	ErrEntryDateRequired   = errors.New("date is required")
	ErrEntryDateInvalid    = errors.New("invalid entry date")
	ErrEntryBackdated      = errors.New("entry date cannot be in the past")
	ErrAdminRemarkRequired = errors.New("admin remark is mandatory for modifications")
	ErrSamplePointUnknown  = errors.New("unknown sample point")
	ErrAttributeUnknown    = errors.New("unknown attribute")
)

// RecordEntryInput carries the fields a user submits through the manual
// record form.
type RecordEntryInput struct {
	Date            string `json:"date"`
	SamplePoint     string `json:"samplePoint"`
	Attribute       string `json:"attribute"`
	Value           string `json:"value"`
	Limit           string `json:"limit"`
	Observation24h  string `json:"observation24h"`
	Observation48h  string `json:"observation48h"`
	Observation72h  string `json:"observation72h"`
	NegativeControl string `json:"negativeControl"`
	Remarks         string `json:"remarks"`
	AdminRemark     string `json:"adminRemark"`
}

// ValidateRecordEntry runs the submission rules for manual record creation
// and editing: the date must be present and well-formed, only admins may
// backdate, and an admin editing an existing record must justify the change
// with a remark.
func ValidateRecordEntry(user *models.User, input RecordEntryInput, editing bool, today time.Time, location *time.Location) error {
	if strings.TrimSpace(input.Date) == "" {
		return ErrEntryDateRequired
	}
	entryDay, err := ParseDay(strings.TrimSpace(input.Date), location)
	if err != nil {
		return ErrEntryDateInvalid
	}

	if !IsAdminUser(user) && entryDay.Before(today) {
		return ErrEntryBackdated
	}

	if editing && IsAdminUser(user) && strings.TrimSpace(input.AdminRemark) == "" {
		return ErrAdminRemarkRequired
	}

	if !models.KnownSamplePoint(input.SamplePoint) {
		return ErrSamplePointUnknown
	}
	if !models.KnownAttribute(input.Attribute) {
		return ErrAttributeUnknown
	}

	return nil
}
