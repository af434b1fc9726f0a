package services

import (
	"errors"
	"testing"

	"github.com/aqualims/aqualims/internal/models"
)

func validEntryInput(date string) RecordEntryInput {
	return RecordEntryInput{
		Date:        date,
		SamplePoint: models.SamplePoints[0],
		Attribute:   models.Attributes[0],
		Remarks:     "Routine check",
	}
}

func TestValidateRecordEntryRequiresDate(t *testing.T) {
	admin := &models.User{Role: models.RoleAdmin}
	today := day("2026-08-31")

	input := validEntryInput("   ")
	if err := ValidateRecordEntry(admin, input, false, today, nil); !errors.Is(err, ErrEntryDateRequired) {
		t.Fatalf("expected ErrEntryDateRequired, got %v", err)
	}

	input = validEntryInput("31/08/2026")
	if err := ValidateRecordEntry(admin, input, false, today, nil); !errors.Is(err, ErrEntryDateInvalid) {
		t.Fatalf("expected ErrEntryDateInvalid, got %v", err)
	}
}

func TestValidateRecordEntryBackdating(t *testing.T) {
	today := day("2026-08-31")
	technician := &models.User{Role: models.RoleUser}
	admin := &models.User{Role: models.RoleAdmin}

	if err := ValidateRecordEntry(technician, validEntryInput("2026-08-30"), false, today, nil); !errors.Is(err, ErrEntryBackdated) {
		t.Fatalf("expected ErrEntryBackdated for technician, got %v", err)
	}
	if err := ValidateRecordEntry(technician, validEntryInput("2026-08-31"), false, today, nil); err != nil {
		t.Fatalf("expected today's entry to pass for technician, got %v", err)
	}
	if err := ValidateRecordEntry(technician, validEntryInput("2026-09-02"), false, today, nil); err != nil {
		t.Fatalf("expected future entry to pass for technician, got %v", err)
	}
	if err := ValidateRecordEntry(admin, validEntryInput("2026-08-01"), false, today, nil); err != nil {
		t.Fatalf("expected backdated entry to pass for admin, got %v", err)
	}
}

func TestValidateRecordEntryAdminRemarkOnEdit(t *testing.T) {
	today := day("2026-08-31")
	admin := &models.User{Role: models.RoleAdmin}

	input := validEntryInput("2026-08-31")
	if err := ValidateRecordEntry(admin, input, true, today, nil); !errors.Is(err, ErrAdminRemarkRequired) {
		t.Fatalf("expected ErrAdminRemarkRequired on admin edit, got %v", err)
	}

	input.AdminRemark = "corrected transcription error"
	if err := ValidateRecordEntry(admin, input, true, today, nil); err != nil {
		t.Fatalf("expected admin edit with remark to pass, got %v", err)
	}

	// Creation never demands the remark.
	input.AdminRemark = ""
	if err := ValidateRecordEntry(admin, input, false, today, nil); err != nil {
		t.Fatalf("expected admin creation without remark to pass, got %v", err)
	}
}

func TestValidateRecordEntryRejectsUnknownEnumerations(t *testing.T) {
	today := day("2026-08-31")
	admin := &models.User{Role: models.RoleAdmin}

	input := validEntryInput("2026-08-31")
	input.SamplePoint = "Mystery Tap"
	if err := ValidateRecordEntry(admin, input, false, today, nil); !errors.Is(err, ErrSamplePointUnknown) {
		t.Fatalf("expected ErrSamplePointUnknown, got %v", err)
	}

	input = validEntryInput("2026-08-31")
	input.Attribute = "Turbidity"
	if err := ValidateRecordEntry(admin, input, false, today, nil); !errors.Is(err, ErrAttributeUnknown) {
		t.Fatalf("expected ErrAttributeUnknown, got %v", err)
	}
}
