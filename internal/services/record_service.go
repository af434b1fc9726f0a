package services

import (
	"errors"
	"strings"
	"time"

	"github.com/aqualims/aqualims/internal/models"
	"github.com/google/uuid"
)

var (
	ErrRecordNotFound      = errors.New("record not found")
	ErrRecordEditForbidden = errors.New("only admins may edit records")
	ErrRecordStoreFailed   = errors.New("record store operation failed")
)

type RecordStoreRepository interface {
	ListAll() ([]models.LabRecord, error)
	FindByID(recordID string) (models.LabRecord, bool, error)
	Create(record *models.LabRecord) error
	Save(record *models.LabRecord) error
}

// RecordService serves the list view and the manual entry form.
type RecordService struct {
	records  RecordStoreRepository
	location *time.Location
}

func NewRecordService(records RecordStoreRepository, location *time.Location) *RecordService {
	if location == nil {
		location = time.UTC
	}
	return &RecordService{records: records, location: location}
}

// ListFiltered applies the list-view predicates over the collection presorted
// newest-first by creation timestamp.
func (service *RecordService) ListFiltered(filter RecordFilter) ([]models.LabRecord, error) {
	records, err := service.records.ListAll()
	if err != nil {
		return nil, ErrRecordStoreFailed
	}
	return FilterRecords(records, filter), nil
}

func (service *RecordService) FindByID(recordID string) (models.LabRecord, error) {
	record, found, err := service.records.FindByID(recordID)
	if err != nil {
		return models.LabRecord{}, ErrRecordStoreFailed
	}
	if !found {
		return models.LabRecord{}, ErrRecordNotFound
	}
	return record, nil
}

// CreateEntry persists a manually entered record after validation, stamping
// the creator. The store intentionally does not deduplicate
// (date, sample point, attribute) triples on this path.
func (service *RecordService) CreateEntry(user *models.User, input RecordEntryInput, now time.Time) (models.LabRecord, error) {
	today := DateAtLocation(now, service.location)
	if err := ValidateRecordEntry(user, input, false, today, service.location); err != nil {
		return models.LabRecord{}, err
	}

	record := models.LabRecord{
		ID:              uuid.NewString(),
		Date:            strings.TrimSpace(input.Date),
		SamplePoint:     input.SamplePoint,
		Attribute:       input.Attribute,
		Value:           input.Value,
		Limit:           input.Limit,
		Observation24h:  input.Observation24h,
		Observation48h:  input.Observation48h,
		Observation72h:  input.Observation72h,
		NegativeControl: input.NegativeControl,
		Remarks:         input.Remarks,
		CreatedBy:       user.Username,
		CreatedByID:     user.ID,
		CreatedAt:       now,
	}
	if err := service.records.Create(&record); err != nil {
		return models.LabRecord{}, ErrRecordStoreFailed
	}
	return record, nil
}

// UpdateEntry edits an existing record. Only admins may do this, and the
// validation insists on a non-empty admin remark justifying the change.
func (service *RecordService) UpdateEntry(user *models.User, recordID string, input RecordEntryInput, now time.Time) (models.LabRecord, error) {
	if !IsAdminUser(user) {
		return models.LabRecord{}, ErrRecordEditForbidden
	}

	record, found, err := service.records.FindByID(recordID)
	if err != nil {
		return models.LabRecord{}, ErrRecordStoreFailed
	}
	if !found {
		return models.LabRecord{}, ErrRecordNotFound
	}

	today := DateAtLocation(now, service.location)
	if err := ValidateRecordEntry(user, input, true, today, service.location); err != nil {
		return models.LabRecord{}, err
	}

	record.Date = strings.TrimSpace(input.Date)
	record.SamplePoint = input.SamplePoint
	record.Attribute = input.Attribute
	record.Value = input.Value
	record.Limit = input.Limit
	record.Observation24h = input.Observation24h
	record.Observation48h = input.Observation48h
	record.Observation72h = input.Observation72h
	record.NegativeControl = input.NegativeControl
	record.Remarks = input.Remarks
	record.AdminRemark = strings.TrimSpace(input.AdminRemark)
	record.LastModifiedBy = user.Username
	modifiedAt := now
	record.LastModifiedAt = &modifiedAt

	if err := service.records.Save(&record); err != nil {
		return models.LabRecord{}, ErrRecordStoreFailed
	}
	return record, nil
}
