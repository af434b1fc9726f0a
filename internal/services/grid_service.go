package services

import (
	"errors"
	"strings"
	"time"

	"github.com/aqualims/aqualims/internal/models"
	"github.com/google/uuid"
)

var (
	ErrGridDateInvalid = errors.New("invalid grid date")
	ErrGridReadOnly    = errors.New("grid is read-only for past dates")
	ErrGridLoadFailed  = errors.New("load grid failed")
	ErrGridSaveFailed  = errors.New("save grid failed")
)

// GridCell is one editable (sample point, attribute) slot of the daily grid.
// RecordID is empty for placeholders that have never been persisted.
type GridCell struct {
	RecordID        string `json:"recordId"`
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
}

type GridRecordRepository interface {
	FindForCell(date string, samplePoint string, attribute string) (models.LabRecord, bool, error)
	FindByID(recordID string) (models.LabRecord, bool, error)
	Create(record *models.LabRecord) error
	Save(record *models.LabRecord) error
}

// GridService reconciles the in-memory daily entry grid against persisted
// records.
type GridService struct {
	records  GridRecordRepository
	location *time.Location
}

func NewGridService(records GridRecordRepository, location *time.Location) *GridService {
	if location == nil {
		location = time.UTC
	}
	return &GridService{records: records, location: location}
}

// LoadGrid builds the full (sample point x attribute) matrix for a date in
// declared order. Cells backed by a persisted record carry its full field
// set; the rest are placeholders seeded with the attribute's default limit.
func (service *GridService) LoadGrid(date string) ([]GridCell, error) {
	if _, err := ParseDay(date, service.location); err != nil {
		return nil, ErrGridDateInvalid
	}

	cells := make([]GridCell, 0, len(models.SamplePoints)*len(models.Attributes))
	for _, point := range models.SamplePoints {
		for _, attribute := range models.Attributes {
			existing, found, err := service.records.FindForCell(date, point, attribute)
			if err != nil {
				return nil, ErrGridLoadFailed
			}
			if found {
				cells = append(cells, cellFromRecord(existing))
				continue
			}
			cells = append(cells, GridCell{
				Date:        date,
				SamplePoint: point,
				Attribute:   attribute,
				Limit:       models.DefaultLimitFor(attribute),
			})
		}
	}
	return cells, nil
}

// CanEdit reports whether the acting user may mutate the grid for a date.
func (service *GridService) CanEdit(user *models.User, date string) (bool, error) {
	day, err := ParseDay(date, service.location)
	if err != nil {
		return false, ErrGridDateInvalid
	}
	if user == nil {
		return false, nil
	}
	return CanEditDate(user.Role, day, Today(service.location)), nil
}

// SaveAll walks the submitted cells in declared grid order and partitions
// them: cells that already carry a record id are unconditionally re-saved
// with fresh modification stamps, cells with meaningful data are created, and
// untouched placeholders are skipped. It returns the number of saved entries
// together with the grid reloaded from the store so callers pick up newly
// assigned ids.
func (service *GridService) SaveAll(user *models.User, date string, cells []GridCell, now time.Time) (int, []GridCell, error) {
	day, err := ParseDay(date, service.location)
	if err != nil {
		return 0, nil, ErrGridDateInvalid
	}
	if user == nil || !CanEditDate(user.Role, day, DateAtLocation(now, service.location)) {
		return 0, nil, ErrGridReadOnly
	}

	submitted := make(map[string]GridCell, len(cells))
	for _, cell := range cells {
		submitted[cellKey(cell.SamplePoint, cell.Attribute)] = cell
	}

	savedCount := 0
	for _, point := range models.SamplePoints {
		for _, attribute := range models.Attributes {
			cell, ok := submitted[cellKey(point, attribute)]
			if !ok {
				continue
			}
			cell.Date = date
			cell.SamplePoint = point
			cell.Attribute = attribute

			saved, err := service.saveCell(user, cell, now)
			if err != nil {
				return savedCount, nil, err
			}
			if saved {
				savedCount++
			}
		}
	}

	reloaded, err := service.LoadGrid(date)
	if err != nil {
		return savedCount, nil, err
	}
	return savedCount, reloaded, nil
}

func (service *GridService) saveCell(user *models.User, cell GridCell, now time.Time) (bool, error) {
	if cell.RecordID != "" {
		existing, found, err := service.records.FindByID(cell.RecordID)
		if err != nil {
			return false, ErrGridSaveFailed
		}
		if found {
			applyCellFields(&existing, cell)
			existing.LastModifiedBy = user.Username
			modifiedAt := now
			existing.LastModifiedAt = &modifiedAt
			if err := service.records.Save(&existing); err != nil {
				return false, ErrGridSaveFailed
			}
			return true, nil
		}
		// Stale id: the record vanished from the store, fall through and
		// treat the cell as unsaved.
	}

	if !cellHasData(cell) {
		return false, nil
	}

	record := models.LabRecord{
		ID:          uuid.NewString(),
		Date:        cell.Date,
		SamplePoint: cell.SamplePoint,
		Attribute:   cell.Attribute,
		CreatedBy:   user.Username,
		CreatedByID: user.ID,
		CreatedAt:   now,
	}
	applyCellFields(&record, cell)
	if err := service.records.Create(&record); err != nil {
		return false, ErrGridSaveFailed
	}
	return true, nil
}

func cellKey(samplePoint string, attribute string) string {
	return samplePoint + "\x00" + attribute
}

func cellHasData(cell GridCell) bool {
	for _, field := range []string{
		cell.Value,
		cell.Observation24h,
		cell.Observation48h,
		cell.Observation72h,
		cell.NegativeControl,
		cell.Remarks,
	} {
		if strings.TrimSpace(field) != "" {
			return true
		}
	}
	return false
}

func cellFromRecord(record models.LabRecord) GridCell {
	return GridCell{
		RecordID:        record.ID,
		Date:            record.Date,
		SamplePoint:     record.SamplePoint,
		Attribute:       record.Attribute,
		Value:           record.Value,
		Limit:           record.Limit,
		Observation24h:  record.Observation24h,
		Observation48h:  record.Observation48h,
		Observation72h:  record.Observation72h,
		NegativeControl: record.NegativeControl,
		Remarks:         record.Remarks,
	}
}

func applyCellFields(record *models.LabRecord, cell GridCell) {
	record.Value = cell.Value
	record.Limit = cell.Limit
	record.Observation24h = cell.Observation24h
	record.Observation48h = cell.Observation48h
	record.Observation72h = cell.Observation72h
	record.NegativeControl = cell.NegativeControl
	record.Remarks = cell.Remarks
}
