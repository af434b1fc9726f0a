package db

import (
	"errors"

	"github.com/aqualims/aqualims/internal/models"
	"gorm.io/gorm"
)

type RecordRepository struct {
	database *gorm.DB
}

func NewRecordRepository(database *gorm.DB) *RecordRepository {
	return &RecordRepository{database: database}
}

func (repo *RecordRepository) CountRecords() (int64, error) {
	var count int64
	if err := repo.database.Model(&models.LabRecord{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ListAll returns the full collection newest-first by creation timestamp,
// which is the presort the list view filters over.
func (repo *RecordRepository) ListAll() ([]models.LabRecord, error) {
	records := make([]models.LabRecord, 0)
	if err := repo.database.Order("created_at DESC, id DESC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (repo *RecordRepository) FindByID(recordID string) (models.LabRecord, bool, error) {
	var record models.LabRecord
	err := repo.database.First(&record, "id = ?", recordID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.LabRecord{}, false, nil
	}
	if err != nil {
		return models.LabRecord{}, false, err
	}
	return record, true, nil
}

// FindForCell looks up the persisted record for one grid cell. Duplicate
// (date, sample point, attribute) triples are possible via the manual entry
// path; the oldest record wins the lookup.
func (repo *RecordRepository) FindForCell(date string, samplePoint string, attribute string) (models.LabRecord, bool, error) {
	var record models.LabRecord
	result := repo.database.
		Where("date = ? AND sample_point = ? AND attribute = ?", date, samplePoint, attribute).
		Order("created_at ASC, id ASC").
		Limit(1).
		Find(&record)
	if result.Error != nil {
		return models.LabRecord{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.LabRecord{}, false, nil
	}
	return record, true, nil
}

func (repo *RecordRepository) Create(record *models.LabRecord) error {
	return repo.database.Create(record).Error
}

func (repo *RecordRepository) Save(record *models.LabRecord) error {
	return repo.database.Save(record).Error
}
