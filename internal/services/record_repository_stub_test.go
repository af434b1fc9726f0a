package services

import (
	"sort"

	"github.com/aqualims/aqualims/internal/models"
)

// recordRepositoryStub keeps records in insertion order, which makes the
// oldest-wins cell lookup observable in tests.
type recordRepositoryStub struct {
	records   []models.LabRecord
	findErr   error
	createErr error
	saveErr   error
}

func newRecordRepositoryStub() *recordRepositoryStub {
	return &recordRepositoryStub{records: make([]models.LabRecord, 0)}
}

func (stub *recordRepositoryStub) ListAll() ([]models.LabRecord, error) {
	listed := make([]models.LabRecord, len(stub.records))
	copy(listed, stub.records)
	sort.SliceStable(listed, func(i, j int) bool {
		return listed[i].CreatedAt.After(listed[j].CreatedAt)
	})
	return listed, nil
}

func (stub *recordRepositoryStub) FindForCell(date string, samplePoint string, attribute string) (models.LabRecord, bool, error) {
	if stub.findErr != nil {
		return models.LabRecord{}, false, stub.findErr
	}
	for _, record := range stub.records {
		if record.Date == date && record.SamplePoint == samplePoint && record.Attribute == attribute {
			return record, true, nil
		}
	}
	return models.LabRecord{}, false, nil
}

func (stub *recordRepositoryStub) FindByID(recordID string) (models.LabRecord, bool, error) {
	if stub.findErr != nil {
		return models.LabRecord{}, false, stub.findErr
	}
	for _, record := range stub.records {
		if record.ID == recordID {
			return record, true, nil
		}
	}
	return models.LabRecord{}, false, nil
}

func (stub *recordRepositoryStub) Create(record *models.LabRecord) error {
	if stub.createErr != nil {
		return stub.createErr
	}
	stub.records = append(stub.records, *record)
	return nil
}

func (stub *recordRepositoryStub) Save(record *models.LabRecord) error {
	if stub.saveErr != nil {
		return stub.saveErr
	}
	for index := range stub.records {
		if stub.records[index].ID == record.ID {
			stub.records[index] = *record
			return nil
		}
	}
	stub.records = append(stub.records, *record)
	return nil
}
