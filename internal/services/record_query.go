package services

import (
	"strings"

	"github.com/aqualims/aqualims/internal/models"
)

// RecordFilter is the predicate set of the list view. Empty fields match
// everything for their dimension; active predicates combine with AND.
type RecordFilter struct {
	Search      string
	SamplePoint string
	Attribute   string
	DateFrom    string
	DateTo      string
}

func (filter RecordFilter) isActive() bool {
	return filter.Search != "" || filter.SamplePoint != "" || filter.Attribute != "" ||
		filter.DateFrom != "" || filter.DateTo != ""
}

// FilterRecords derives the filtered subsequence of an already-sorted record
// collection, preserving its order. Date bounds are inclusive and compared
// lexicographically, which is valid for zero-padded YYYY-MM-DD strings.
func FilterRecords(records []models.LabRecord, filter RecordFilter) []models.LabRecord {
	if !filter.isActive() {
		return records
	}

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	filtered := make([]models.LabRecord, 0, len(records))
	for _, record := range records {
		if search != "" && !matchesSearch(record, search) {
			continue
		}
		if filter.SamplePoint != "" && record.SamplePoint != filter.SamplePoint {
			continue
		}
		if filter.Attribute != "" && record.Attribute != filter.Attribute {
			continue
		}
		if filter.DateFrom != "" && record.Date < filter.DateFrom {
			continue
		}
		if filter.DateTo != "" && record.Date > filter.DateTo {
			continue
		}
		filtered = append(filtered, record)
	}
	return filtered
}

// matchesSearch checks the free-text needle against sample point, attribute,
// creator, the legacy value field and remarks.
func matchesSearch(record models.LabRecord, needle string) bool {
	for _, haystack := range []string{
		record.SamplePoint,
		record.Attribute,
		record.CreatedBy,
		record.Value,
		record.Remarks,
	} {
		if strings.Contains(strings.ToLower(haystack), needle) {
			return true
		}
	}
	return false
}
