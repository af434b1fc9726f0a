package services

import (
	"testing"
	"time"

	"github.com/aqualims/aqualims/internal/models"
)

func queryFixture() []models.LabRecord {
	base := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	return []models.LabRecord{
		{ID: "r4", Date: "2026-08-20", SamplePoint: "PSF Inlet", Attribute: "Coliform", CreatedBy: "tech1", Remarks: "retest scheduled", CreatedAt: base.AddDate(0, 0, 20)},
		{ID: "r3", Date: "2026-08-15", SamplePoint: "UF Outlet", Attribute: "E.coli", CreatedBy: "admin", Value: "<1", CreatedAt: base.AddDate(0, 0, 15)},
		{ID: "r2", Date: "2026-08-10", SamplePoint: "PSF Inlet", Attribute: "TPC 22°C", CreatedBy: "tech1", Remarks: "Routine check", CreatedAt: base.AddDate(0, 0, 10)},
		{ID: "r1", Date: "2026-08-05", SamplePoint: "ACF Outlet", Attribute: "Coliform", CreatedBy: "tech2", CreatedAt: base.AddDate(0, 0, 5)},
	}
}

func recordIDs(records []models.LabRecord) []string {
	ids := make([]string, 0, len(records))
	for _, record := range records {
		ids = append(ids, record.ID)
	}
	return ids
}

func assertIDs(t *testing.T, got []models.LabRecord, want ...string) {
	t.Helper()
	gotIDs := recordIDs(got)
	if len(gotIDs) != len(want) {
		t.Fatalf("expected ids %v, got %v", want, gotIDs)
	}
	for index := range want {
		if gotIDs[index] != want[index] {
			t.Fatalf("expected ids %v, got %v", want, gotIDs)
		}
	}
}

func TestFilterRecordsNoPredicatesMatchesAll(t *testing.T) {
	records := queryFixture()
	assertIDs(t, FilterRecords(records, RecordFilter{}), "r4", "r3", "r2", "r1")
}

func TestFilterRecordsBySamplePoint(t *testing.T) {
	filtered := FilterRecords(queryFixture(), RecordFilter{SamplePoint: "PSF Inlet"})
	assertIDs(t, filtered, "r4", "r2")
	for _, record := range filtered {
		if record.SamplePoint != "PSF Inlet" {
			t.Fatalf("unexpected sample point %q", record.SamplePoint)
		}
	}
}

func TestFilterRecordsSamplePointAndDateRange(t *testing.T) {
	filter := RecordFilter{SamplePoint: "PSF Inlet", DateFrom: "2026-08-10", DateTo: "2026-08-15"}
	assertIDs(t, FilterRecords(queryFixture(), filter), "r2")
}

func TestFilterRecordsDateBoundsAreInclusive(t *testing.T) {
	filter := RecordFilter{DateFrom: "2026-08-05", DateTo: "2026-08-20"}
	assertIDs(t, FilterRecords(queryFixture(), filter), "r4", "r3", "r2", "r1")

	filter = RecordFilter{DateFrom: "2026-08-06", DateTo: "2026-08-19"}
	assertIDs(t, FilterRecords(queryFixture(), filter), "r3", "r2")
}

func TestFilterRecordsSearchIsCaseInsensitiveAcrossFields(t *testing.T) {
	assertIDs(t, FilterRecords(queryFixture(), RecordFilter{Search: "ROUTINE"}), "r2")
	assertIDs(t, FilterRecords(queryFixture(), RecordFilter{Search: "tech2"}), "r1")
	assertIDs(t, FilterRecords(queryFixture(), RecordFilter{Search: "e.coli"}), "r3")
	assertIDs(t, FilterRecords(queryFixture(), RecordFilter{Search: "<1"}), "r3")
	assertIDs(t, FilterRecords(queryFixture(), RecordFilter{Search: "psf"}), "r4", "r2")
}

func TestFilterRecordsPredicatesCombineWithAND(t *testing.T) {
	filter := RecordFilter{Search: "tech1", Attribute: "Coliform"}
	assertIDs(t, FilterRecords(queryFixture(), filter), "r4")

	filter = RecordFilter{Search: "tech1", Attribute: "E.coli"}
	assertIDs(t, FilterRecords(queryFixture(), filter))
}

func TestFilterRecordsPreservesPresortedOrder(t *testing.T) {
	filtered := FilterRecords(queryFixture(), RecordFilter{Search: "tech1"})
	assertIDs(t, filtered, "r4", "r2")
}

func TestListFilteredSortsNewestFirst(t *testing.T) {
	stub := newRecordRepositoryStub()
	fixture := queryFixture()
	// Insert oldest-first so the repository sort is what orders the output.
	for index := len(fixture) - 1; index >= 0; index-- {
		record := fixture[index]
		if err := stub.Create(&record); err != nil {
			t.Fatalf("create fixture record: %v", err)
		}
	}

	service := NewRecordService(stub, time.UTC)
	records, err := service.ListFiltered(RecordFilter{})
	if err != nil {
		t.Fatalf("list filtered: %v", err)
	}
	assertIDs(t, records, "r4", "r3", "r2", "r1")
}
