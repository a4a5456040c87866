package services

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/hanbit-dev/carebond/internal/models"
)

func TestReportStoreUpsertThenGetReturnsDeepEqualValue(t *testing.T) {
	store := NewReportStore()
	report := NewCareReport(reportDate(2024, time.November, 30), []string{"Donepezil"})
	report.SpecialNote = "메모"

	store.Upsert(report)

	loaded, err := store.Get(report.ID)
	if err != nil {
		t.Fatalf("get report: %v", err)
	}
	if !reflect.DeepEqual(loaded, report) {
		t.Fatalf("expected deep-equal report, got %+v", loaded)
	}

	// Mutating the loaded copy must not leak into the store.
	loaded.Medications["Donepezil"] = models.TimeOfDayChecks{Evening: true}
	fresh, err := store.Get(report.ID)
	if err != nil {
		t.Fatalf("get report again: %v", err)
	}
	if fresh.Medications["Donepezil"].Evening {
		t.Fatal("store contents must be isolated from returned copies")
	}
}

func TestReportStoreUpsertReplacesWholeAggregate(t *testing.T) {
	store := NewReportStore()
	report := NewCareReport(reportDate(2024, time.November, 30), []string{"A"})
	store.Upsert(report)

	replacement := NewCareReport(reportDate(2024, time.December, 1), []string{"B"})
	replacement.ID = report.ID
	store.Upsert(replacement)

	if store.Len() != 1 {
		t.Fatalf("expected one report after replace, got %d", store.Len())
	}
	loaded, err := store.Get(report.ID)
	if err != nil {
		t.Fatalf("get report: %v", err)
	}
	if _, kept := loaded.Medications["A"]; kept {
		t.Fatal("upsert must replace the whole aggregate, not merge fields")
	}
	if _, present := loaded.Medications["B"]; !present {
		t.Fatal("replacement medication set missing")
	}
}

func TestReportStoreRemoveThenGetSignalsNotFound(t *testing.T) {
	store := NewReportStore()
	report := NewCareReport(reportDate(2024, time.November, 30), nil)
	store.Upsert(report)

	store.Remove(report.ID)
	if _, err := store.Get(report.ID); !errors.Is(err, ErrReportNotFound) {
		t.Fatalf("expected ErrReportNotFound, got %v", err)
	}

	// Removing an absent id is a no-op, not an error.
	store.Remove("missing-id")
	if store.Len() != 0 {
		t.Fatalf("expected empty store, got %d entries", store.Len())
	}
}

func TestReportStoreListKeepsInsertionOrderAndSortsByDateOnRequest(t *testing.T) {
	store := NewReportStore()
	older := NewCareReport(reportDate(2024, time.November, 28), nil)
	newer := NewCareReport(reportDate(2024, time.November, 30), nil)
	middle := NewCareReport(reportDate(2024, time.November, 29), nil)

	store.Upsert(older)
	store.Upsert(newer)
	store.Upsert(middle)

	inserted := store.List(ReportSortInsertion)
	if len(inserted) != 3 {
		t.Fatalf("expected 3 reports, got %d", len(inserted))
	}
	if inserted[0].ID != older.ID || inserted[1].ID != newer.ID || inserted[2].ID != middle.ID {
		t.Fatal("default listing must keep insertion order")
	}

	byDate := store.List(ReportSortDateDesc)
	if byDate[0].ID != newer.ID || byDate[1].ID != middle.ID || byDate[2].ID != older.ID {
		t.Fatal("date_desc listing must order newest first")
	}

	// Sorting shapes only the returned slice; the store order is untouched.
	again := store.List(ReportSortInsertion)
	if again[0].ID != older.ID {
		t.Fatal("underlying insertion order must survive a sorted listing")
	}
}
