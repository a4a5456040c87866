package services

import (
	"errors"
	"sort"

	"github.com/hanbit-dev/carebond/internal/models"
)

var ErrReportNotFound = errors.New("care report not found")

const (
	ReportSortInsertion = ""
	ReportSortDateDesc  = "date_desc"
)

// ReportStore holds at most one report per id, in insertion order. Upsert
// replaces the whole aggregate; there is no field-level merge, so concurrent
// writers of the same id are last-write-wins.
type ReportStore struct {
	order   []string
	reports map[string]models.CareReport
}

func NewReportStore() *ReportStore {
	return &ReportStore{
		order:   make([]string, 0),
		reports: make(map[string]models.CareReport),
	}
}

func (store *ReportStore) Upsert(report models.CareReport) {
	if _, exists := store.reports[report.ID]; !exists {
		store.order = append(store.order, report.ID)
	}
	store.reports[report.ID] = CloneCareReport(report)
}

func (store *ReportStore) Remove(id string) {
	if _, exists := store.reports[id]; !exists {
		return
	}
	delete(store.reports, id)
	for index, storedID := range store.order {
		if storedID == id {
			store.order = append(store.order[:index], store.order[index+1:]...)
			break
		}
	}
}

func (store *ReportStore) Get(id string) (models.CareReport, error) {
	report, ok := store.reports[id]
	if !ok {
		return models.CareReport{}, ErrReportNotFound
	}
	return CloneCareReport(report), nil
}

func (store *ReportStore) Len() int {
	return len(store.order)
}

// List returns all reports. The underlying order stays insertion order;
// sorting only shapes the returned slice.
func (store *ReportStore) List(sortBy string) []models.CareReport {
	reports := make([]models.CareReport, 0, len(store.order))
	for _, id := range store.order {
		reports = append(reports, CloneCareReport(store.reports[id]))
	}

	if sortBy == ReportSortDateDesc {
		sort.SliceStable(reports, func(left int, right int) bool {
			return reports[left].Date.After(reports[right].Date)
		})
	}

	return reports
}
