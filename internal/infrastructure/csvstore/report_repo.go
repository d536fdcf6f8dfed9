package csvstore

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sailakshmi-repaka/LoanShield/internal/domain/model"
	"github.com/sailakshmi-repaka/LoanShield/internal/domain/port"
)

// Report ledger columns. created_at was added after the first ledger format;
// readers tolerate files without it.
const (
	reportColReporter  = "reporter"
	reportColAppTitle  = "app_name"
	reportColReason    = "reason"
	reportColCreatedAt = "created_at"
)

var reportHeader = []string{reportColReporter, reportColAppTitle, reportColReason, reportColCreatedAt}

// ReportRepository is the CSV-backed community report ledger. All reports are
// held in memory; Append writes through to the file under a single mutex so
// the duplicate check and the file write cannot interleave.
type ReportRepository struct {
	mu      sync.Mutex
	path    string
	reports []*model.Report
}

// NewReportRepository loads the ledger at path. A missing file is an empty
// ledger; it is created on the first append.
func NewReportRepository(path string) (*ReportRepository, error) {
	repo := &ReportRepository{path: path}

	t, err := readTable(path)
	if os.IsNotExist(err) {
		return repo, nil
	}
	if err != nil {
		return nil, err
	}
	if len(t.rows) == 0 {
		return repo, nil
	}
	if err := t.require(path, reportColReporter, reportColAppTitle, reportColReason); err != nil {
		return nil, err
	}

	for _, row := range t.rows {
		createdAt, _ := time.Parse(time.RFC3339, t.get(row, reportColCreatedAt))
		repo.reports = append(repo.reports, model.ReconstructReport(
			uuid.New(),
			t.get(row, reportColReporter),
			t.get(row, reportColAppTitle),
			t.get(row, reportColReason),
			createdAt,
		))
	}
	return repo, nil
}

// Append persists the report, rejecting a second report by the same reporter
// against the same title.
func (r *ReportRepository) Append(_ context.Context, report *model.Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.reports {
		if existing.MatchesReporter(report.Reporter()) && existing.MatchesTitle(report.AppTitle()) {
			return fmt.Errorf("%w: %s has already reported %s", port.ErrDuplicateReport, report.Reporter(), report.AppTitle())
		}
	}

	row := []string{
		report.Reporter(),
		report.AppTitle(),
		report.Reason(),
		report.CreatedAt().Format(time.RFC3339),
	}
	if err := appendRow(r.path, reportHeader, row); err != nil {
		return err
	}

	r.reports = append(r.reports, report)
	return nil
}

// CountByTitle returns the number of reports against the title.
func (r *ReportRepository) CountByTitle(_ context.Context, title string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	count := 0
	for _, report := range r.reports {
		if report.MatchesTitle(title) {
			count++
		}
	}
	return count, nil
}

// Exists reports whether the reporter already filed against the title.
func (r *ReportRepository) Exists(_ context.Context, reporter, title string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, report := range r.reports {
		if report.MatchesReporter(reporter) && report.MatchesTitle(title) {
			return true, nil
		}
	}
	return false, nil
}

// ListByTitle returns the reports against the title in file order.
func (r *ReportRepository) ListByTitle(_ context.Context, title string) ([]*model.Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []*model.Report
	for _, report := range r.reports {
		if report.MatchesTitle(title) {
			matched = append(matched, report)
		}
	}
	return matched, nil
}
