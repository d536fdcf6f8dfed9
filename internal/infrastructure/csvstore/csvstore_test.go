package csvstore_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sailakshmi-repaka/LoanShield/internal/domain/model"
	"github.com/sailakshmi-repaka/LoanShield/internal/domain/port"
	"github.com/sailakshmi-repaka/LoanShield/internal/infrastructure/csvstore"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// --- Registry ---

func TestRegistryRepository_LoadsEntries(t *testing.T) {
	path := writeFile(t, t.TempDir(), "registry.csv",
		"nbfc_name,playstore_name,app_id,type\n"+
			"QuickCash Finance Ltd,QuickCash Loan,com.quickcash.loan,NBFC\n"+
			"Sunrise Credit Pvt Ltd,Sunrise EMI,com.sunrise.emi,NBFC-P2P\n")

	repo := csvstore.NewRegistryRepository(path, testLogger())

	entries, err := repo.Entries(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "QuickCash Finance Ltd", entries[0].LenderName)
	assert.Equal(t, "com.sunrise.emi", entries[1].AppID)
	assert.Equal(t, "NBFC-P2P", entries[1].LenderType)
}

func TestRegistryRepository_NormalizesHeaderCase(t *testing.T) {
	path := writeFile(t, t.TempDir(), "registry.csv",
		" NBFC_Name , Playstore_Name , App_ID , Type \n"+
			"QuickCash Finance Ltd,QuickCash Loan,com.quickcash.loan,NBFC\n")

	repo := csvstore.NewRegistryRepository(path, testLogger())

	entries, err := repo.Entries(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "com.quickcash.loan", entries[0].AppID)
}

func TestRegistryRepository_MissingFileYieldsEmptyRegistry(t *testing.T) {
	repo := csvstore.NewRegistryRepository(filepath.Join(t.TempDir(), "absent.csv"), testLogger())

	entries, err := repo.Entries(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRegistryRepository_MissingColumnYieldsEmptyRegistry(t *testing.T) {
	path := writeFile(t, t.TempDir(), "registry.csv",
		"lender,app\nQuickCash Finance Ltd,com.quickcash.loan\n")

	repo := csvstore.NewRegistryRepository(path, testLogger())

	entries, err := repo.Entries(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

// --- Report ledger ---

func mustReport(t *testing.T, reporter, title, reason string) *model.Report {
	t.Helper()
	report, err := model.NewReport(reporter, title, reason)
	require.NoError(t, err)
	return report
}

func TestReportRepository_AppendAndQuery(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports.csv")
	repo, err := csvstore.NewReportRepository(path)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, repo.Append(ctx, mustReport(t, "asha", "QuickCash Loan", "Harassing calls")))
	require.NoError(t, repo.Append(ctx, mustReport(t, "ravi", "QuickCash Loan", "Contact scraping")))
	require.NoError(t, repo.Append(ctx, mustReport(t, "asha", "Other Loan", "Hidden fees")))

	count, err := repo.CountByTitle(ctx, "quickcash loan")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	exists, err := repo.Exists(ctx, "ASHA", "quickcash LOAN")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.Exists(ctx, "ravi", "Other Loan")
	require.NoError(t, err)
	assert.False(t, exists)

	reports, err := repo.ListByTitle(ctx, "QuickCash Loan")
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, "asha", reports[0].Reporter())
	assert.Equal(t, "ravi", reports[1].Reporter())
}

func TestReportRepository_DuplicateRejected(t *testing.T) {
	repo, err := csvstore.NewReportRepository(filepath.Join(t.TempDir(), "reports.csv"))
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, repo.Append(ctx, mustReport(t, "asha", "QuickCash Loan", "Harassing calls")))

	err = repo.Append(ctx, mustReport(t, "Asha", "quickcash loan", "Again"))

	assert.ErrorIs(t, err, port.ErrDuplicateReport)
}

// TestReportRepository_ConcurrentDuplicateAppend races goroutines submitting
// the same reporter/title pair. The ledger mutex must let exactly one through;
// the rest see the duplicate rejection and nothing doubles up in the file.
func TestReportRepository_ConcurrentDuplicateAppend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports.csv")
	repo, err := csvstore.NewReportRepository(path)
	require.NoError(t, err)

	ctx := context.Background()
	const goroutines = 50

	reports := make([]*model.Report, goroutines)
	for i := range reports {
		reports[i] = mustReport(t, "asha", "QuickCash Loan", "Harassing calls")
	}

	errs := make([]error, goroutines)
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func(idx int) {
			defer wg.Done()
			errs[idx] = repo.Append(ctx, reports[idx])
		}(i)
	}
	wg.Wait()

	successes := 0
	for i, err := range errs {
		if err == nil {
			successes++
			continue
		}
		assert.ErrorIs(t, err, port.ErrDuplicateReport, "goroutine %d", i)
	}
	assert.Equal(t, 1, successes)

	count, err := repo.CountByTitle(ctx, "QuickCash Loan")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// One header row plus exactly one record on disk.
	reloaded, err := csvstore.NewReportRepository(path)
	require.NoError(t, err)
	count, err = reloaded.CountByTitle(ctx, "QuickCash Loan")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestReportRepository_PersistsAcrossReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports.csv")
	repo, err := csvstore.NewReportRepository(path)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, repo.Append(ctx, mustReport(t, "asha", "QuickCash Loan", "Harassing calls")))

	reloaded, err := csvstore.NewReportRepository(path)
	require.NoError(t, err)

	count, err := reloaded.CountByTitle(ctx, "QuickCash Loan")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	reports, err := reloaded.ListByTitle(ctx, "QuickCash Loan")
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.False(t, reports[0].CreatedAt().IsZero())
}

func TestReportRepository_LoadsLegacyFileWithoutTimestamps(t *testing.T) {
	path := writeFile(t, t.TempDir(), "reports.csv",
		"reporter,app_name,reason\nasha,QuickCash Loan,Harassing calls\n")

	repo, err := csvstore.NewReportRepository(path)
	require.NoError(t, err)

	count, err := repo.CountByTitle(context.Background(), "QuickCash Loan")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

// --- Users ---

func TestUserRepository_SaveAndFind(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.csv")
	repo, err := csvstore.NewUserRepository(path)
	require.NoError(t, err)

	user, err := model.NewUser("Asha", "Asha@Example.com", "$2a$10$fakehash")
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, repo.Save(ctx, user))

	found, err := repo.FindByEmail(ctx, "ASHA@example.COM")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Asha", found.Name())

	absent, err := repo.FindByEmail(ctx, "ghost@example.com")
	require.NoError(t, err)
	assert.Nil(t, absent)
}

func TestUserRepository_DuplicateEmailRejected(t *testing.T) {
	repo, err := csvstore.NewUserRepository(filepath.Join(t.TempDir(), "users.csv"))
	require.NoError(t, err)

	ctx := context.Background()
	first, err := model.NewUser("Asha", "asha@example.com", "$2a$10$fakehash")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, first))

	second, err := model.NewUser("Other Asha", "asha@example.com", "$2a$10$otherhash")
	require.NoError(t, err)

	assert.Error(t, repo.Save(ctx, second))
}

func TestUserRepository_PersistsAcrossReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.csv")
	repo, err := csvstore.NewUserRepository(path)
	require.NoError(t, err)

	user, err := model.NewUser("Asha", "asha@example.com", "$2a$10$fakehash")
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), user))

	reloaded, err := csvstore.NewUserRepository(path)
	require.NoError(t, err)

	found, err := reloaded.FindByEmail(context.Background(), "asha@example.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "$2a$10$fakehash", found.PasswordHash())
}
