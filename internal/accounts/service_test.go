package accounts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budgetis-dev/budgetis/internal/model"
)

func record(year int, budget bool) model.Account {
	a := sample()
	a.Year = year
	a.IsBudget = budget
	return a
}

func TestService_Filters(t *testing.T) {
	svc := NewService([]model.Account{
		record(2023, false),
		record(2024, false),
		record(2024, true),
		record(2025, true),
	})

	assert.Equal(t, []int{2023, 2024, 2025}, svc.Years())
	assert.Len(t, svc.All(), 4)
	assert.Len(t, svc.ForYear(2024), 2)
	assert.Len(t, svc.Actuals(2024), 1)
	assert.Len(t, svc.Budgets(2024), 1)
	assert.Empty(t, svc.Actuals(2025))
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "accounts.csv")

	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, WriteAccounts(f, []model.Account{record(2024, false)}))
	require.NoError(t, f.Close())

	svc, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, svc.All(), 1)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}
