// Package accounts holds the materialized account snapshot the engine
// consumes: a CSV codec for already-parsed records and an in-memory lookup
// service. Import pipelines and column mapping live outside this module.
package accounts

import (
	"fmt"
	"os"
	"sort"

	"github.com/budgetis-dev/budgetis/internal/model"
)

// Service provides in-memory lookup over an account snapshot.
type Service struct {
	accounts []model.Account
}

// NewService creates a Service from a slice of accounts.
func NewService(accounts []model.Account) *Service {
	return &Service{accounts: accounts}
}

// Load reads an accounts snapshot CSV from disk.
func Load(path string) (*Service, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening accounts snapshot: %w", err)
	}
	defer f.Close()

	accts, err := ReadAccounts(f)
	if err != nil {
		return nil, fmt.Errorf("reading accounts snapshot %s: %w", path, err)
	}
	return NewService(accts), nil
}

// All returns every record in the snapshot.
func (s *Service) All() []model.Account {
	return s.accounts
}

// Years returns the distinct years present, ascending.
func (s *Service) Years() []int {
	seen := make(map[int]bool)
	var years []int
	for _, a := range s.accounts {
		if !seen[a.Year] {
			seen[a.Year] = true
			years = append(years, a.Year)
		}
	}
	sort.Ints(years)
	return years
}

// ForYear returns all records of a year, both actual and budget.
func (s *Service) ForYear(year int) []model.Account {
	return s.filter(func(a model.Account) bool { return a.Year == year })
}

// Actuals returns the non-budget records of a year.
func (s *Service) Actuals(year int) []model.Account {
	return s.filter(func(a model.Account) bool { return a.Year == year && !a.IsBudget })
}

// Budgets returns the budget records of a year.
func (s *Service) Budgets(year int) []model.Account {
	return s.filter(func(a model.Account) bool { return a.Year == year && a.IsBudget })
}

func (s *Service) filter(keep func(model.Account) bool) []model.Account {
	var result []model.Account
	for _, a := range s.accounts {
		if keep(a) {
			result = append(result, a)
		}
	}
	return result
}
