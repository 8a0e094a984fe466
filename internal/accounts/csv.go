package accounts

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/budgetis-dev/budgetis/internal/model"
)

// Header is the CSV header for an accounts snapshot.
const Header = "year,function,nature,sub_account,label,group_code,group_label,supergroup_code,supergroup_label,metagroup_code,metagroup_label,is_budget,charges,revenues,comment_count"

const (
	numFields    = 15
	colYear      = 0
	colFunction  = 1
	colNature    = 2
	colSub       = 3
	colLabel     = 4
	colGroupCode = 5
	colGroupLbl  = 6
	colSuperCode = 7
	colSuperLbl  = 8
	colMetaCode  = 9
	colMetaLbl   = 10
	colIsBudget  = 11
	colCharges   = 12
	colRevenues  = 13
	colComments  = 14
)

// ReadAccounts reads all account records from a snapshot CSV reader.
func ReadAccounts(r io.Reader) ([]model.Account, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading accounts CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	// Skip header row.
	var accounts []model.Account
	for i, rec := range records[1:] {
		a, err := UnmarshalAccount(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		accounts = append(accounts, a)
	}
	return accounts, nil
}

// WriteAccounts writes account records to a snapshot CSV writer (including
// header).
func WriteAccounts(w io.Writer, accounts []model.Account) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, a := range accounts {
		if err := cw.Write(MarshalAccount(a)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// UnmarshalAccount converts a CSV row to an Account.
func UnmarshalAccount(rec []string) (model.Account, error) {
	if len(rec) != numFields {
		return model.Account{}, fmt.Errorf("expected %d fields, got %d", numFields, len(rec))
	}

	year, err := strconv.Atoi(rec[colYear])
	if err != nil {
		return model.Account{}, fmt.Errorf("invalid year %q: %w", rec[colYear], err)
	}
	function, err := strconv.Atoi(rec[colFunction])
	if err != nil {
		return model.Account{}, fmt.Errorf("invalid function %q: %w", rec[colFunction], err)
	}
	nature, err := strconv.Atoi(rec[colNature])
	if err != nil {
		return model.Account{}, fmt.Errorf("invalid nature %q: %w", rec[colNature], err)
	}

	sub := 0
	if rec[colSub] != "" {
		sub, err = strconv.Atoi(rec[colSub])
		if err != nil {
			return model.Account{}, fmt.Errorf("invalid sub_account %q: %w", rec[colSub], err)
		}
	}

	isBudget, err := strconv.ParseBool(rec[colIsBudget])
	if err != nil {
		return model.Account{}, fmt.Errorf("invalid is_budget %q: %w", rec[colIsBudget], err)
	}

	charges, err := decimal.NewFromString(rec[colCharges])
	if err != nil {
		return model.Account{}, fmt.Errorf("invalid charges %q: %w", rec[colCharges], err)
	}
	revenues, err := decimal.NewFromString(rec[colRevenues])
	if err != nil {
		return model.Account{}, fmt.Errorf("invalid revenues %q: %w", rec[colRevenues], err)
	}

	comments := 0
	if rec[colComments] != "" {
		comments, err = strconv.Atoi(rec[colComments])
		if err != nil {
			return model.Account{}, fmt.Errorf("invalid comment_count %q: %w", rec[colComments], err)
		}
	}

	return model.Account{
		Year:         year,
		Function:     function,
		Nature:       nature,
		SubAccount:   sub,
		Label:        rec[colLabel],
		Group:        groupChain(rec),
		IsBudget:     isBudget,
		Charges:      charges,
		Revenues:     revenues,
		CommentCount: comments,
	}, nil
}

// groupChain assembles the group -> super-group -> meta-group chain from a
// row. Levels with an empty code are absent; an incomplete chain is valid
// data (the hierarchy builder skips such accounts).
func groupChain(rec []string) *model.Group {
	if rec[colGroupCode] == "" {
		return nil
	}
	g := &model.Group{Code: rec[colGroupCode], Label: rec[colGroupLbl]}
	if rec[colSuperCode] == "" {
		return g
	}
	g.Parent = &model.Group{Code: rec[colSuperCode], Label: rec[colSuperLbl]}
	if rec[colMetaCode] == "" {
		return g
	}
	g.Parent.Parent = &model.Group{Code: rec[colMetaCode], Label: rec[colMetaLbl]}
	return g
}

// MarshalAccount converts an Account to a CSV row.
func MarshalAccount(a model.Account) []string {
	row := make([]string, numFields)
	row[colYear] = strconv.Itoa(a.Year)
	row[colFunction] = strconv.Itoa(a.Function)
	row[colNature] = strconv.Itoa(a.Nature)
	if a.SubAccount != 0 {
		row[colSub] = strconv.Itoa(a.SubAccount)
	}
	row[colLabel] = a.Label
	if g := a.Group; g != nil {
		row[colGroupCode] = g.Code
		row[colGroupLbl] = g.Label
		if s := g.Parent; s != nil {
			row[colSuperCode] = s.Code
			row[colSuperLbl] = s.Label
			if m := s.Parent; m != nil {
				row[colMetaCode] = m.Code
				row[colMetaLbl] = m.Label
			}
		}
	}
	row[colIsBudget] = strconv.FormatBool(a.IsBudget)
	row[colCharges] = a.Charges.StringFixed(2)
	row[colRevenues] = a.Revenues.StringFixed(2)
	row[colComments] = strconv.Itoa(a.CommentCount)
	return row
}
