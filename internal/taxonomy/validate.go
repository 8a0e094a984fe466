package taxonomy

import (
	"fmt"
	"strconv"

	"github.com/budgetis-dev/budgetis/internal/code"
	"github.com/budgetis-dev/budgetis/internal/model"
)

// ValidationError describes a taxonomy table defect. Any such defect is a
// startup-time fatal configuration error: a broken table would silently
// corrupt every report.
type ValidationError struct {
	Axis        string
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("taxonomy %s axis: %s", e.Axis, e.Description)
}

// probeFunction never appears in any explicit code list, so pure
// nature-range probes cannot accidentally hit a code rule.
const probeFunction = -1

// Validate checks the static tables: ranges are well-formed and no account
// can match two categories on the same axis. Call once at startup.
func Validate() []ValidationError {
	var errs []ValidationError
	errs = append(errs, validateAxis("revenue", RevenueCategories)...)

	var chargeCats []*Category
	for _, h := range ChargeHubs {
		chargeCats = append(chargeCats, h.Categories...)
	}
	errs = append(errs, validateAxis("charge", chargeCats)...)
	return errs
}

func validateAxis(axis string, cats []*Category) []ValidationError {
	var errs []ValidationError

	for _, c := range cats {
		if c.natures != nil && c.natures.Lo > c.natures.Hi {
			errs = append(errs, ValidationError{
				Axis:        axis,
				Description: fmt.Sprintf("category %q has inverted range [%d, %d]", c.Key, c.natures.Lo, c.natures.Hi),
			})
		}
	}

	// Probe the whole nature space with a function no code list mentions:
	// two range/set rules overlapping is a partition violation.
	for nature := 0; nature < 1000; nature++ {
		probe := model.Account{Function: probeFunction, Nature: nature}
		errs = append(errs, checkExclusive(axis, cats, probe)...)
	}

	// Probe every explicit code as a concrete account so code-vs-range and
	// code-vs-code collisions surface too.
	for _, c := range cats {
		for _, cc := range append(append([]code.Code{}, c.codes...), c.excludeCodes...) {
			probe, ok := accountForCode(cc)
			if !ok {
				continue
			}
			errs = append(errs, checkExclusive(axis, cats, probe)...)
		}
	}

	return dedupe(errs)
}

func checkExclusive(axis string, cats []*Category, probe model.Account) []ValidationError {
	var matched []string
	for _, c := range cats {
		if c.Matches(probe) {
			matched = append(matched, c.Key)
		}
	}
	if len(matched) <= 1 {
		return nil
	}
	return []ValidationError{{
		Axis:        axis,
		Description: fmt.Sprintf("account %s matches %d categories: %v", probe.FullCode(), len(matched), matched),
	}}
}

func accountForCode(c code.Code) (model.Account, bool) {
	a := model.Account{Function: c.Function, Nature: c.Nature}
	if c.SubAccount != "" {
		sub, err := strconv.Atoi(c.SubAccount)
		if err != nil {
			// Alphanumeric sub-accounts have no integer account form.
			return model.Account{}, false
		}
		a.SubAccount = sub
	}
	return a, true
}

func dedupe(errs []ValidationError) []ValidationError {
	seen := make(map[string]bool, len(errs))
	var out []ValidationError
	for _, e := range errs {
		k := e.Axis + "|" + e.Description
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, e)
	}
	return out
}
