package schema

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// DateLayout is the ISO 8601 calendar date format used by all DATE columns.
const DateLayout = "2006-01-02"

// ViolationKind classifies a validation violation.
type ViolationKind string

const (
	// KindFieldValidation covers type, length, pattern and vocabulary
	// violations on a single column value.
	KindFieldValidation ViolationKind = "FIELD_VALIDATION"
	// KindCrossFieldRule covers table-specific rules spanning columns.
	KindCrossFieldRule ViolationKind = "CROSS_FIELD_RULE"
	// KindDanglingReference covers foreign keys pointing at rows that
	// do not exist in the referenced table.
	KindDanglingReference ViolationKind = "DANGLING_REFERENCE"
)

// Violation is one validation failure on a candidate row.
type Violation struct {
	Column   string
	Kind     ViolationKind
	Message  string
	RefTable string // referenced table, set for dangling references
}

func (v Violation) String() string {
	if v.Column == "" {
		return v.Message
	}
	return v.Column + ": " + v.Message
}

// ValidationResult collects every violation found on a candidate row.
// An empty violation list means the row is acceptable.
type ValidationResult struct {
	TableID    string
	Violations []Violation
}

// OK reports whether the row passed validation.
func (r ValidationResult) OK() bool {
	return len(r.Violations) == 0
}

func (r *ValidationResult) add(v Violation) {
	r.Violations = append(r.Violations, v)
}

// NormalizeRow returns a copy of row with values trimmed and
// table-specific defaults applied. For the using-entity table an empty
// branch code is replaced with the NOT_APPLICABLE sentinel when the
// entity is not a branch. The input row is never modified.
func NormalizeRow(tableID string, row Row) (Row, error) {
	t, err := Describe(tableID)
	if err != nil {
		return nil, err
	}
	return normalizeRow(t, row), nil
}

func normalizeRow(t *Table, row Row) Row {
	norm := make(Row, len(row))
	for k, v := range row {
		norm[k] = strings.TrimSpace(v)
	}
	if t.ID == TableUsingEntity {
		if isBranch, err := strconv.ParseBool(norm["is_branch"]); err == nil && !isBranch {
			if norm["branch_code"] == "" {
				norm["branch_code"] = NotApplicable
			}
		}
	}
	return norm
}

// ValidateRow checks a candidate row against the table's schema and
// returns every violation found: required columns first, then per-column
// type, length, pattern and vocabulary checks in schema order, then
// unknown columns, then table-specific cross-field rules. The check is
// pure; validating the same row twice yields the same result. The only
// error returned is ErrUnknownTable.
func ValidateRow(tableID string, row Row) (ValidationResult, error) {
	t, err := Describe(tableID)
	if err != nil {
		return ValidationResult{}, err
	}

	norm := normalizeRow(t, row)
	res := ValidationResult{TableID: t.ID}

	for _, c := range t.Columns {
		v := norm[c.Name]
		if v == "" {
			if c.Required {
				res.add(Violation{Column: c.Name, Kind: KindFieldValidation, Message: "required value is missing"})
			}
			continue
		}
		validateValue(&c, v, &res)
	}

	for _, name := range unknownColumns(t, norm) {
		res.add(Violation{Column: name, Kind: KindFieldValidation, Message: "column is not part of the table"})
	}

	if rule, ok := crossFieldRules[t.ID]; ok {
		rule(norm, &res)
	}

	return res, nil
}

func validateValue(c *Column, v string, res *ValidationResult) {
	fail := func(format string, args ...any) {
		res.add(Violation{Column: c.Name, Kind: KindFieldValidation, Message: fmt.Sprintf(format, args...)})
	}

	switch c.Type {
	case TypeString:
		// Length bounds count characters, not bytes, so multi-byte
		// names within the limit are not rejected.
		n := utf8.RuneCountInString(v)
		if c.MinLen > 0 && n < c.MinLen {
			fail("must be at least %d characters", c.MinLen)
		}
		if c.MaxLen > 0 && n > c.MaxLen {
			fail("must be no more than %d characters", c.MaxLen)
		}
	case TypeLEI:
		if !IsLEI(v) {
			fail("must be a 20-character LEI matching %s", LEIPattern)
		}
	case TypeCountry:
		if !IsCountryCode(v) {
			fail("%q is not an ISO 3166-1 alpha-2 country code", v)
		}
	case TypeCurrency:
		if !IsCurrencyCode(v) {
			fail("%q is not an ISO 4217 currency code", v)
		}
	case TypeDate:
		if _, err := time.Parse(DateLayout, v); err != nil {
			fail("%q is not a date in format %s", v, DateLayout)
		}
	case TypeBool:
		if _, err := strconv.ParseBool(v); err != nil {
			fail("%q is not a boolean value", v)
		}
	case TypeInt:
		if _, err := strconv.Atoi(v); err != nil {
			fail("%q is not an integer", v)
		}
	case TypeMonetary:
		d, err := decimal.NewFromString(v)
		if err != nil {
			fail("%q is not a decimal amount", v)
			return
		}
		if d.Exponent() < -2 {
			fail("amount %q has more than 2 decimal places", v)
		}
		if c.NonNegative && d.IsNegative() {
			fail("amount must not be negative")
		}
	}

	if len(c.Enum) > 0 && !contains(c.Enum, v) {
		fail("%q is not one of %s", v, strings.Join(c.Enum, ", "))
	}
}

func unknownColumns(t *Table, row Row) []string {
	var unknown []string
	for name := range row {
		if t.Column(name) == nil {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	return unknown
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

// crossFieldRules holds the table-specific rules that span columns.
// Rules run on the normalized row after the per-column checks and must
// only append violations.
var crossFieldRules = map[string]func(Row, *ValidationResult){
	TableUsingEntity: usingEntityBranchRule,
}

// usingEntityBranchRule enforces consistency between the is_branch flag
// and the branch identification code: a branch must carry a real code,
// a non-branch must carry the NOT_APPLICABLE sentinel.
func usingEntityBranchRule(row Row, res *ValidationResult) {
	isBranch, err := strconv.ParseBool(row["is_branch"])
	if err != nil {
		// The flag itself failed the per-column check, nothing to relate.
		return
	}
	branchCode := row["branch_code"]
	if isBranch {
		if branchCode == "" || branchCode == NotApplicable {
			res.add(Violation{Column: "branch_code", Kind: KindCrossFieldRule,
				Message: "branch identification code is required when the entity is a branch"})
		}
		return
	}
	if branchCode != NotApplicable {
		res.add(Violation{Column: "branch_code", Kind: KindCrossFieldRule,
			Message: "branch identification code must not be provided when the entity is not a branch"})
	}
}
