package schema

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	leiBank   = "5299000J2N45DDNE4Y28"
	leiParent = "529900W18LQJJN6SJ336"
)

func validRegisterEntityRow() Row {
	return Row{
		"lei":              leiBank,
		"name":             "Example Bank AG",
		"country":          "DE",
		"type":             "BANK",
		"last_update_date": "2025-06-30",
		"integration_date": "2024-01-17",
	}
}

func TestValidateRowAccepted(t *testing.T) {
	res, err := ValidateRow(TableRegisterEntity, validRegisterEntityRow())
	require.NoError(t, err)
	assert.True(t, res.OK(), "unexpected violations: %v", res.Violations)
}

func TestValidateRowUnknownTable(t *testing.T) {
	_, err := ValidateRow("no_such_table", Row{})
	assert.ErrorIs(t, err, ErrUnknownTable)
}

func TestValidateRowFieldViolations(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(Row)
		column  string
		message string
	}{
		{"lei too short", func(r Row) { r["lei"] = "ABC123" }, "lei", "LEI"},
		{"lei lowercase", func(r Row) { r["lei"] = "5299000j2n45ddne4y28" }, "lei", "LEI"},
		{"lei letters in check digits", func(r Row) { r["lei"] = "5299000J2N45DDNE4YXX" }, "lei", "LEI"},
		{"unknown country", func(r Row) { r["country"] = "ZZ" }, "country", "country code"},
		{"lowercase country", func(r Row) { r["country"] = "us" }, "country", "country code"},
		{"unknown currency", func(r Row) { r["currency"] = "XYZ" }, "currency", "currency code"},
		{"bad date", func(r Row) { r["integration_date"] = "17/01/2024" }, "integration_date", "date"},
		{"three decimal places", func(r Row) { r["total_assets"] = "100.999" }, "total_assets", "decimal places"},
		{"negative assets", func(r Row) { r["total_assets"] = "-5.00" }, "total_assets", "negative"},
		{"not a number", func(r Row) { r["total_assets"] = "lots" }, "total_assets", "decimal"},
		{"entity type outside vocabulary", func(r Row) { r["type"] = "HEDGE_FUND" }, "type", "not one of"},
		{"parent lei malformed", func(r Row) { r["parent_lei"] = "NOT-A-LEI" }, "parent_lei", "LEI"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			row := validRegisterEntityRow()
			tc.mutate(row)
			res, err := ValidateRow(TableRegisterEntity, row)
			require.NoError(t, err)
			require.Len(t, res.Violations, 1, "violations: %v", res.Violations)
			v := res.Violations[0]
			assert.Equal(t, tc.column, v.Column)
			assert.Equal(t, KindFieldValidation, v.Kind)
			assert.Contains(t, v.Message, tc.message)
		})
	}
}

func TestStringLengthCountsCharactersNotBytes(t *testing.T) {
	// 255 two-byte runes: within the 255-character bound for name even
	// though the UTF-8 encoding is 510 bytes.
	row := validRegisterEntityRow()
	row["name"] = strings.Repeat("ü", 255)
	res, err := ValidateRow(TableRegisterEntity, row)
	require.NoError(t, err)
	assert.True(t, res.OK(), "unexpected violations: %v", res.Violations)

	row["name"] = strings.Repeat("ü", 256)
	res, err = ValidateRow(TableRegisterEntity, row)
	require.NoError(t, err)
	require.Len(t, res.Violations, 1)
	assert.Equal(t, "name", res.Violations[0].Column)
	assert.Contains(t, res.Violations[0].Message, "no more than 255 characters")
}

func TestValidateRowAcceptedValues(t *testing.T) {
	row := validRegisterEntityRow()
	row["country"] = "US"
	row["currency"] = "EUR"
	row["total_assets"] = "100.50"
	row["parent_lei"] = leiParent
	res, err := ValidateRow(TableRegisterEntity, row)
	require.NoError(t, err)
	assert.True(t, res.OK(), "unexpected violations: %v", res.Violations)
}

func TestValidateRowReportsEveryViolation(t *testing.T) {
	row := validRegisterEntityRow()
	row["lei"] = "BAD"
	row["country"] = "ZZ"
	delete(row, "name")
	row["total_assets"] = "1.234"

	res, err := ValidateRow(TableRegisterEntity, row)
	require.NoError(t, err)
	require.Len(t, res.Violations, 4)

	byColumn := map[string]Violation{}
	for _, v := range res.Violations {
		byColumn[v.Column] = v
	}
	assert.Contains(t, byColumn, "lei")
	assert.Contains(t, byColumn, "country")
	assert.Contains(t, byColumn, "name")
	assert.Contains(t, byColumn, "total_assets")
	assert.Equal(t, "required value is missing", byColumn["name"].Message)
}

func TestValidateRowIdempotent(t *testing.T) {
	row := validRegisterEntityRow()
	row["lei"] = "BAD"
	first, err := ValidateRow(TableRegisterEntity, row)
	require.NoError(t, err)
	second, err := ValidateRow(TableRegisterEntity, row)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestValidateRowUnknownColumn(t *testing.T) {
	row := validRegisterEntityRow()
	row["favourite_colour"] = "blue"
	res, err := ValidateRow(TableRegisterEntity, row)
	require.NoError(t, err)
	require.Len(t, res.Violations, 1)
	assert.Equal(t, "favourite_colour", res.Violations[0].Column)
	assert.Contains(t, res.Violations[0].Message, "not part of the table")
}

func validUsingEntityRow() Row {
	return Row{
		"reference_number": "CTR-2024-0001",
		"lei":              leiBank,
		"is_branch":        "false",
		"branch_code":      NotApplicable,
	}
}

func TestUsingEntityBranchConsistency(t *testing.T) {
	cases := []struct {
		name       string
		isBranch   string
		branchCode string
		wantOK     bool
	}{
		{"not a branch with sentinel", "false", NotApplicable, true},
		{"not a branch with empty code normalized", "false", "", true},
		{"not a branch with real code", "false", "XYZ", false},
		{"branch with code", "true", "BR1", true},
		{"branch with empty code", "true", "", false},
		{"branch with sentinel", "true", NotApplicable, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			row := validUsingEntityRow()
			row["is_branch"] = tc.isBranch
			row["branch_code"] = tc.branchCode
			res, err := ValidateRow(TableUsingEntity, row)
			require.NoError(t, err)
			if tc.wantOK {
				assert.True(t, res.OK(), "unexpected violations: %v", res.Violations)
				return
			}
			require.NotEmpty(t, res.Violations)
			var crossField bool
			for _, v := range res.Violations {
				if v.Kind == KindCrossFieldRule && v.Column == "branch_code" {
					crossField = true
				}
			}
			assert.True(t, crossField, "expected a cross-field violation on branch_code, got %v", res.Violations)
		})
	}
}

func TestNormalizeRowBranchSentinel(t *testing.T) {
	row := Row{
		"reference_number": " CTR-2024-0001 ",
		"lei":              leiBank,
		"is_branch":        "false",
		"branch_code":      "",
	}
	norm, err := NormalizeRow(TableUsingEntity, row)
	require.NoError(t, err)
	assert.Equal(t, NotApplicable, norm["branch_code"])
	assert.Equal(t, "CTR-2024-0001", norm["reference_number"], "values are trimmed")
	assert.Equal(t, "", row["branch_code"], "input row is untouched")
}
