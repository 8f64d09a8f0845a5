package schema

import (
	"context"
	"errors"
	"testing"
)

// recordingLookup answers from a fixed set of keys and records what it
// was asked for.
type recordingLookup struct {
	known map[string]bool
	calls []string
}

func (l *recordingLookup) lookup(_ context.Context, tableID string, key Row) (bool, error) {
	for col, v := range key {
		call := tableID + "." + col + "=" + v
		l.calls = append(l.calls, call)
		return l.known[call], nil
	}
	return false, nil
}

func TestCheckReferentialIntegritySatisfied(t *testing.T) {
	lookup := &recordingLookup{known: map[string]bool{
		"general_information.reference_number=CTR-2024-0001": true,
		"register_entity.lei=" + leiBank:                     true,
	}}

	row := validUsingEntityRow()
	res, err := CheckReferentialIntegrity(context.Background(), TableUsingEntity, row, lookup.lookup)
	if err != nil {
		t.Fatalf("CheckReferentialIntegrity returned error: %v", err)
	}
	if !res.OK() {
		t.Fatalf("expected no violations, got %v", res.Violations)
	}
	if len(lookup.calls) != 2 {
		t.Fatalf("expected 2 lookups, got %v", lookup.calls)
	}
}

func TestCheckReferentialIntegrityDangling(t *testing.T) {
	lookup := &recordingLookup{known: map[string]bool{
		"register_entity.lei=" + leiBank: true,
	}}

	row := validUsingEntityRow()
	res, err := CheckReferentialIntegrity(context.Background(), TableUsingEntity, row, lookup.lookup)
	if err != nil {
		t.Fatalf("CheckReferentialIntegrity returned error: %v", err)
	}
	if len(res.Violations) != 1 {
		t.Fatalf("expected exactly one violation, got %v", res.Violations)
	}
	v := res.Violations[0]
	if v.Column != "reference_number" {
		t.Errorf("violation names column %q, want reference_number", v.Column)
	}
	if v.Kind != KindDanglingReference {
		t.Errorf("violation kind %q, want %q", v.Kind, KindDanglingReference)
	}
	if v.RefTable != TableGeneralInformation {
		t.Errorf("violation names table %q, want %q", v.RefTable, TableGeneralInformation)
	}
}

func TestCheckReferentialIntegritySkipsEmptyOptionalKeys(t *testing.T) {
	lookup := &recordingLookup{known: map[string]bool{}}
	row := validRegisterEntityRow() // no parent_lei set

	res, err := CheckReferentialIntegrity(context.Background(), TableRegisterEntity, row, lookup.lookup)
	if err != nil {
		t.Fatalf("CheckReferentialIntegrity returned error: %v", err)
	}
	if !res.OK() {
		t.Fatalf("expected no violations, got %v", res.Violations)
	}
	if len(lookup.calls) != 0 {
		t.Fatalf("expected no lookups for absent optional keys, got %v", lookup.calls)
	}
}

func TestCheckReferentialIntegritySelfParentRejected(t *testing.T) {
	lookup := &recordingLookup{known: map[string]bool{}}
	row := validRegisterEntityRow()
	row["parent_lei"] = row["lei"]

	res, err := CheckReferentialIntegrity(context.Background(), TableRegisterEntity, row, lookup.lookup)
	if err != nil {
		t.Fatalf("CheckReferentialIntegrity returned error: %v", err)
	}
	if len(res.Violations) != 1 {
		t.Fatalf("expected exactly one violation, got %v", res.Violations)
	}
	if res.Violations[0].Column != "parent_lei" {
		t.Errorf("violation names column %q, want parent_lei", res.Violations[0].Column)
	}
	if len(lookup.calls) != 0 {
		t.Fatalf("self-reference must be rejected without a lookup, got %v", lookup.calls)
	}
}

func TestCheckReferentialIntegrityOwnUltimateParentAllowed(t *testing.T) {
	lookup := &recordingLookup{known: map[string]bool{}}
	row := Row{
		"tpp_code":                             "TPP-001",
		"tpp_code_type":                        "LEI",
		"legal_name":                           "Cloud Services Ltd",
		"person_type":                          "LEGAL_PERSON",
		"country_of_headquarters":              "IE",
		"ultimate_parent_undertaking_tpp_code": "TPP-001",
	}

	res, err := CheckReferentialIntegrity(context.Background(), TableServiceProvider, row, lookup.lookup)
	if err != nil {
		t.Fatalf("CheckReferentialIntegrity returned error: %v", err)
	}
	if !res.OK() {
		t.Fatalf("a provider that is its own ultimate parent must pass, got %v", res.Violations)
	}
	if len(lookup.calls) != 0 {
		t.Fatalf("self ultimate parent must not trigger a lookup, got %v", lookup.calls)
	}
}

func TestCheckReferentialIntegrityLookupError(t *testing.T) {
	boom := errors.New("connection reset")
	failing := func(context.Context, string, Row) (bool, error) {
		return false, boom
	}

	row := validUsingEntityRow()
	_, err := CheckReferentialIntegrity(context.Background(), TableUsingEntity, row, failing)
	if !errors.Is(err, boom) {
		t.Fatalf("expected lookup error to propagate, got %v", err)
	}
}

func TestCheckReferentialIntegrityUnknownTable(t *testing.T) {
	_, err := CheckReferentialIntegrity(context.Background(), "no_such_table", Row{}, nil)
	if !errors.Is(err, ErrUnknownTable) {
		t.Fatalf("expected ErrUnknownTable, got %v", err)
	}
}
