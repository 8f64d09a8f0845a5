package seed

import "opendora/internal/schema"

// Demo LEIs for the seeded group: the parent undertaking maintains the
// register, its subsidiary uses the ICT services.
const (
	DemoParentLEI     = "724500V6MJY5KWSFXL29"
	DemoSubsidiaryLEI = "724500B1B2C3D4E5F612"
)

// TableRows pairs a table identifier with rows to insert, in an order
// that satisfies the foreign-key graph.
type TableRows struct {
	TableID string
	Rows    []schema.Row
}

// DemoRegister returns a small but referentially complete register for
// local development: one group of two entities, one branch, two
// contractual arrangements, one provider and the related criticality
// records. Tables appear in insertion order.
func DemoRegister() []TableRows {
	return []TableRows{
		{schema.TableMaintainingEntity, []schema.Row{
			{
				"lei":                 DemoParentLEI,
				"name":                "Alpenbank Holding AG",
				"country":             "DE",
				"type":                "BANK",
				"competent_authority": "BaFin",
				"reporting_date":      "2025-04-30",
			},
		}},
		{schema.TableRegisterEntity, []schema.Row{
			{
				"lei":              DemoParentLEI,
				"name":             "Alpenbank Holding AG",
				"country":          "DE",
				"type":             "BANK",
				"hierarchy":        "ULTIMATE_PARENT",
				"last_update_date": "2025-04-15",
				"integration_date": "2024-01-17",
				"currency":         "EUR",
				"total_assets":     "125000000.00",
			},
			{
				"lei":              DemoSubsidiaryLEI,
				"name":             "Alpenbank Luxembourg SA",
				"country":          "LU",
				"type":             "BANK",
				"hierarchy":        "SUBSIDIARY",
				"parent_lei":       DemoParentLEI,
				"last_update_date": "2025-04-15",
				"integration_date": "2024-01-17",
				"currency":         "EUR",
				"total_assets":     "8400000.00",
			},
		}},
		{schema.TableBranch, []schema.Row{
			{
				"branch_code":     "BR-LU-001",
				"head_office_lei": DemoSubsidiaryLEI,
				"name":            "Alpenbank Luxembourg, Dublin branch",
				"country":         "IE",
			},
		}},
		{schema.TableGeneralInformation, []schema.Row{
			{
				"reference_number":                 "CTR-2024-0001",
				"type":                             "MASTER_AGREEMENT",
				"currency":                         "EUR",
				"annual_expense_or_estimated_cost": "250000.00",
			},
			{
				"reference_number":                 "CTR-2024-0002",
				"type":                             "SERVICE_SCHEDULE",
				"overarching_reference_number":     "CTR-2024-0001",
				"currency":                         "EUR",
				"annual_expense_or_estimated_cost": "90000.00",
			},
		}},
		{schema.TableServiceProvider, []schema.Row{
			{
				"tpp_code":                             "TPP-001",
				"tpp_code_type":                        "LEI",
				"legal_name":                           "Nimbus Cloud Services Ltd",
				"person_type":                          "LEGAL_PERSON",
				"country_of_headquarters":              "IE",
				"currency":                             "EUR",
				"total_annual_expense_or_estimated_cost": "340000.00",
				"ultimate_parent_undertaking_tpp_code": "TPP-001",
			},
		}},
		{schema.TableFunctionIdentification, []schema.Row{
			{
				"identifier":               "F-001",
				"licensed_activity":        "Deposit taking",
				"function_name":            "Retail payment processing",
				"lei":                      DemoSubsidiaryLEI,
				"assessment":               "CRITICAL",
				"reasons":                  "Settlement of customer payments depends on this function",
				"assessment_date":          "2025-02-28",
				"recovery_time_objective":  "4",
				"recovery_point_objective": "1",
				"impact_of_discontinuing":  "Customer payments halt within one business day",
			},
		}},
		{schema.TableSpecificInformation, []schema.Row{
			{
				"reference_number":         "CTR-2024-0002",
				"lei":                      DemoSubsidiaryLEI,
				"tpp_code":                 "TPP-001",
				"tpp_code_type":            "LEI",
				"function_identifier":      "F-001",
				"ict_services_type":        "S19",
				"start_date":               "2024-02-01",
				"end_date":                 "2027-01-31",
				"entity_notice_period":     "90",
				"tpp_notice_period":        "180",
				"governing_law_country":    "LU",
				"ict_services_country":     "IE",
				"data_storage":             "true",
				"data_at_rest_location":    "IE",
				"data_processing_location": "IE",
				"ict_service_reliance":     "HIGH",
			},
		}},
		{schema.TableReceivingSigningEntity, []schema.Row{
			{"reference_number": "CTR-2024-0001", "lei": DemoParentLEI},
		}},
		{schema.TableSigningServiceProvider, []schema.Row{
			{"reference_number": "CTR-2024-0001", "tpp_code": "TPP-001", "tpp_code_type": "LEI"},
		}},
		{schema.TableUsingEntity, []schema.Row{
			{
				"reference_number": "CTR-2024-0002",
				"lei":              DemoSubsidiaryLEI,
				"is_branch":        "false",
				"branch_code":      schema.NotApplicable,
			},
			{
				"reference_number": "CTR-2024-0002",
				"lei":              DemoSubsidiaryLEI,
				"is_branch":        "true",
				"branch_code":      "BR-LU-001",
			},
		}},
		{schema.TableSupplyChain, []schema.Row{
			{
				"reference_number":  "CTR-2024-0002",
				"ict_services_type": "S19",
				"tpp_code":          "TPP-001",
				"tpp_code_type":     "LEI",
				"rank":              "1",
				"recipient_code":    DemoSubsidiaryLEI,
			},
		}},
		{schema.TableAssessment, []schema.Row{
			{
				"reference_number":               "CTR-2024-0002",
				"tpp_code":                       "TPP-001",
				"tpp_code_type":                  "LEI",
				"ict_services_type":              "S19",
				"ict_tpp_substitutability":       "DIFFICULT",
				"ict_tpp_last_audit_date":        "2024-11-20",
				"has_exit_plan":                  "true",
				"possibility_of_reintegration":   "POSSIBLE_WITH_EFFORT",
				"discontinuing_impact":           "SEVERE",
				"alternative_ict_tpp_identified": "false",
			},
		}},
	}
}
