package schema

// Internal table identifiers. The register store derives its physical
// table names from these, and the CLI accepts them as arguments.
const (
	TableMaintainingEntity      = "maintaining_entity"
	TableRegisterEntity         = "register_entity"
	TableBranch                 = "branch"
	TableGeneralInformation     = "general_information"
	TableSpecificInformation    = "specific_information"
	TableIntraGroup             = "intra_group"
	TableReceivingSigningEntity = "receiving_signing_entity"
	TableSigningServiceProvider = "signing_service_provider"
	TableProvidingSigningEntity = "providing_signing_entity"
	TableUsingEntity            = "using_entity"
	TableServiceProvider        = "service_provider"
	TableICTServicesType        = "ict_services_type"
	TableSupplyChain            = "supply_chain"
	TableFunctionIdentification = "function_identification"
	TableAssessment             = "assessment"
)

// NotApplicable is the sentinel branch code used when the entity making
// use of an ICT service is not a branch.
const NotApplicable = "NOT_APPLICABLE"

var maintainingEntity = Table{
	ID:   TableMaintainingEntity,
	Code: "B.01.01",
	Name: "Financial entity maintaining the register of information",
	Columns: []Column{
		{Name: "lei", Title: "0010", Type: TypeLEI, Required: true, PrimaryKey: true, MinLen: 20, MaxLen: 20,
			Description: "LEI of the entity maintaining the register of information"},
		{Name: "name", Title: "0020", Type: TypeString, Required: true, MaxLen: 255,
			Description: "Name of the entity"},
		{Name: "country", Title: "0030", Type: TypeCountry, Required: true, MinLen: 2, MaxLen: 2,
			Description: "Country of the entity"},
		{Name: "type", Title: "0040", Type: TypeString, Required: true, MaxLen: 255, Enum: EntityTypes,
			Description: "Type of entity"},
		{Name: "competent_authority", Title: "0050", Type: TypeString, Required: true, MaxLen: 255,
			Description: "Competent Authority"},
		{Name: "reporting_date", Title: "0060", Type: TypeDate, Required: true,
			Description: "Date of the reporting"},
	},
}

var registerEntity = Table{
	ID:   TableRegisterEntity,
	Code: "B.01.02",
	Name: "List of financial entities within the scope of the register of information",
	Columns: []Column{
		{Name: "lei", Title: "0010", Type: TypeLEI, Required: true, PrimaryKey: true, MinLen: 20, MaxLen: 20,
			Description: "LEI of the entity"},
		{Name: "name", Title: "0020", Type: TypeString, Required: true, MaxLen: 255,
			Description: "Name of the entity"},
		{Name: "country", Title: "0030", Type: TypeCountry, Required: true, MinLen: 2, MaxLen: 2,
			Description: "Country of the entity"},
		{Name: "type", Title: "0040", Type: TypeString, Required: true, MaxLen: 255, Enum: EntityTypes,
			Description: "Type of entity"},
		{Name: "hierarchy", Title: "0050", Type: TypeString, MaxLen: 255,
			Description: "Hierarchy of the entity within the group (where applicable)"},
		{Name: "parent_lei", Title: "0060", Type: TypeLEI, MinLen: 20, MaxLen: 20,
			Ref:         &ForeignKey{Table: TableRegisterEntity, Column: "lei"},
			Description: "LEI of the direct parent undertaking of the financial entity"},
		{Name: "last_update_date", Title: "0070", Type: TypeDate, Required: true,
			Description: "Date of last update"},
		{Name: "integration_date", Title: "0080", Type: TypeDate, Required: true,
			Description: "Date of integration in the Register of information"},
		{Name: "deletion_date", Title: "0090", Type: TypeDate,
			Description: "Date of deletion in the Register of information"},
		{Name: "currency", Title: "0100", Type: TypeCurrency, MinLen: 3, MaxLen: 3,
			Description: "Currency"},
		{Name: "total_assets", Title: "0110", Type: TypeMonetary, NonNegative: true,
			Description: "Value of total assets - of the financial entity"},
	},
}

var branch = Table{
	ID:   TableBranch,
	Code: "B.01.03",
	Name: "List of branches",
	Columns: []Column{
		{Name: "branch_code", Title: "0010", Type: TypeString, Required: true, PrimaryKey: true, MaxLen: 255,
			Description: "Identification code of the branch"},
		{Name: "head_office_lei", Title: "0020", Type: TypeLEI, Required: true, PrimaryKey: true, MinLen: 20, MaxLen: 20,
			Ref:         &ForeignKey{Table: TableRegisterEntity, Column: "lei"},
			Description: "LEI of the financial entity head office of the branch"},
		{Name: "name", Title: "0030", Type: TypeString, Required: true, MaxLen: 255,
			Description: "Name of the branch"},
		{Name: "country", Title: "0040", Type: TypeCountry, Required: true, MinLen: 2, MaxLen: 2,
			Description: "Country of the branch"},
	},
}

var generalInformation = Table{
	ID:   TableGeneralInformation,
	Code: "B.02.01",
	Name: "Contractual Arrangements – General Information",
	Columns: []Column{
		{Name: "reference_number", Title: "0010", Type: TypeString, Required: true, PrimaryKey: true, MaxLen: 255,
			Description: "Contractual arrangement reference number"},
		{Name: "type", Title: "0020", Type: TypeString, Required: true, MaxLen: 255,
			Description: "Type of contractual arrangement"},
		{Name: "overarching_reference_number", Title: "0030", Type: TypeString, MaxLen: 255,
			Ref:         &ForeignKey{Table: TableGeneralInformation, Column: "reference_number"},
			Description: "Overarching contractual arrangement reference number"},
		{Name: "currency", Title: "0040", Type: TypeCurrency, Required: true, MinLen: 3, MaxLen: 3,
			Description: "Currency of the amount reported"},
		{Name: "annual_expense_or_estimated_cost", Title: "0050", Type: TypeMonetary, Required: true,
			Description: "Annual expense or estimated cost of the contractual arrangement for the past year"},
	},
}

var specificInformation = Table{
	ID:   TableSpecificInformation,
	Code: "B.02.02",
	Name: "Contractual Arrangements – Specific information",
	Columns: []Column{
		{Name: "reference_number", Title: "0010", Type: TypeString, Required: true, PrimaryKey: true, MaxLen: 255,
			Ref:         &ForeignKey{Table: TableGeneralInformation, Column: "reference_number"},
			Description: "Contractual arrangement reference number"},
		{Name: "lei", Title: "0020", Type: TypeLEI, Required: true, PrimaryKey: true, MinLen: 20, MaxLen: 20,
			Ref:         &ForeignKey{Table: TableRegisterEntity, Column: "lei"},
			Description: "LEI of the financial entity making use of the ICT service"},
		{Name: "tpp_code", Title: "0030", Type: TypeString, Required: true, PrimaryKey: true, MaxLen: 255,
			Description: "Identification code of the third-party service provider"},
		{Name: "tpp_code_type", Title: "0040", Type: TypeString, MaxLen: 255,
			Description: "Type of code to identify the third-party service provider"},
		{Name: "function_identifier", Title: "0050", Type: TypeString, Required: true, PrimaryKey: true, MaxLen: 255,
			Description: "Function identifier"},
		{Name: "ict_services_type", Title: "0060", Type: TypeString, Required: true, PrimaryKey: true, MaxLen: 255,
			Description: "Type of ICT services"},
		{Name: "start_date", Title: "0070", Type: TypeDate, Required: true,
			Description: "Start date of the contractual arrangement"},
		{Name: "end_date", Title: "0080", Type: TypeDate, Required: true,
			Description: "End date of the contractual arrangement"},
		{Name: "reason_of_termination_or_ending", Title: "0090", Type: TypeString, MaxLen: 255,
			Description: "Reason of the termination or ending of the contractual arrangement"},
		{Name: "entity_notice_period", Title: "0100", Type: TypeInt,
			Description: "Notice period for the financial entity"},
		{Name: "tpp_notice_period", Title: "0110", Type: TypeInt,
			Description: "Notice period for the ICT third-party service provider"},
		{Name: "governing_law_country", Title: "0120", Type: TypeCountry, MinLen: 2, MaxLen: 2,
			Description: "Country of the governing law of the contractual arrangement"},
		{Name: "ict_services_country", Title: "0130", Type: TypeCountry, Required: true, PrimaryKey: true, MinLen: 2, MaxLen: 2,
			Description: "Country of provision of the ICT services"},
		{Name: "data_storage", Title: "0140", Type: TypeBool, Required: true,
			Description: "Storage of data"},
		{Name: "data_at_rest_location", Title: "0150", Type: TypeCountry, Required: true, PrimaryKey: true, MinLen: 2, MaxLen: 2,
			Description: "Location of the data at rest (storage)"},
		{Name: "data_processing_location", Title: "0160", Type: TypeCountry, Required: true, PrimaryKey: true, MinLen: 2, MaxLen: 2,
			Description: "Location of management of the data (processing)"},
		{Name: "tpp_data_stored_sensitiveness", Title: "0170", Type: TypeString, MaxLen: 255,
			Description: "Sensitiveness of the data stored by the ICT third-party service provider"},
		{Name: "ict_service_reliance", Title: "0180", Type: TypeString, MaxLen: 255,
			Description: "Level of reliance on the ICT service supporting the critical or important function"},
	},
}

var intraGroup = Table{
	ID:   TableIntraGroup,
	Code: "B.02.03",
	Name: "List of intra-group contractual arrangements",
	Columns: []Column{
		{Name: "reference_number", Title: "0010", Type: TypeString, Required: true, PrimaryKey: true, MaxLen: 255,
			Description: "Contractual arrangement with ICT intra-group service provider"},
		{Name: "linked_contractual_arrangement_with_ict_tpp", Title: "0020", Type: TypeString, Required: true, PrimaryKey: true, MaxLen: 255,
			Ref:         &ForeignKey{Table: TableGeneralInformation, Column: "reference_number"},
			Description: "Linked contractual arrangement with ICT third-party service provider"},
	},
}

var receivingSigningEntity = Table{
	ID:   TableReceivingSigningEntity,
	Code: "B.03.01",
	Name: "Entities signing the Contractual Arrangements for receiving ICT service(s) or on behalf of the entities making use of the ICT service(s)",
	Columns: []Column{
		{Name: "reference_number", Title: "0010", Type: TypeString, Required: true, PrimaryKey: true, MaxLen: 255,
			Ref:         &ForeignKey{Table: TableGeneralInformation, Column: "reference_number"},
			Description: "Contractual arrangement reference number"},
		{Name: "lei", Title: "0020", Type: TypeLEI, Required: true, PrimaryKey: true, MinLen: 20, MaxLen: 20,
			Ref:         &ForeignKey{Table: TableRegisterEntity, Column: "lei"},
			Description: "LEI of the entity signing the contractual arrangement"},
	},
}

var signingServiceProvider = Table{
	ID:   TableSigningServiceProvider,
	Code: "B.03.02",
	Name: "Third-party service providers signing the Contractual Arrangements for providing ICT service(s)",
	Columns: []Column{
		{Name: "reference_number", Title: "0010", Type: TypeString, Required: true, PrimaryKey: true, MaxLen: 255,
			Ref:         &ForeignKey{Table: TableGeneralInformation, Column: "reference_number"},
			Description: "Contractual arrangement reference number"},
		{Name: "tpp_code", Title: "0020", Type: TypeString, Required: true, PrimaryKey: true, MaxLen: 255,
			Description: "Identification code of the third-party service provider"},
		{Name: "tpp_code_type", Title: "0030", Type: TypeString, MaxLen: 255,
			Description: "Type of code of the third-party service provider"},
	},
}

var providingSigningEntity = Table{
	ID:   TableProvidingSigningEntity,
	Code: "B.03.03",
	Name: "Entities signing the Contractual Arrangements for providing ICT service(s)",
	Columns: []Column{
		{Name: "reference_number", Title: "0010", Type: TypeString, Required: true, PrimaryKey: true, MaxLen: 255,
			Ref:         &ForeignKey{Table: TableGeneralInformation, Column: "reference_number"},
			Description: "Contractual arrangement reference number"},
		{Name: "lei", Title: "0020", Type: TypeLEI, Required: true, PrimaryKey: true, MinLen: 20, MaxLen: 20,
			Ref:         &ForeignKey{Table: TableRegisterEntity, Column: "lei"},
			Description: "LEI of the intra-group entity providing ICT service"},
	},
}

var usingEntity = Table{
	ID:   TableUsingEntity,
	Code: "B.04.01",
	Name: "Financial entities making use of the ICT services",
	Columns: []Column{
		{Name: "reference_number", Title: "0010", Type: TypeString, Required: true, PrimaryKey: true, MaxLen: 255,
			Ref:         &ForeignKey{Table: TableGeneralInformation, Column: "reference_number"},
			Description: "Contractual arrangement reference number"},
		{Name: "lei", Title: "0020", Type: TypeLEI, Required: true, PrimaryKey: true, MinLen: 20, MaxLen: 20,
			Ref:         &ForeignKey{Table: TableRegisterEntity, Column: "lei"},
			Description: "LEI of the financial entity"},
		{Name: "is_branch", Title: "0030", Type: TypeBool, Required: true,
			Description: "Is the entity making use of the ICT services a branch of a financial entity?"},
		{Name: "branch_code", Title: "0040", Type: TypeString, Required: true, PrimaryKey: true, MaxLen: 255,
			Description: "Identification code of the branch"},
	},
}

var serviceProvider = Table{
	ID:   TableServiceProvider,
	Code: "B.05.01",
	Name: "ICT third-party service provider",
	Columns: []Column{
		{Name: "tpp_code", Title: "0010", Type: TypeString, Required: true, PrimaryKey: true, MaxLen: 255,
			Description: "Identification code of the third-party service provider"},
		{Name: "tpp_code_type", Title: "0020", Type: TypeString, Required: true, MaxLen: 255,
			Description: "Type of code of the third-party service provider"},
		{Name: "additional_identification_code", Title: "0030", Type: TypeInt,
			Description: "Additional identification code of the third-party service provider"},
		{Name: "additional_identification_code_type", Title: "0040", Type: TypeString, MaxLen: 255,
			Description: "Type of additional identification code of the third-party service provider"},
		{Name: "legal_name", Title: "0050", Type: TypeString, Required: true, MaxLen: 255,
			Description: "Legal name of the third-party service provider"},
		{Name: "name_in_latin_alphabet", Title: "0060", Type: TypeString, MaxLen: 255,
			Description: "Name of the ICT third-party service provider in Latin alphabet"},
		{Name: "person_type", Title: "0070", Type: TypeString, Required: true, MaxLen: 255,
			Description: "Type of person of the third-party service provider"},
		{Name: "country_of_headquarters", Title: "0080", Type: TypeCountry, Required: true, MinLen: 2, MaxLen: 2,
			Description: "Country of the third-party service provider's headquarters"},
		{Name: "currency", Title: "0090", Type: TypeCurrency, MinLen: 3, MaxLen: 3,
			Description: "Currency of the amount reported"},
		{Name: "total_annual_expense_or_estimated_cost", Title: "0100", Type: TypeMonetary,
			Description: "Total annual expense or estimated cost of the third-party service provider"},
		{Name: "ultimate_parent_undertaking_tpp_code", Title: "0110", Type: TypeString, Required: true, MaxLen: 255,
			Ref:         &ForeignKey{Table: TableServiceProvider, Column: "tpp_code", AllowSelf: true},
			Description: "Identification code of the third-party service provider's ultimate parent undertaking"},
		{Name: "ultimate_parent_undertaking_tpp_code_type", Title: "0120", Type: TypeString, MaxLen: 255,
			Description: "Type of code of the third-party service provider's ultimate parent undertaking"},
	},
}

var ictServicesType = Table{
	ID:   TableICTServicesType,
	Name: "Type of ICT Services",
	Columns: []Column{
		{Name: "identifier", Type: TypeString, Required: true, PrimaryKey: true, MaxLen: 50,
			Description: "Type of ICT services identifier"},
		{Name: "name", Type: TypeString, Required: true, MaxLen: 50,
			Description: "Type of ICT services name"},
		{Name: "description", Type: TypeString, Required: true, MaxLen: 255,
			Description: "Type of ICT services description"},
	},
}

var supplyChain = Table{
	ID:   TableSupplyChain,
	Code: "B.05.02",
	Name: "ICT service supply chains",
	Columns: []Column{
		{Name: "reference_number", Title: "0010", Type: TypeString, Required: true, PrimaryKey: true, MaxLen: 255,
			Ref:         &ForeignKey{Table: TableGeneralInformation, Column: "reference_number"},
			Description: "Contractual arrangement reference number"},
		{Name: "ict_services_type", Title: "0020", Type: TypeString, Required: true, PrimaryKey: true, MaxLen: 255,
			Ref:         &ForeignKey{Table: TableICTServicesType, Column: "identifier"},
			Description: "Type of ICT services"},
		{Name: "tpp_code", Title: "0030", Type: TypeString, Required: true, PrimaryKey: true, MaxLen: 255,
			Ref:         &ForeignKey{Table: TableServiceProvider, Column: "tpp_code"},
			Description: "Identification code of the third-party service provider"},
		{Name: "tpp_code_type", Title: "0040", Type: TypeString, MaxLen: 255,
			Description: "Type of code of the third-party service provider"},
		{Name: "rank", Title: "0050", Type: TypeInt, Required: true, PrimaryKey: true,
			Description: "Rank"},
		{Name: "recipient_code", Title: "0060", Type: TypeString, Required: true, PrimaryKey: true, MaxLen: 255,
			Description: "Identification code of the recipient of sub-contracted ICT services"},
		{Name: "recipient_code_type", Type: TypeString, MaxLen: 255,
			Description: "Type of code of the recipient of sub-contracted ICT services"},
	},
}

var functionIdentification = Table{
	ID:   TableFunctionIdentification,
	Code: "B.06.01",
	Name: "Functions identification",
	Columns: []Column{
		{Name: "identifier", Title: "0010", Type: TypeString, Required: true, PrimaryKey: true, MaxLen: 255,
			Description: "Function identifier"},
		{Name: "licensed_activity", Title: "0020", Type: TypeString, Required: true, MaxLen: 255,
			Description: "Licenced activity"},
		{Name: "function_name", Title: "0030", Type: TypeString, Required: true, MaxLen: 255,
			Description: "Function name"},
		{Name: "lei", Type: TypeLEI, Required: true, PrimaryKey: true, MinLen: 20, MaxLen: 20,
			Ref:         &ForeignKey{Table: TableRegisterEntity, Column: "lei"},
			Description: "LEI of the financial entity"},
		{Name: "assessment", Title: "0040", Type: TypeString, Required: true, MaxLen: 255, Enum: CriticalityValues,
			Description: "Criticality or importance assessment"},
		{Name: "reasons", Title: "0050", Type: TypeString, Required: true, MaxLen: 255,
			Description: "Reasons for criticality or importance"},
		{Name: "assessment_date", Title: "0060", Type: TypeDate, Required: true,
			Description: "Date of the last assessment of criticality or importance"},
		{Name: "recovery_time_objective", Title: "0070", Type: TypeInt, Required: true,
			Description: "Recovery time objective of the function"},
		{Name: "recovery_point_objective", Title: "0080", Type: TypeInt, Required: true,
			Description: "Recovery point objective of the function"},
		{Name: "impact_of_discontinuing", Title: "0090", Type: TypeString, Required: true, MaxLen: 255,
			Description: "Impact of discontinuing the function"},
	},
}

var assessment = Table{
	ID:   TableAssessment,
	Code: "B.07.01",
	Name: "Assessment of the ICT services",
	Columns: []Column{
		{Name: "reference_number", Title: "0010", Type: TypeString, Required: true, PrimaryKey: true, MaxLen: 255,
			Ref:         &ForeignKey{Table: TableGeneralInformation, Column: "reference_number"},
			Description: "Contractual arrangement reference number"},
		{Name: "tpp_code", Title: "0020", Type: TypeString, Required: true, PrimaryKey: true, MaxLen: 255,
			Ref:         &ForeignKey{Table: TableServiceProvider, Column: "tpp_code"},
			Description: "Identification code of the third-party service provider"},
		{Name: "tpp_code_type", Title: "0030", Type: TypeString, Required: true, MaxLen: 255,
			Description: "Type of code of the third-party service provider"},
		{Name: "ict_services_type", Title: "0040", Type: TypeString, Required: true, PrimaryKey: true, MaxLen: 255,
			Ref:         &ForeignKey{Table: TableICTServicesType, Column: "identifier"},
			Description: "Type of ICT services"},
		{Name: "ict_tpp_substitutability", Title: "0050", Type: TypeString, Required: true, MaxLen: 255,
			Description: "Substitutability of the ICT third-party service provider"},
		{Name: "reason_if_ict_tpp_is_not_substitutable_or_difficult_to_be_substitutable", Title: "0060", Type: TypeString, MaxLen: 255,
			Description: "Reason if the ICT third-party service provider is considered not substitutable or difficult to be substitutable"},
		{Name: "ict_tpp_last_audit_date", Title: "0070", Type: TypeDate, Required: true,
			Description: "Date of the last audit on the ICT third-party service provider"},
		{Name: "has_exit_plan", Title: "0080", Type: TypeBool, Required: true,
			Description: "Existence of an exit plan"},
		{Name: "possibility_of_reintegration", Title: "0090", Type: TypeString, Required: true, MaxLen: 255,
			Description: "Possibility of reintegration of the contracted ICT service"},
		{Name: "discontinuing_impact", Title: "0100", Type: TypeString, Required: true, MaxLen: 255,
			Description: "Impact of discontinuing the ICT services"},
		{Name: "alternative_ict_tpp_identified", Title: "0110", Type: TypeBool, Required: true,
			Description: "Are there alternative ICT third-party service providers identified?"},
		{Name: "alternative_ict_tpp_identification", Title: "0120", Type: TypeString, MaxLen: 255,
			Description: "Identification of alternative ICT TPP"},
	},
}
