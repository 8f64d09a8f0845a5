package schema

// EntityType is the closed vocabulary for the type of a financial entity.
type EntityType string

const (
	EntityTypeBank               EntityType = "BANK"
	EntityTypeInsurance          EntityType = "INSURANCE"
	EntityTypeInvestmentFirm     EntityType = "INVESTMENT_FIRM"
	EntityTypePaymentInstitution EntityType = "PAYMENT_INSTITUTION"
	EntityTypeEMoneyInstitution  EntityType = "ELECTRONIC_MONEY_INSTITUTION"
	EntityTypeOther              EntityType = "OTHER"
)

// EntityTypes lists the accepted entity type values in reporting order.
var EntityTypes = []string{
	string(EntityTypeBank),
	string(EntityTypeInsurance),
	string(EntityTypeInvestmentFirm),
	string(EntityTypePaymentInstitution),
	string(EntityTypeEMoneyInstitution),
	string(EntityTypeOther),
}

// Criticality is the closed vocabulary for the criticality or importance
// assessment of a function.
type Criticality string

const (
	CriticalityCritical     Criticality = "CRITICAL"
	CriticalityImportant    Criticality = "IMPORTANT"
	CriticalityNonCritical  Criticality = "NON_CRITICAL"
	CriticalityNonImportant Criticality = "NON_IMPORTANT"
)

// CriticalityValues lists the accepted assessment values in reporting order.
var CriticalityValues = []string{
	string(CriticalityCritical),
	string(CriticalityImportant),
	string(CriticalityNonCritical),
	string(CriticalityNonImportant),
}
