// Package seed provides the reference data shipped with the register:
// the ICT service-type taxonomy and a small demonstration register used
// for local development.
package seed

import "opendora/internal/schema"

// ICTServiceTypes returns the taxonomy rows for the ict_services_type
// lookup table, one per service category of the reporting framework.
func ICTServiceTypes() []schema.Row {
	return []schema.Row{
		{"identifier": "S01", "name": "ICT project management",
			"description": "Management of ICT projects on behalf of the financial entity"},
		{"identifier": "S02", "name": "ICT development",
			"description": "Development of software and systems for the financial entity"},
		{"identifier": "S03", "name": "ICT help desk and first level support",
			"description": "Help desk services and first level incident support"},
		{"identifier": "S04", "name": "ICT security management services",
			"description": "Management of ICT security, including security operations centres"},
		{"identifier": "S05", "name": "Provision of data",
			"description": "Provision of market, reference or other data feeds"},
		{"identifier": "S06", "name": "Data analysis",
			"description": "Analysis and enrichment of data on behalf of the financial entity"},
		{"identifier": "S07", "name": "ICT facilities and hosting services",
			"description": "Facilities and hosting services, excluding cloud services"},
		{"identifier": "S08", "name": "Computation",
			"description": "Provision of computation capacity, excluding cloud services"},
		{"identifier": "S09", "name": "Non-cloud data storage",
			"description": "Data storage outside of cloud arrangements"},
		{"identifier": "S10", "name": "Telecom carrier",
			"description": "Carrier services for voice and data communication"},
		{"identifier": "S11", "name": "Network infrastructure",
			"description": "Provision and operation of network infrastructure"},
		{"identifier": "S12", "name": "Hardware and physical devices",
			"description": "Provision and maintenance of hardware and physical devices"},
		{"identifier": "S13", "name": "Software licencing",
			"description": "Licencing of software, excluding software as a service"},
		{"identifier": "S14", "name": "ICT operation management",
			"description": "Operation management of ICT systems, including maintenance"},
		{"identifier": "S15", "name": "ICT consulting",
			"description": "Consulting services on ICT matters"},
		{"identifier": "S16", "name": "ICT risk management",
			"description": "Support of ICT risk management activities"},
		{"identifier": "S17", "name": "Cloud services: IaaS",
			"description": "Cloud infrastructure as a service"},
		{"identifier": "S18", "name": "Cloud services: PaaS",
			"description": "Cloud platform as a service"},
		{"identifier": "S19", "name": "Cloud services: SaaS",
			"description": "Cloud software as a service"},
	}
}
