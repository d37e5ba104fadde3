package model

// Billing frequencies accepted on a service record.
const (
	FrequencyWeekly    = "Weekly"
	FrequencyMonthly   = "Monthly"
	FrequencyQuarterly = "Quarterly"
	FrequencyAnnually  = "Annually"
	FrequencyOnDemand  = "On-Demand"
)

// Frequencies lists every accepted billing frequency for validation.
var Frequencies = []string{
	FrequencyWeekly,
	FrequencyMonthly,
	FrequencyQuarterly,
	FrequencyAnnually,
	FrequencyOnDemand,
}

// Service is a recurring offering with a billing frequency and a base
// price.  Services exist independently of projects and are attached to
// clients through the client-service association set.
type Service struct {
	ID          uint64  `json:"id"`          // store-assigned identifier
	Name        string  `json:"name"`        // short name of the offering
	Description string  `json:"description"` // longer description
	Frequency   string  `json:"frequency"`   // one of the Frequency* constants
	BasePrice   float64 `json:"basePrice"`   // price per billing period
}
