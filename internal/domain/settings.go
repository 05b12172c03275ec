package domain

import "github.com/google/uuid"

// JurisdictionRules holds the tax parameters for one jurisdiction.
// Owned by an external rules service; consumed read-only here.
type JurisdictionRules struct {
	Code                  string
	LongTermThresholdDays int
	CryptoToCryptoTaxable bool
	WashSaleEnabled       bool
	WashSaleWindowDays    int
}

// UserTaxSettings is the per-owner tax configuration. Owned by the
// account service; the engine never writes it.
type UserTaxSettings struct {
	OwnerID          uuid.UUID
	JurisdictionCode string
	BaseCurrency     string

	// WashSaleEnabled lets a user opt out where their jurisdiction
	// leaves wash-sale treatment optional. Detection runs only when
	// both this flag and the jurisdiction's flag are set.
	WashSaleEnabled bool

	// WashSaleWindowDays overrides the jurisdiction window when > 0.
	WashSaleWindowDays int

	// LongTermThresholdDays overrides the jurisdiction threshold
	// when > 0.
	LongTermThresholdDays int
}

// LongTermThreshold resolves the effective long-term threshold in days.
func (s *UserTaxSettings) LongTermThreshold(rules JurisdictionRules) int {
	if s.LongTermThresholdDays > 0 {
		return s.LongTermThresholdDays
	}
	return rules.LongTermThresholdDays
}

// WashSaleWindow resolves the effective wash-sale window in days.
func (s *UserTaxSettings) WashSaleWindow(rules JurisdictionRules) int {
	if s.WashSaleWindowDays > 0 {
		return s.WashSaleWindowDays
	}
	return rules.WashSaleWindowDays
}
