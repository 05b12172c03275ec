package classifier

import (
	"testing"

	"github.com/simaogato/cryptotax-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var usRules = domain.JurisdictionRules{
	Code:                  "US",
	LongTermThresholdDays: 365,
	CryptoToCryptoTaxable: true,
}

var settings = &domain.UserTaxSettings{JurisdictionCode: "US"}

func TestClassify_ShortTermBelowThreshold(t *testing.T) {
	category, err := Classify(Input{Method: domain.MethodPurchase, HoldingPeriodDays: 364}, settings, usRules)

	require.NoError(t, err)
	assert.Equal(t, domain.CategoryShortTerm, category)
}

func TestClassify_LongTermBoundaryIsInclusive(t *testing.T) {
	// Exactly threshold days counts as long-term.
	category, err := Classify(Input{Method: domain.MethodPurchase, HoldingPeriodDays: 365}, settings, usRules)

	require.NoError(t, err)
	assert.Equal(t, domain.CategoryLongTerm, category)
}

func TestClassify_CryptoToCryptoNonTaxableJurisdiction(t *testing.T) {
	// Some jurisdictions exempt crypto-to-crypto entirely, whatever
	// the holding period or sign.
	rules := domain.JurisdictionRules{
		Code:                  "DE",
		LongTermThresholdDays: 365,
		CryptoToCryptoTaxable: false,
	}

	category, err := Classify(Input{
		Method:            domain.MethodPurchase,
		HoldingPeriodDays: 1000,
		CryptoToCrypto:    true,
	}, settings, rules)

	require.NoError(t, err)
	assert.Equal(t, domain.CategoryNonTaxable, category)
}

func TestClassify_CryptoToCryptoTaxableJurisdiction(t *testing.T) {
	category, err := Classify(Input{
		Method:            domain.MethodPurchase,
		HoldingPeriodDays: 10,
		CryptoToCrypto:    true,
	}, settings, usRules)

	require.NoError(t, err)
	assert.Equal(t, domain.CategoryShortTerm, category)
}

func TestClassify_IncomeMethodLotsStillCapitalEvents(t *testing.T) {
	// Reward/airdrop/mined lots were taxed as income at acquisition;
	// their disposal classifies on holding period like any other lot.
	for _, method := range []domain.AcquisitionMethod{domain.MethodReward, domain.MethodAirdrop, domain.MethodMined} {
		category, err := Classify(Input{Method: method, HoldingPeriodDays: 400}, settings, usRules)
		require.NoError(t, err)
		assert.Equal(t, domain.CategoryLongTerm, category, string(method))
	}
}

func TestClassify_UserThresholdOverrideWins(t *testing.T) {
	override := &domain.UserTaxSettings{JurisdictionCode: "US", LongTermThresholdDays: 100}

	category, err := Classify(Input{Method: domain.MethodPurchase, HoldingPeriodDays: 120}, override, usRules)

	require.NoError(t, err)
	assert.Equal(t, domain.CategoryLongTerm, category)
}

func TestClassify_UnknownMethodErrors(t *testing.T) {
	_, err := Classify(Input{Method: domain.AcquisitionMethod("STAKED"), HoldingPeriodDays: 10}, settings, usRules)

	assert.Error(t, err)
}
