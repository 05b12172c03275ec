package classifier

import (
	"fmt"

	"github.com/simaogato/cryptotax-backend/internal/domain"
)

// Input carries the facts about one disposal slice that classification
// depends on. The matcher resolves settings and jurisdiction rules once
// per event and classifies every slice with them.
type Input struct {
	Method            domain.AcquisitionMethod
	HoldingPeriodDays int
	CryptoToCrypto    bool
}

// Classify assigns the tax category for a disposal slice.
//
// Rules, in order:
//  1. If the jurisdiction does not tax crypto-to-crypto trades and both
//     sides of the disposal are crypto, the slice is non-taxable
//     regardless of gain/loss sign.
//  2. Reward/airdrop/mined lots were taxed as ordinary income at
//     acquisition (outside this engine); their disposal still
//     classifies as a regular capital event on the price movement
//     since then.
//  3. Otherwise the holding period decides: at or above the long-term
//     threshold is long-term (inclusive boundary), below is short-term.
func Classify(in Input, settings *domain.UserTaxSettings, rules domain.JurisdictionRules) (domain.TaxCategory, error) {
	if in.CryptoToCrypto && !rules.CryptoToCryptoTaxable {
		return domain.CategoryNonTaxable, nil
	}

	// Exhaustive over the closed method set: an unrecognized method is
	// an error, never a silent fallthrough.
	switch in.Method {
	case domain.MethodPurchase, domain.MethodTransferIn:
		// Plain capital event.
	case domain.MethodReward, domain.MethodAirdrop, domain.MethodMined:
		// Income was recognized at acquisition; the disposal itself is
		// still a capital event and falls through to the holding test.
	default:
		return "", fmt.Errorf("unknown acquisition method %q", in.Method)
	}

	threshold := settings.LongTermThreshold(rules)
	if in.HoldingPeriodDays >= threshold {
		return domain.CategoryLongTerm, nil
	}
	return domain.CategoryShortTerm, nil
}
