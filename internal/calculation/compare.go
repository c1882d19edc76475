package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/npsups/pension-calculator/internal/domain"
)

// Metric weights for the scheme recommendation, summing to 100.
var (
	weightPension = decimal.NewFromInt(40)
	weightCorpus  = decimal.NewFromInt(30)
	weightXIRR    = decimal.NewFromInt(20)
	weightNPV     = decimal.NewFromInt(10)
)

// Score weighs the two outcomes against each other metric by metric and
// names the scheme with the higher composite score. Pension carries the
// most weight, then corpus, money-weighted return and present value. Ties
// on a metric favor the contribution scheme, matching strict comparison.
func Score(nps, ups domain.RetirementOutcome) domain.SchemeComparison {
	cmp := domain.SchemeComparison{NPS: nps, UPS: ups}

	award := func(upsWins bool, weight decimal.Decimal) {
		if upsWins {
			cmp.UPSScore = cmp.UPSScore.Add(weight)
		} else {
			cmp.NPSScore = cmp.NPSScore.Add(weight)
		}
	}

	award(ups.AdjustedPension.GreaterThan(nps.AdjustedPension), weightPension)
	award(ups.FinalCorpus.GreaterThan(nps.FinalCorpus), weightCorpus)
	award(ups.XIRR.GreaterThan(nps.XIRR), weightXIRR)
	award(ups.PresentValue.GreaterThan(nps.PresentValue), weightNPV)

	if cmp.UPSScore.GreaterThan(cmp.NPSScore) {
		cmp.Recommended = domain.SchemeUPS
	} else {
		cmp.Recommended = domain.SchemeNPS
	}
	return cmp
}
