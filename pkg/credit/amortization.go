// Package credit computes installment amounts and schedules for the
// backend's financing plans.
package credit

import (
	"math"
	"time"

	"github.com/modaboutique/storefront/pkg/models"
)

// Installment returns the fixed periodic payment for a principal
// financed at the given annual rate over termPeriods payments.
//
// The annual rate is always divided by 12, even for weekly and
// biweekly plans; that matches how every other client of this backend
// computes the quoted amount, so changing it here would make our
// quotes disagree with theirs.
func Installment(total, annualRatePercent float64, termPeriods int) float64 {
	if termPeriods <= 0 {
		return 0
	}
	if annualRatePercent == 0 {
		// The amortization formula divides by zero at 0%.
		return total / float64(termPeriods)
	}
	monthlyRate := (annualRatePercent / 100) / 12
	factor := math.Pow(1+monthlyRate, float64(termPeriods))
	return total * monthlyRate * factor / (factor - 1)
}

// PlanInstallment quotes the installment for a plan applied to a cart
// total.
func PlanInstallment(total float64, plan models.CreditPlan) float64 {
	return Installment(total, plan.AnnualRate, plan.Term)
}

// TotalRepaid is the sum of all installments: principal plus interest.
func TotalRepaid(total, annualRatePercent float64, termPeriods int) float64 {
	return Installment(total, annualRatePercent, termPeriods) * float64(termPeriods)
}

// DueDates lays out the installment calendar from a start date. The
// backend spaces installments 7 days apart for weekly plans, 15 for
// biweekly, and one calendar month for monthly.
func DueDates(start time.Time, frequency models.Frequency, termPeriods int) []time.Time {
	dates := make([]time.Time, 0, termPeriods)
	current := start
	for i := 0; i < termPeriods; i++ {
		switch frequency {
		case models.FrequencyWeekly:
			current = current.AddDate(0, 0, 7)
		case models.FrequencyBiweekly:
			current = current.AddDate(0, 0, 15)
		default:
			current = current.AddDate(0, 1, 0)
		}
		dates = append(dates, current)
	}
	return dates
}
