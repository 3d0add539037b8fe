/*
instruction.go - The settlement instruction record and its finalization

PURPOSE:
  An Instruction is a single normalized buy/sell record. It owns the two
  derivations that make it aggregatable:
  1. Settlement-date correction: roll forward to the next working day
     for the instruction's currency.
  2. USD amount: round(price_per_unit * units * agreed_fx, 2).

LIFECYCLE:
  Instructions are drafts until Finalize is called. Only finalized
  instructions may be fed to the aggregation engine. Finalize is
  idempotent: correcting an already-correct date is a no-op, and the
  amount computation is a pure function of fixed inputs.

ROUNDING:
  decimal.Round rounds half away from zero, i.e. half-up for the
  non-negative amounts this system produces: 30.015 -> 30.02.

SEE ALSO:
  - calendar.go: Working-day resolution
  - engine.go: Consumes finalized instructions
*/
package settlement

import (
	"time"

	"github.com/shopspring/decimal"
)

// Instruction is a single settlement instruction from a trading entity.
// Value-like; immutable once finalized.
type Instruction struct {
	Entity          string
	Direction       Direction
	AgreedFx        decimal.Decimal
	Currency        string
	InstructionDate time.Time
	SettlementDate  time.Time
	Units           int64
	PricePerUnit    decimal.Decimal

	// USDAmount is derived by Finalize; zero until then.
	USDAmount decimal.Decimal

	finalized bool
}

// Finalized reports whether Finalize has run. Draft instructions must not
// be aggregated.
func (in *Instruction) Finalized() bool { return in.finalized }

// Finalize corrects the settlement date and computes the USD amount, in that
// order, as a single atomic step. Safe to call more than once.
func (in *Instruction) Finalize(cal *Calendar) {
	in.CorrectSettlementDate(cal)
	in.USDAmount = in.computeUSDAmount()
	in.finalized = true
}

// CorrectSettlementDate advances the settlement date one day at a time until
// it lands on a working day for the instruction's currency.
//
// A currency configured with an empty working-day set would never terminate,
// so correction is a no-op for empty sets.
func (in *Instruction) CorrectSettlementDate(cal *Calendar) {
	days := cal.WorkingDays(in.Currency)
	if days.IsEmpty() {
		return
	}
	for !days.Contains(in.SettlementDate.Weekday()) {
		in.SettlementDate = in.SettlementDate.AddDate(0, 0, 1)
	}
}

func (in *Instruction) computeUSDAmount() decimal.Decimal {
	return in.PricePerUnit.
		Mul(decimal.NewFromInt(in.Units)).
		Mul(in.AgreedFx).
		Round(2)
}
