/*
Package settlement provides the instruction normalization and aggregation engine.

PURPOSE:
  This package contains the domain types and algorithms for turning a flat
  batch of buy/sell settlement instructions into ordered summary tables:
  USD settled per day, and entities ranked by incoming/outgoing USD.

KEY CONCEPTS IN THIS FILE (types.go):
  - Direction: Buy (USD outgoing) or Sell (USD incoming)
  - Date: A calendar day (always UTC midnight, used as grouping keys)
  - DailyTotal/EntityTotal/Summary: The ordered result tables

DESIGN PRINCIPLES:
  1. Precision: Uses decimal.Decimal for all monetary amounts
  2. Purity: Summarize is a pure function of its input batch
  3. Type Safety: Direction is a closed enum, validated at parse time

SEE ALSO:
  - instruction.go: Instruction record, finalization
  - calendar.go: Per-currency working-day calendars
  - engine.go: Grouping, sorting and ranking pipeline
*/
package settlement

import (
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// DIRECTION - Buy or Sell, from the reporting entity's perspective
// =============================================================================

// Direction is the side of an instruction. Buy means USD flows out of the
// reporting entity; Sell means USD flows in.
type Direction string

const (
	Buy  Direction = "B"
	Sell Direction = "S"
)

func (d Direction) String() string { return string(d) }

func (d Direction) Valid() bool { return d == Buy || d == Sell }

// ParseDirection maps the wire literal ("B" or "S") to a Direction.
func ParseDirection(s string) (Direction, bool) {
	switch Direction(s) {
	case Buy:
		return Buy, true
	case Sell:
		return Sell, true
	default:
		return "", false
	}
}

// =============================================================================
// DATE - Calendar-day granularity time values
// =============================================================================

// DateFormat is the wire format for instruction and settlement dates.
const DateFormat = "02 Jan 2006"

// NewDate builds a UTC-midnight calendar day. All dates flowing through the
// engine are normalized this way so they can be used as map keys.
func NewDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a "02 Jan 2006" wire date into a UTC-midnight day.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return time.Time{}, err
	}
	return NewDate(t.Year(), t.Month(), t.Day()), nil
}

// =============================================================================
// RESULT TABLES - Derived, regenerable, never persisted independently
// =============================================================================

// DailyTotal is one row of the per-day settlement table.
type DailyTotal struct {
	Date     time.Time
	Incoming decimal.Decimal // Sell instructions settled on Date
	Outgoing decimal.Decimal // Buy instructions settled on Date
}

// EntityTotal is one row of a ranking table. Rank is positional (1-based
// index in the slice), not stored.
type EntityTotal struct {
	Entity string
	Total  decimal.Decimal
}

// Summary holds the three ordered result tables produced by Engine.Summarize.
type Summary struct {
	Daily           []DailyTotal  // ascending by date
	IncomingRanking []EntityTotal // descending by total incoming USD
	OutgoingRanking []EntityTotal // descending by total outgoing USD
}
