/*
engine.go - Grouping, sorting and ranking pipeline

PURPOSE:
  Turns a flat batch of finalized instructions into the three ordered
  summary tables: daily incoming/outgoing totals, entities ranked by
  incoming USD, entities ranked by outgoing USD.

ALGORITHM:
  One pass accumulates two groupings:
  - by settlement date, split into incoming (Sell) and outgoing (Buy) sums;
    a date with activity on one side only reports 0.00 on the other.
  - by entity per direction; an entity with no activity in a direction is
    absent from that direction's ranking, not present with zero.
  The intermediate maps are discarded once the ordered tables are built.

ORDERING:
  Daily rows ascend by date (dates are unique keys, no ties). Rankings
  descend by total; equal totals order ascending by entity name, which
  makes repeated runs over the same batch byte-identical.

PURITY:
  Summarize holds no state between calls and never fails on valid input.
  An empty batch yields three empty tables.
*/
package settlement

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// Engine aggregates finalized instructions into summary tables.
type Engine struct{}

func NewEngine() *Engine { return &Engine{} }

// Summarize produces the three ordered result tables in one pass over the
// batch. Tables are recomputed wholesale on every call.
func (e *Engine) Summarize(instructions []Instruction) Summary {
	type dailySums struct {
		incoming decimal.Decimal
		outgoing decimal.Decimal
	}

	byDate := make(map[time.Time]dailySums)
	incomingByEntity := make(map[string]decimal.Decimal)
	outgoingByEntity := make(map[string]decimal.Decimal)

	for _, in := range instructions {
		sums := byDate[in.SettlementDate]
		switch in.Direction {
		case Sell:
			sums.incoming = sums.incoming.Add(in.USDAmount)
			incomingByEntity[in.Entity] = incomingByEntity[in.Entity].Add(in.USDAmount)
		case Buy:
			sums.outgoing = sums.outgoing.Add(in.USDAmount)
			outgoingByEntity[in.Entity] = outgoingByEntity[in.Entity].Add(in.USDAmount)
		}
		byDate[in.SettlementDate] = sums
	}

	daily := make([]DailyTotal, 0, len(byDate))
	for date, sums := range byDate {
		daily = append(daily, DailyTotal{Date: date, Incoming: sums.incoming, Outgoing: sums.outgoing})
	}
	sort.Slice(daily, func(i, j int) bool { return daily[i].Date.Before(daily[j].Date) })

	return Summary{
		Daily:           daily,
		IncomingRanking: rankEntities(incomingByEntity),
		OutgoingRanking: rankEntities(outgoingByEntity),
	}
}

// rankEntities orders an entity->total mapping descending by total,
// ascending by entity name on equal totals.
func rankEntities(totals map[string]decimal.Decimal) []EntityTotal {
	ranking := make([]EntityTotal, 0, len(totals))
	for entity, total := range totals {
		ranking = append(ranking, EntityTotal{Entity: entity, Total: total})
	}
	sort.Slice(ranking, func(i, j int) bool {
		if cmp := ranking[i].Total.Cmp(ranking[j].Total); cmp != 0 {
			return cmp > 0
		}
		return ranking[i].Entity < ranking[j].Entity
	})
	return ranking
}
