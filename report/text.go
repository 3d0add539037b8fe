/*
Package report renders summary tables as plain text.

The layout is byte-compatible with the reference reports: tab-separated
columns, fixed widths, dates as "02 Jan 2006", amounts always with two
decimal places.
*/
package report

import (
	"fmt"
	"strings"

	"github.com/warp/settlement-engine/settlement"
)

const divider = "========================================================="

// DailySettlement renders the per-day incoming/outgoing table.
func DailySettlement(totals []settlement.DailyTotal) string {
	var b strings.Builder
	b.WriteString("AMOUNTS SETTLED EVERY DAY\n\n")
	fmt.Fprintf(&b, "%-13s\t%17s\t%17s", "DATE", "INCOMING (USD)", "OUTGOING (USD)")
	for _, row := range totals {
		fmt.Fprintf(&b, "\n%-13s\t%17s\t%17s",
			row.Date.Format(settlement.DateFormat),
			row.Incoming.StringFixed(2),
			row.Outgoing.StringFixed(2))
	}
	return b.String()
}

// EntityRanking renders a ranking table. direction is "INCOMING" or
// "OUTGOING" and only affects the title. Rank is the 1-based row position.
func EntityRanking(direction string, ranking []settlement.EntityTotal) string {
	var b strings.Builder
	fmt.Fprintf(&b, "RANKING OF ENTITIES BASED ON %s AMOUNT\n\n", strings.ToUpper(direction))
	fmt.Fprintf(&b, "%10s\t%-16s\t%16s", "Rank", "Entity", "USD")
	for i, row := range ranking {
		fmt.Fprintf(&b, "\n%10d\t%-16s\t%16s", i+1, row.Entity, row.Total.StringFixed(2))
	}
	return b.String()
}

// Full renders all three reports separated by divider lines, the layout the
// command-line tool prints.
func Full(s settlement.Summary) string {
	sections := []string{
		DailySettlement(s.Daily),
		EntityRanking("incoming", s.IncomingRanking),
		EntityRanking("outgoing", s.OutgoingRanking),
	}
	var b strings.Builder
	for _, section := range sections {
		b.WriteString(divider)
		b.WriteString("\n")
		b.WriteString(section)
		b.WriteString("\n")
	}
	return b.String()
}
