/*
dto.go - Data Transfer Objects for API responses

PURPOSE:
  JSON structures decoupling the domain types from the API contract.
  Amounts serialize as fixed two-decimal strings so clients never see
  floating-point noise.

SEE ALSO:
  - handlers.go: Uses these types
*/
package api

import (
	"github.com/warp/settlement-engine/settlement"
)

// DailyTotalDTO is one row of the per-day settlement table.
type DailyTotalDTO struct {
	Date     string `json:"date"` // "02 Jan 2006"
	Incoming string `json:"incoming_usd"`
	Outgoing string `json:"outgoing_usd"`
}

// EntityTotalDTO is one row of a ranking table.
type EntityTotalDTO struct {
	Rank   int    `json:"rank"`
	Entity string `json:"entity"`
	Total  string `json:"total_usd"`
}

// SummaryDTO carries all three result tables.
type SummaryDTO struct {
	Daily            []DailyTotalDTO  `json:"daily_totals"`
	IncomingRanking  []EntityTotalDTO `json:"incoming_ranking"`
	OutgoingRanking  []EntityTotalDTO `json:"outgoing_ranking"`
	InstructionCount int              `json:"instruction_count"`
}

// CalendarDTO describes the active working-day configuration.
type CalendarDTO struct {
	Default    []string            `json:"default"`
	Currencies map[string][]string `json:"currencies"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

// =============================================================================
// CONVERSION HELPERS
// =============================================================================

func toSummaryDTO(s settlement.Summary, count int) SummaryDTO {
	dto := SummaryDTO{
		Daily:            make([]DailyTotalDTO, len(s.Daily)),
		IncomingRanking:  toRankingDTOs(s.IncomingRanking),
		OutgoingRanking:  toRankingDTOs(s.OutgoingRanking),
		InstructionCount: count,
	}
	for i, row := range s.Daily {
		dto.Daily[i] = DailyTotalDTO{
			Date:     row.Date.Format(settlement.DateFormat),
			Incoming: row.Incoming.StringFixed(2),
			Outgoing: row.Outgoing.StringFixed(2),
		}
	}
	return dto
}

func toRankingDTOs(ranking []settlement.EntityTotal) []EntityTotalDTO {
	dtos := make([]EntityTotalDTO, len(ranking))
	for i, row := range ranking {
		dtos[i] = EntityTotalDTO{Rank: i + 1, Entity: row.Entity, Total: row.Total.StringFixed(2)}
	}
	return dtos
}

func toCalendarDTO(cal *settlement.Calendar) CalendarDTO {
	dto := CalendarDTO{
		Default:    weekdayNames(cal.DefaultDays()),
		Currencies: make(map[string][]string),
	}
	for _, code := range cal.Currencies() {
		dto.Currencies[code] = weekdayNames(cal.WorkingDays(code))
	}
	return dto
}

func weekdayNames(set settlement.WeekdaySet) []string {
	days := set.Weekdays()
	names := make([]string, len(days))
	for i, d := range days {
		names[i] = d.String()[:3]
	}
	return names
}
