/*
Package ingest parses tab-separated instruction batches into finalized
settlement instructions.

WIRE FORMAT:
  Eight tab-separated fields in fixed order:
    Entity, Buy/Sell, AgreedFx, Currency, InstructionDate, SettlementDate,
    Units, Price per unit
  Dates are "02 Jan 2006"; Buy/Sell is the literal "B" or "S". A line whose
  first two fields are "Entity" and "Buy/Sell" is a header and is skipped.
  Leading/trailing whitespace around field values is ignored.

FAILURE MODE:
  Any record failing type conversion aborts the whole batch with a
  MalformedInstructionError naming the line, field and offending value.
  There is no row-skipping or partial-success mode.

SEE ALSO:
  - settlement/instruction.go: Finalization applied to every parsed record
*/
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/warp/settlement-engine/settlement"
)

// Field names as they appear in the header, used in error reporting.
const (
	fieldEntity          = "Entity"
	fieldDirection       = "Buy/Sell"
	fieldAgreedFx        = "AgreedFx"
	fieldCurrency        = "Currency"
	fieldInstructionDate = "InstructionDate"
	fieldSettlementDate  = "SettlementDate"
	fieldUnits           = "Units"
	fieldPricePerUnit    = "Price per unit"
)

const fieldCount = 8

// Parser turns a raw instruction stream into finalized instructions.
type Parser interface {
	Parse(r io.Reader) ([]settlement.Instruction, error)
}

// TSVParser parses the tab-separated reference format. Every parsed
// instruction is finalized against the parser's calendar before return.
type TSVParser struct {
	calendar *settlement.Calendar
}

func NewTSVParser(cal *settlement.Calendar) *TSVParser {
	return &TSVParser{calendar: cal}
}

var _ Parser = (*TSVParser)(nil)

// Parse reads the whole batch. An empty stream yields an empty slice.
func (p *TSVParser) Parse(r io.Reader) ([]settlement.Instruction, error) {
	reader := csv.NewReader(r)
	reader.Comma = '\t'
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true

	var instructions []settlement.Instruction
	line := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read instruction batch: %w", err)
		}
		line++

		for i := range record {
			record[i] = strings.TrimSpace(record[i])
		}
		if isHeader(record) {
			continue
		}
		if len(record) != fieldCount {
			return nil, &settlement.MalformedInstructionError{
				Line:  line,
				Field: "record",
				Value: strings.Join(record, "\t"),
				Err:   fmt.Errorf("expected %d fields, got %d", fieldCount, len(record)),
			}
		}

		in, err := p.parseRecord(line, record)
		if err != nil {
			return nil, err
		}
		in.Finalize(p.calendar)
		instructions = append(instructions, in)
	}
	return instructions, nil
}

func (p *TSVParser) parseRecord(line int, record []string) (settlement.Instruction, error) {
	var in settlement.Instruction
	in.Entity = record[0]
	in.Currency = record[3]

	direction, ok := settlement.ParseDirection(record[1])
	if !ok {
		return in, malformed(line, fieldDirection, record[1], fmt.Errorf(`expected "B" or "S"`))
	}
	in.Direction = direction

	fx, err := decimal.NewFromString(record[2])
	if err != nil {
		return in, malformed(line, fieldAgreedFx, record[2], err)
	}
	in.AgreedFx = fx

	in.InstructionDate, err = settlement.ParseDate(record[4])
	if err != nil {
		return in, malformed(line, fieldInstructionDate, record[4], err)
	}

	in.SettlementDate, err = settlement.ParseDate(record[5])
	if err != nil {
		return in, malformed(line, fieldSettlementDate, record[5], err)
	}

	units, err := strconv.ParseInt(record[6], 10, 64)
	if err != nil {
		return in, malformed(line, fieldUnits, record[6], err)
	}
	if units < 0 {
		return in, malformed(line, fieldUnits, record[6], fmt.Errorf("units must be non-negative"))
	}
	in.Units = units

	price, err := decimal.NewFromString(record[7])
	if err != nil {
		return in, malformed(line, fieldPricePerUnit, record[7], err)
	}
	in.PricePerUnit = price

	return in, nil
}

// isHeader matches the reference header line by its first two fields.
func isHeader(record []string) bool {
	return len(record) >= 2 && record[0] == fieldEntity && record[1] == fieldDirection
}

func malformed(line int, field, value string, err error) error {
	return &settlement.MalformedInstructionError{Line: line, Field: field, Value: value, Err: err}
}
