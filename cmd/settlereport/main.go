/*
main.go - Batch settlement report tool

Reads a tab-separated instruction batch and prints three reports:
amounts settled every day, entities ranked by incoming USD, and entities
ranked by outgoing USD.

USAGE:
  settlereport < data.tsv
  settlereport -in data.tsv -calendars calendars.json

On a malformed record the run terminates with a descriptive error naming
the offending line and field; no report is printed.
*/
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/warp/settlement-engine/ingest"
	"github.com/warp/settlement-engine/report"
	"github.com/warp/settlement-engine/settlement"
)

func main() {
	inPath := flag.String("in", "", "input TSV file (default: stdin)")
	calendarsPath := flag.String("calendars", "", "JSON working-day calendar override")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if err := run(*inPath, *calendarsPath, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("settlement report failed")
	}
}

func run(inPath, calendarsPath string, out io.Writer) error {
	cal := settlement.NewCalendar()
	if calendarsPath != "" {
		var err error
		cal, err = settlement.LoadCalendarFile(calendarsPath)
		if err != nil {
			return err
		}
	}

	in := io.Reader(os.Stdin)
	if inPath != "" {
		f, err := os.Open(inPath)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	instructions, err := ingest.NewTSVParser(cal).Parse(in)
	if err != nil {
		return err
	}

	summary := settlement.NewEngine().Summarize(instructions)
	_, err = fmt.Fprint(out, report.Full(summary))
	return err
}
