package api_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/settlement-engine/api"
	"github.com/warp/settlement-engine/settlement"
)

// =============================================================================
// TEST SETUP
// =============================================================================

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	handler := api.NewHandler(settlement.NewCalendar(), zerolog.Nop())
	srv := httptest.NewServer(api.NewRouter(handler, "*"))
	t.Cleanup(srv.Close)
	return srv
}

const sampleBatch = `Entity	Buy/Sell	AgreedFx	Currency	InstructionDate	SettlementDate	Units	Price per unit
foo	B	0.50	SGP	01 Jan 2024	02 Jan 2024	200	100.25
bar	S	0.22	AED	05 Jan 2024	07 Jan 2024	450	150.5
`

func postBatch(t *testing.T, srv *httptest.Server, path, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(srv.URL+path, "text/tab-separated-values", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

// =============================================================================
// SUMMARIZE ENDPOINT
// =============================================================================

func TestSummarizeBatch_ReturnsTables(t *testing.T) {
	srv := newTestServer(t)

	resp := postBatch(t, srv, "/api/batches/summarize", sampleBatch)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var summary api.SummaryDTO
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&summary))

	assert.Equal(t, 2, summary.InstructionCount)
	require.Len(t, summary.Daily, 2)
	// foo: 100.25 * 200 * 0.50 = 10025.00 outgoing on 02 Jan
	assert.Equal(t, "02 Jan 2024", summary.Daily[0].Date)
	assert.Equal(t, "10025.00", summary.Daily[0].Outgoing)
	assert.Equal(t, "0.00", summary.Daily[0].Incoming)
	// bar: 150.5 * 450 * 0.22 = 14899.50 incoming on 07 Jan (Sunday, AED working day)
	assert.Equal(t, "07 Jan 2024", summary.Daily[1].Date)
	assert.Equal(t, "14899.50", summary.Daily[1].Incoming)

	require.Len(t, summary.IncomingRanking, 1)
	assert.Equal(t, 1, summary.IncomingRanking[0].Rank)
	assert.Equal(t, "bar", summary.IncomingRanking[0].Entity)
	require.Len(t, summary.OutgoingRanking, 1)
	assert.Equal(t, "foo", summary.OutgoingRanking[0].Entity)
}

func TestSummarizeBatch_EmptyBody_EmptyTables(t *testing.T) {
	srv := newTestServer(t)

	resp := postBatch(t, srv, "/api/batches/summarize", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var summary api.SummaryDTO
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&summary))
	assert.Zero(t, summary.InstructionCount)
	assert.Empty(t, summary.Daily)
}

func TestSummarizeBatch_MalformedRecord_BadRequest(t *testing.T) {
	srv := newTestServer(t)

	resp := postBatch(t, srv, "/api/batches/summarize", "foo\tQ\t1.0\tUSD\t01 Jan 2024\t02 Jan 2024\t10\t5.0\n")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var errResp api.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
	assert.Equal(t, "malformed_instruction", errResp.Code)

	details, ok := errResp.Details.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Buy/Sell", details["field"])
	assert.Equal(t, float64(1), details["line"])
}

// =============================================================================
// REPORT ENDPOINT
// =============================================================================

func TestReportBatch_ReturnsPlainText(t *testing.T) {
	srv := newTestServer(t)

	resp := postBatch(t, srv, "/api/batches/report", sampleBatch)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/plain")

	body := readBody(t, resp)
	assert.Contains(t, body, "AMOUNTS SETTLED EVERY DAY")
	assert.Contains(t, body, "RANKING OF ENTITIES BASED ON INCOMING AMOUNT")
	assert.Contains(t, body, "14899.50")
}

// =============================================================================
// CALENDARS AND HEALTH
// =============================================================================

func TestGetCalendars_ReferenceConfiguration(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/calendars")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var cal api.CalendarDTO
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&cal))
	assert.Equal(t, []string{"Mon", "Tue", "Wed", "Thu", "Fri"}, cal.Default)
	assert.Equal(t, []string{"Sun", "Mon", "Tue", "Wed", "Thu"}, cal.Currencies["AED"])
	assert.Contains(t, cal.Currencies, "SAR")
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}
