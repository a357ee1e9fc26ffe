package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/etnz/dashboard"
	"github.com/etnz/dashboard/prefs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type summaryResponse struct {
	Month   string `json:"month"`
	Summary struct {
		ProfitLoss struct {
			Amount json.Number `json:"amount"`
		} `json:"profitLoss"`
	} `json:"summary"`
	Transactions []map[string]any `json:"transactions"`
	Chart        []map[string]any `json:"chart"`
}

func newTestServer(t *testing.T, data *dashboard.MonthlyTransactionSet) (*httptest.Server, *prefs.MonthPreference) {
	t.Helper()
	pref := prefs.NewMonthPreference(prefs.NewMemory())
	ts := httptest.NewServer(New(data, pref, nil))
	t.Cleanup(ts.Close)
	return ts, pref
}

func do(t *testing.T, method, url, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	require.NoError(t, dec.Decode(v))
}

func TestMonths(t *testing.T) {
	ts, _ := newTestServer(t, dashboard.SampleData())

	resp := do(t, http.MethodGet, ts.URL+"/api/months", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var got monthsResponse
	decode(t, resp, &got)
	assert.Equal(t, []string{"January", "February", "March"}, got.Months)
	assert.Equal(t, "January", got.Selected)
}

func TestSummary(t *testing.T) {
	ts, _ := newTestServer(t, dashboard.SampleData())

	resp := do(t, http.MethodGet, ts.URL+"/api/summary?month=February", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got summaryResponse
	decode(t, resp, &got)
	assert.Equal(t, "February", got.Month)
	assert.Len(t, got.Transactions, 4)
	assert.Len(t, got.Chart, 2)
	assert.Equal(t, dashboard.InsufficientShares, got.Transactions[2]["error"])
}

func TestSummary_DefaultsToSelected(t *testing.T) {
	ts, pref := newTestServer(t, dashboard.SampleData())
	require.NoError(t, pref.Save(context.Background(), "March"))

	resp := do(t, http.MethodGet, ts.URL+"/api/summary", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got summaryResponse
	decode(t, resp, &got)
	assert.Equal(t, "March", got.Month)
	assert.Len(t, got.Chart, 3)
}

func TestSummary_UnknownMonth(t *testing.T) {
	ts, _ := newTestServer(t, dashboard.SampleData())

	resp := do(t, http.MethodGet, ts.URL+"/api/summary?month=April", "")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var got errorResponse
	decode(t, resp, &got)
	assert.Contains(t, got.Error, "unknown month")
}

func TestSummary_InvalidData(t *testing.T) {
	data := dashboard.NewMonthlyTransactionSet("USD")
	data.Append("January", dashboard.NewBuy("2024-01-05", "AAPL", dashboard.Q(-1), dashboard.M(150, "USD")))
	ts, _ := newTestServer(t, data)

	resp := do(t, http.MethodGet, ts.URL+"/api/summary?month=January", "")
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var got errorResponse
	decode(t, resp, &got)
	assert.Contains(t, got.Error, "January#1")
}

func TestSelectMonth(t *testing.T) {
	ts, pref := newTestServer(t, dashboard.SampleData())

	resp := do(t, http.MethodPut, ts.URL+"/api/selected-month", `{"month":"February"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got summaryResponse
	decode(t, resp, &got)
	assert.Equal(t, "February", got.Month)

	stored, err := pref.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "February", stored)

	resp = do(t, http.MethodGet, ts.URL+"/api/months", "")
	var months monthsResponse
	decode(t, resp, &months)
	assert.Equal(t, "February", months.Selected)
}

func TestSelectMonth_Rejected(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown month", `{"month":"April"}`},
		{"empty month", `{}`},
		{"malformed body", `{"month":`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ts, pref := newTestServer(t, dashboard.SampleData())

			resp := do(t, http.MethodPut, ts.URL+"/api/selected-month", tc.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

			stored, err := pref.Load(context.Background())
			require.NoError(t, err)
			assert.Equal(t, prefs.DefaultMonth, stored, "preference must not change")
		})
	}
}

func TestMarkdown(t *testing.T) {
	ts, pref := newTestServer(t, dashboard.SampleData())
	require.NoError(t, pref.Save(context.Background(), "March"))

	resp := do(t, http.MethodGet, ts.URL+"/", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/markdown; charset=utf-8", resp.Header.Get("Content-Type"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "# Summary for March")
}

func TestSelectedFallsBackToFirstMonth(t *testing.T) {
	data := dashboard.NewMonthlyTransactionSet("USD")
	data.Append("2024-05", dashboard.NewBuy("2024-05-02", "AAPL", dashboard.Q(1), dashboard.M(100, "USD")))
	ts, _ := newTestServer(t, data)

	resp := do(t, http.MethodGet, ts.URL+"/api/months", "")
	var got monthsResponse
	decode(t, resp, &got)
	assert.Equal(t, "2024-05", got.Selected)
}
