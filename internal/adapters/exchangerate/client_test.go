package exchangerate_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"trip_planner/internal/adapters/exchangerate"
)

func TestRates_LiveProvider(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(200)
		_, _ = w.Write([]byte(`{
		  "result": "success",
		  "base_code": "INR",
		  "time_last_update_utc": "Fri, 29 Aug 2026 00:00:01 +0000",
		  "conversion_rates": {"USD": 0.0119, "EUR": 0.0109}
		}`))
	}))
	defer ts.Close()

	cl := exchangerate.New(ts.URL, "test-key", 100)
	tbl, err := cl.Rates(context.Background(), "inr")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if tbl.Base != "INR" || tbl.Rates["USD"] != 0.0119 {
		t.Fatalf("unexpected table: %+v", tbl)
	}
	if tbl.UpdatedAt == "fallback" {
		t.Fatalf("expected live data")
	}
}

func TestRates_ProviderFailureUsesFallback(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(500)
	}))
	defer ts.Close()

	cl := exchangerate.New(ts.URL, "test-key", 100)
	tbl, err := cl.Rates(context.Background(), "INR")
	if err != nil {
		t.Fatalf("fallback should not error: %v", err)
	}
	if tbl.UpdatedAt != "fallback" || tbl.Rates["USD"] == 0 {
		t.Fatalf("unexpected table: %+v", tbl)
	}
}

func TestRates_NoKeySkipsProvider(t *testing.T) {
	cl := exchangerate.New("http://127.0.0.1:1", "", 100) // would fail if dialed
	tbl, err := cl.Rates(context.Background(), "")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if tbl.Base != "INR" || tbl.UpdatedAt != "fallback" {
		t.Fatalf("unexpected table: %+v", tbl)
	}
}

func TestFallback_UnknownBaseUsesUSDRow(t *testing.T) {
	tbl := exchangerate.Fallback("BRL")
	if tbl.Base != "BRL" || tbl.Rates["INR"] != 83.15 {
		t.Fatalf("unexpected table: %+v", tbl)
	}
}

func TestRateTableConvert(t *testing.T) {
	tbl := exchangerate.Fallback("INR")
	got, err := tbl.Convert(1000, "usd")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if got != 12 { // 1000 * 0.012
		t.Fatalf("converted: %v", got)
	}
	if _, err := tbl.Convert(10, "XYZ"); err == nil {
		t.Fatalf("expected error for unknown currency")
	}
	same, _ := tbl.Convert(42, "INR")
	if same != 42 {
		t.Fatalf("identity conversion: %v", same)
	}
}
