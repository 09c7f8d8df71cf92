package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/theirongolddev/salescast/internal/cli"
	"github.com/theirongolddev/salescast/internal/model"
)

// execute runs the root command against a throwaway config dir and returns
// everything written to stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	for _, k := range []string{"SALESCAST_THEME", "SALESCAST_DEFAULT_MONTH", "SALESCAST_ADDR"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	flagMonth, flagFormat, flagQuiet = 0, cli.FormatTable, true

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestPredictMonthFlag(t *testing.T) {
	out, err := execute(t, "predict", "-m", "12")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Predicción para Diciembre: $560.00  (+7.7% vs Noviembre)") {
		t.Errorf("output = %q", out)
	}
}

func TestPredictJSON(t *testing.T) {
	out, err := execute(t, "predict", "3", "-f", "json")
	if err != nil {
		t.Fatal(err)
	}
	var f model.Forecast
	if err := json.Unmarshal([]byte(out), &f); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if f.Month != 3 || f.Value != 200 || f.MonthName != "Marzo" {
		t.Errorf("forecast = %+v", f)
	}
}

func TestPredictRejectsBadMonth(t *testing.T) {
	for _, arg := range []string{"0", "13", "diciembre"} {
		if _, err := execute(t, "predict", arg); err == nil || !strings.Contains(err.Error(), "out of range") {
			t.Errorf("predict %s: err = %v", arg, err)
		}
	}
}

func TestPredictRejectsTableOnlyFormats(t *testing.T) {
	if _, err := execute(t, "predict", "12", "-f", "csv"); err == nil {
		t.Error("expected error for csv format")
	}
}

func TestSummaryMarkdown(t *testing.T) {
	out, err := execute(t, "summary", "-m", "11", "-f", "markdown")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "$560.00") || !strings.Contains(out, "|") {
		t.Errorf("markdown output = %q", out)
	}
}

func TestSummaryRejectsMonthFlag(t *testing.T) {
	if _, err := execute(t, "summary", "--month", "14"); err == nil {
		t.Error("expected --month 14 to fail")
	}
}

func TestCategoriesSingleSlug(t *testing.T) {
	out, err := execute(t, "categories", "camaras-y-fotografia", "-f", "json")
	if err != nil {
		t.Fatal(err)
	}
	var cats []model.CategoryMetric
	if err := json.Unmarshal([]byte(out), &cats); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if len(cats) != 1 || cats[0].Metric.Delta != "-7.1%" {
		t.Errorf("categories = %+v", cats)
	}
}

func TestCategoriesUnknownSlug(t *testing.T) {
	if _, err := execute(t, "categories", "juguetes"); err == nil {
		t.Error("expected unknown category error")
	}
}

func TestConfigShowsDefaults(t *testing.T) {
	out, err := execute(t, "config")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"using defaults", "Default month: 12 (Diciembre)", "Theme: flexoki-dark", "127.0.0.1:8787"} {
		if !strings.Contains(out, want) {
			t.Errorf("config output missing %q:\n%s", want, out)
		}
	}
}
