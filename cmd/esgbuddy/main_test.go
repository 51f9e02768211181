package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/esgbuddy/esgbuddy/internal/history"
	"github.com/esgbuddy/esgbuddy/internal/items"
)

const sampleDocument = "../../internal/seed/data/company_data.json"

func TestComputeCmdFlags(t *testing.T) {
	cmd := newComputeCmd()
	f := cmd.Flags()

	outputFmt, _ := f.GetString("output")
	if outputFmt != "text" {
		t.Errorf("default output = %q, want text", outputFmt)
	}
	if got := f.Lookup("write").NoOptDefVal; got != writeDefault {
		t.Errorf("write NoOptDefVal = %q, want %q", got, writeDefault)
	}

	for _, flag := range []string{"output", "base-route", "notes", "write", "save"} {
		if f.Lookup(flag) == nil {
			t.Errorf("missing flag: %s", flag)
		}
	}
}

func TestHistoryCmdFlags(t *testing.T) {
	cmd := newHistoryCmd()
	f := cmd.Flags()

	limit, _ := f.GetInt("limit")
	if limit != history.DefaultLimit {
		t.Errorf("default limit = %d, want %d", limit, history.DefaultLimit)
	}
	if f.Lookup("company") == nil {
		t.Error("missing flag: company")
	}

	var hasShow bool
	for _, sub := range cmd.Commands() {
		if sub.Name() == "show" {
			hasShow = true
		}
	}
	if !hasShow {
		t.Error("history has no show subcommand")
	}
}

func TestRootCmdSubcommands(t *testing.T) {
	root := newRootCmd()
	want := map[string]bool{"compute": false, "seed": false, "populate": false, "history": false, "mcp": false}
	for _, sub := range root.Commands() {
		if _, ok := want[sub.Name()]; ok {
			want[sub.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("missing subcommand %q", name)
		}
	}
}

func decodeOverall(t *testing.T, data []byte) float64 {
	t.Helper()
	var out struct {
		OverallScore float64 `json:"overall_score"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("decode report: %v\n%s", err, data)
	}
	return out.OverallScore
}

func TestRunComputeJSON(t *testing.T) {
	var stdout bytes.Buffer
	err := runCompute(context.Background(), computeOpts{
		input:     sampleDocument,
		outputFmt: "json",
	}, strings.NewReader(""), &stdout)
	if err != nil {
		t.Fatalf("runCompute: %v", err)
	}
	if got := decodeOverall(t, stdout.Bytes()); got != 75.2 {
		t.Errorf("overall_score = %v, want 75.2", got)
	}
}

func TestRunComputeStdin(t *testing.T) {
	data, err := os.ReadFile(sampleDocument)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}

	var stdout bytes.Buffer
	err = runCompute(context.Background(), computeOpts{
		input:     "-",
		outputFmt: "markdown",
		baseRoute: "/esg",
	}, bytes.NewReader(data), &stdout)
	if err != nil {
		t.Fatalf("runCompute: %v", err)
	}
	if !strings.Contains(stdout.String(), "/esg/") {
		t.Errorf("markdown output does not use base route /esg:\n%s", stdout.String())
	}
}

func TestRunComputeWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "report.json")

	var stdout bytes.Buffer
	err := runCompute(context.Background(), computeOpts{
		input:     sampleDocument,
		outputFmt: "text",
		writePath: path,
	}, strings.NewReader(""), &stdout)
	if err != nil {
		t.Fatalf("runCompute: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("report not written: %v", err)
	}
	if got := decodeOverall(t, data); got != 75.2 {
		t.Errorf("written overall_score = %v, want 75.2", got)
	}
}

func TestRunComputeWriteAuto(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	var stdout bytes.Buffer
	err := runCompute(context.Background(), computeOpts{
		input:     sampleDocument,
		outputFmt: "json",
		writePath: writeDefault,
	}, strings.NewReader(""), &stdout)
	if err != nil {
		t.Fatalf("runCompute: %v", err)
	}

	matches, err := filepath.Glob(filepath.Join(os.Getenv("HOME"), ".cache", "esgbuddy", "reports", "*", "*.json"))
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 1 {
		t.Errorf("expected one report under the cache dir, got %v", matches)
	}
}

func TestRunComputeErrors(t *testing.T) {
	tests := []struct {
		name string
		opts computeOpts
	}{
		{"unknown format", computeOpts{input: sampleDocument, outputFmt: "yaml"}},
		{"missing file", computeOpts{input: filepath.Join(t.TempDir(), "missing.json"), outputFmt: "json"}},
		{"invalid stdin", computeOpts{input: "-", outputFmt: "json"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var stdout bytes.Buffer
			err := runCompute(context.Background(), tc.opts, strings.NewReader("{not json"), &stdout)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if stdout.Len() != 0 {
				t.Errorf("expected no output on error, got %q", stdout.String())
			}
		})
	}
}

func TestRunComputeSaveAndHistory(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "history.db")

	for range 2 {
		var stdout bytes.Buffer
		err := runCompute(ctx, computeOpts{
			input:     sampleDocument,
			outputFmt: "json",
			save:      true,
			history:   dbPath,
		}, strings.NewReader(""), &stdout)
		if err != nil {
			t.Fatalf("runCompute: %v", err)
		}
	}

	var list bytes.Buffer
	if err := runHistoryList(ctx, dbPath, history.ListOptions{}, &list); err != nil {
		t.Fatalf("runHistoryList: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(list.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header and 2 rows, got:\n%s", list.String())
	}
	if !strings.Contains(lines[1], "75.2") {
		t.Errorf("row missing overall score: %q", lines[1])
	}

	var show bytes.Buffer
	if err := runHistoryShow(ctx, dbPath, 1, "json", &show); err != nil {
		t.Fatalf("runHistoryShow: %v", err)
	}
	if got := decodeOverall(t, show.Bytes()); got != 75.2 {
		t.Errorf("stored overall_score = %v, want 75.2", got)
	}

	if err := runHistoryShow(ctx, dbPath, 99, "json", &show); err == nil {
		t.Error("expected error for unknown history id")
	}
}

func TestRunHistoryListEmpty(t *testing.T) {
	var out bytes.Buffer
	path := filepath.Join(t.TempDir(), "history.db")
	if err := runHistoryList(context.Background(), path, history.ListOptions{}, &out); err != nil {
		t.Fatalf("runHistoryList: %v", err)
	}
	if !strings.Contains(out.String(), "No reports recorded") {
		t.Errorf("unexpected output %q", out.String())
	}
}

type fakeItems struct {
	deleted int64
	created []map[string]any
}

func (f *fakeItems) DeleteAll(ctx context.Context) (int64, error) {
	f.deleted = int64(len(f.created))
	f.created = nil
	return f.deleted, nil
}

func (f *fakeItems) Create(ctx context.Context, fields map[string]any) (*items.Item, error) {
	f.created = append(f.created, fields)
	return &items.Item{ID: "id", Data: fields}, nil
}

func TestRunPopulate(t *testing.T) {
	f := &fakeItems{created: []map[string]any{{"name": "stale"}}}

	var out bytes.Buffer
	if err := runPopulate(context.Background(), f, &out); err != nil {
		t.Fatalf("runPopulate: %v", err)
	}
	if f.deleted != 1 {
		t.Errorf("deleted = %d, want 1", f.deleted)
	}
	if len(f.created) != 5 {
		t.Errorf("created %d items, want 5", len(f.created))
	}
	if !strings.Contains(out.String(), "1. Solar Panel Installation (Environmental) - Impact: High") {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}

func TestFirstNonEmpty(t *testing.T) {
	tests := []struct {
		vals []string
		want string
	}{
		{[]string{"", "b", "c"}, "b"},
		{[]string{"a", "b"}, "a"},
		{[]string{"", ""}, ""},
		{nil, ""},
	}
	for _, tc := range tests {
		if got := firstNonEmpty(tc.vals...); got != tc.want {
			t.Errorf("firstNonEmpty(%q) = %q, want %q", tc.vals, got, tc.want)
		}
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg := loadConfig(t.TempDir())
	if cfg.Output.Format != "text" {
		t.Errorf("expected default config, got %+v", cfg)
	}
}
