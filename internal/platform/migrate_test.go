package platform

import (
	"io/fs"
	"strings"
	"testing"
)

func TestMigrationsArePaired(t *testing.T) {
	entries, err := fs.ReadDir(migrationsFS, "migrations")
	if err != nil {
		t.Fatalf("read migrations: %v", err)
	}

	ups := map[string]bool{}
	downs := map[string]bool{}
	for _, e := range entries {
		name := e.Name()
		switch {
		case strings.HasSuffix(name, ".up.sql"):
			ups[strings.TrimSuffix(name, ".up.sql")] = true
		case strings.HasSuffix(name, ".down.sql"):
			downs[strings.TrimSuffix(name, ".down.sql")] = true
		default:
			t.Errorf("unexpected file %s", name)
		}
	}
	if len(ups) == 0 {
		t.Fatal("no migrations embedded")
	}
	for v := range ups {
		if !downs[v] {
			t.Errorf("migration %s has no down file", v)
		}
	}
}

func TestInitialSchemaTables(t *testing.T) {
	data, err := fs.ReadFile(migrationsFS, "migrations/0001_init.up.sql")
	if err != nil {
		t.Fatalf("read initial migration: %v", err)
	}
	sql := string(data)
	for _, want := range []string{"CREATE TABLE companies", "CREATE TABLE items", "document_ref", "report_ref", "JSONB"} {
		if !strings.Contains(sql, want) {
			t.Errorf("initial migration missing %q", want)
		}
	}
}
