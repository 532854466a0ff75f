package db

import (
	"strings"
	"testing"
	"testing/fstest"
)

func TestPendingMigrations(t *testing.T) {
	fsys := fstest.MapFS{
		"migrations/002_indexes.sql": {Data: []byte("SELECT 2;")},
		"migrations/001_init.sql":    {Data: []byte("SELECT 1;")},
		"migrations/003_extra.sql":   {Data: []byte("SELECT 3;")},
		"migrations/README.md":       {Data: []byte("notes")},
	}

	tests := []struct {
		name     string
		executed map[string]bool
		want     []string
	}{
		{"fresh database", map[string]bool{}, []string{"001_init.sql", "002_indexes.sql", "003_extra.sql"}},
		{"partially migrated", map[string]bool{"001_init.sql": true}, []string{"002_indexes.sql", "003_extra.sql"}},
		{"up to date", map[string]bool{"001_init.sql": true, "002_indexes.sql": true, "003_extra.sql": true}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := pendingMigrations(fsys, tt.executed)
			if err != nil {
				t.Fatalf("pendingMigrations: %v", err)
			}
			if strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Errorf("pending: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEmbeddedSchema(t *testing.T) {
	script, err := migrationsFS.ReadFile("migrations/001_init.sql")
	if err != nil {
		t.Fatalf("read embedded migration: %v", err)
	}
	for _, constraint := range []string{
		"users_username_key",
		"groups_name_key",
		"group_members_group_id_fkey",
		"matches_group_id_fkey",
	} {
		if !strings.Contains(string(script), constraint) {
			t.Errorf("schema does not declare constraint %s", constraint)
		}
	}
}
