package migrate

import (
	"errors"
	"strings"
	"testing"
)

func appendMigration(version int, suffix string) Migration {
	return Migration{
		Version:     version,
		Description: "append " + suffix,
		Upgrade: func(data []byte) ([]byte, error) {
			return append(data, []byte(suffix)...), nil
		},
	}
}

// ///////////////////////////////////////////////
// Run Tests
// ///////////////////////////////////////////////

func TestRunAppliesInOrder(t *testing.T) {
	// Registered out of order; Run must sort by version.
	migrations := []Migration{
		appendMigration(3, "c"),
		appendMigration(2, "b"),
	}

	data, version, err := Run([]byte("a"), 1, migrations)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if string(data) != "abc" {
		t.Errorf("data = %q, want %q", data, "abc")
	}
	if version != 3 {
		t.Errorf("version = %d, want 3", version)
	}
}

func TestRunSkipsOlderVersions(t *testing.T) {
	migrations := []Migration{
		appendMigration(2, "b"),
		appendMigration(3, "c"),
	}

	data, version, err := Run([]byte("x"), 2, migrations)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if string(data) != "xc" {
		t.Errorf("data = %q, want only the v3 migration applied: %q", data, "xc")
	}
	if version != 3 {
		t.Errorf("version = %d, want 3", version)
	}
}

func TestRunNoMigrations(t *testing.T) {
	data, version, err := Run([]byte("x"), 5, nil)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if string(data) != "x" || version != 5 {
		t.Errorf("Run() = (%q, %d), want unchanged input", data, version)
	}
}

func TestRunUpgradeError(t *testing.T) {
	boom := errors.New("boom")
	migrations := []Migration{
		{
			Version:     2,
			Description: "failing",
			Upgrade:     func([]byte) ([]byte, error) { return nil, boom },
		},
	}

	_, version, err := Run([]byte("x"), 1, migrations)
	if !errors.Is(err, boom) {
		t.Fatalf("Run() error = %v, want wrapped boom", err)
	}
	if version != 1 {
		t.Errorf("version = %d, want 1 (unchanged on failure)", version)
	}
}

// ///////////////////////////////////////////////
// NeedsMigration Tests
// ///////////////////////////////////////////////

func TestNeedsMigration(t *testing.T) {
	migrations := []Migration{appendMigration(2, "b")}

	if !NeedsMigration(1, migrations) {
		t.Error("NeedsMigration(1) = false, want true")
	}
	if NeedsMigration(2, migrations) {
		t.Error("NeedsMigration(2) = true, want false")
	}
	if NeedsMigration(1, nil) {
		t.Error("NeedsMigration with no migrations = true, want false")
	}
}

// ///////////////////////////////////////////////
// Registry Tests
// ///////////////////////////////////////////////

func TestRegistryRegisterDuplicatePanics(t *testing.T) {
	r := &Registry{CurrentVersion: 2}
	r.Register(appendMigration(2, "b"))

	defer func() {
		rec := recover()
		if rec == nil {
			t.Fatal("expected panic on duplicate version")
		}
		if !strings.Contains(rec.(string), "duplicate migration version 2") {
			t.Errorf("panic = %v, want duplicate version message", rec)
		}
	}()
	r.Register(appendMigration(2, "b again"))
}

func TestRegistryRun(t *testing.T) {
	r := &Registry{CurrentVersion: 3}
	r.Register(appendMigration(2, "b"))
	r.Register(appendMigration(3, "c"))

	if !r.NeedsMigration(1) {
		t.Fatal("NeedsMigration(1) = false, want true")
	}

	data, version, err := r.Run([]byte("a"), 1)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if string(data) != "abc" || version != 3 {
		t.Errorf("Run() = (%q, %d), want (%q, 3)", data, version, "abc")
	}
}
