package state

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestManager(t *testing.T) *Manager {
	t.Helper()
	m, err := OpenPath(":memory:")
	if err != nil {
		t.Fatalf("OpenPath failed: %v", err)
	}
	t.Cleanup(func() { m.Close() })
	return m
}

func TestGetPreferences_Empty(t *testing.T) {
	m := openTestManager(t)

	prefs, err := m.GetPreferences()
	if err != nil {
		t.Fatalf("GetPreferences failed: %v", err)
	}
	if prefs != nil {
		t.Errorf("expected nil preferences on empty db, got %+v", prefs)
	}
}

func TestSaveAndGetPreferences(t *testing.T) {
	m := openTestManager(t)

	want := Preferences{
		Algorithm: "radix",
		Speed:     -2,
		Range:     60,
		InputMode: "explicit",
		Input:     "170, 45, 75, 90",
		Theme:     "light",
	}
	if err := savePreferences(m.DB(), want); err != nil {
		t.Fatalf("savePreferences failed: %v", err)
	}

	got, err := m.GetPreferences()
	if err != nil {
		t.Fatalf("GetPreferences failed: %v", err)
	}
	if got == nil {
		t.Fatal("GetPreferences returned nil after save")
	}
	if *got != want {
		t.Errorf("GetPreferences = %+v, want %+v", *got, want)
	}
}

func TestSavePreferences_Upsert(t *testing.T) {
	m := openTestManager(t)

	if err := savePreferences(m.DB(), Preferences{Algorithm: "bubble", Theme: "dark"}); err != nil {
		t.Fatalf("first save failed: %v", err)
	}
	if err := savePreferences(m.DB(), Preferences{Algorithm: "heap", Theme: "light"}); err != nil {
		t.Fatalf("second save failed: %v", err)
	}

	var count int
	if err := m.DB().QueryRow(`SELECT COUNT(*) FROM preferences`).Scan(&count); err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("preferences rows = %d, want 1", count)
	}

	got, _ := m.GetPreferences()
	if got.Algorithm != "heap" || got.Theme != "light" {
		t.Errorf("GetPreferences = %+v, want heap/light", got)
	}
}

func TestSavePreferences_DebouncedUntilFlush(t *testing.T) {
	m := openTestManager(t)

	m.SavePreferences(Preferences{Algorithm: "bubble", Speed: 1})
	m.SavePreferences(Preferences{Algorithm: "merge", Speed: 3})

	// Nothing written before the debounce fires.
	got, err := m.GetPreferences()
	if err != nil {
		t.Fatalf("GetPreferences failed: %v", err)
	}
	if got != nil {
		t.Fatalf("preferences written before flush: %+v", got)
	}

	m.Flush()

	got, err = m.GetPreferences()
	if err != nil {
		t.Fatalf("GetPreferences failed: %v", err)
	}
	if got == nil || got.Algorithm != "merge" || got.Speed != 3 {
		t.Errorf("GetPreferences = %+v, want latest save (merge, 3)", got)
	}
}

func TestClose_FlushesPending(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "sortviz.db")

	m, err := OpenPath(path)
	if err != nil {
		t.Fatalf("OpenPath failed: %v", err)
	}
	m.SavePreferences(Preferences{Algorithm: "quick", Theme: "light"})
	if err := m.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened, err := OpenPath(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	got, err := reopened.GetPreferences()
	if err != nil {
		t.Fatalf("GetPreferences failed: %v", err)
	}
	if got == nil || got.Algorithm != "quick" || got.Theme != "light" {
		t.Errorf("GetPreferences after reopen = %+v, want quick/light", got)
	}
}

func TestInitSchema_Idempotent(t *testing.T) {
	m := openTestManager(t)

	if err := initSchema(m.DB()); err != nil {
		t.Fatalf("second initSchema failed: %v", err)
	}

	var version int
	if err := m.DB().QueryRow(`SELECT version FROM schema_version`).Scan(&version); err != nil {
		t.Fatalf("version query failed: %v", err)
	}
	if version != currentSchemaVersion {
		t.Errorf("version = %d, want %d", version, currentSchemaVersion)
	}
}

func TestRecentInputs_NewestFirst(t *testing.T) {
	m := openTestManager(t)
	ctx := context.Background()

	for _, text := range []string{"1,2,3", "5,3,8", "9,9"} {
		if err := m.AddRecentInput(ctx, text); err != nil {
			t.Fatalf("AddRecentInput(%q) failed: %v", text, err)
		}
	}

	got, err := m.RecentInputs(ctx, 0)
	if err != nil {
		t.Fatalf("RecentInputs failed: %v", err)
	}
	want := []string{"9,9", "5,3,8", "1,2,3"}
	if len(got) != len(want) {
		t.Fatalf("RecentInputs = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("RecentInputs[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRecentInputs_ReuseMovesToFront(t *testing.T) {
	m := openTestManager(t)
	ctx := context.Background()

	_ = m.AddRecentInput(ctx, "a")
	_ = m.AddRecentInput(ctx, "b")
	_ = m.AddRecentInput(ctx, "a")

	got, _ := m.RecentInputs(ctx, 10)
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("RecentInputs = %v, want [a b]", got)
	}
}

func TestRecentInputs_TrimsAndSkipsBlank(t *testing.T) {
	m := openTestManager(t)
	ctx := context.Background()

	if err := m.AddRecentInput(ctx, "   "); err != nil {
		t.Fatalf("AddRecentInput(blank) failed: %v", err)
	}
	for i := range MaxRecentInputs + 5 {
		_ = m.AddRecentInput(ctx, string(rune('a'+i)))
	}

	got, _ := m.RecentInputs(ctx, 0)
	if len(got) != MaxRecentInputs {
		t.Errorf("len(RecentInputs) = %d, want %d", len(got), MaxRecentInputs)
	}
	for _, s := range got {
		if s == "" {
			t.Error("blank input stored")
		}
	}
	if got[0] != string(rune('a'+MaxRecentInputs+4)) {
		t.Errorf("newest = %q, want %q", got[0], string(rune('a'+MaxRecentInputs+4)))
	}
}

func TestMock(t *testing.T) {
	m := NewMock()
	ctx := context.Background()

	if p, _ := m.GetPreferences(); p != nil {
		t.Errorf("GetPreferences = %+v, want nil", p)
	}
	m.SavePreferences(Preferences{Theme: "light"})
	if p, _ := m.GetPreferences(); p == nil || p.Theme != "light" {
		t.Errorf("GetPreferences = %+v, want light", p)
	}
	if len(m.Saved()) != 1 {
		t.Errorf("Saved() = %d entries, want 1", len(m.Saved()))
	}

	_ = m.AddRecentInput(ctx, "x")
	_ = m.AddRecentInput(ctx, "y")
	_ = m.AddRecentInput(ctx, "x")
	got, _ := m.RecentInputs(ctx, 0)
	if len(got) != 2 || got[0] != "x" {
		t.Errorf("RecentInputs = %v, want [x y]", got)
	}

	_ = m.Close()
	if !m.IsClosed() {
		t.Error("IsClosed() = false after Close")
	}
}
