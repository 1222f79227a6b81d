package lock_test

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/keshon/promptvc/internal/digest"
	"github.com/keshon/promptvc/internal/fs"
	"github.com/keshon/promptvc/internal/lock"
	"github.com/keshon/promptvc/internal/store"
	"github.com/keshon/promptvc/internal/version"
)

func newProject(t *testing.T) (*store.Context, *fs.MemoryFS) {
	t.Helper()
	m := fs.NewMemoryFS()
	if err := m.MkdirAll("/proj", 0o755); err != nil {
		t.Fatal(err)
	}
	return store.NewContext("/proj", m, digest.New(digest.AlgoXXH3)), m
}

// snapshot appends a version and, when content is non-empty, writes the
// working file with the same bytes.
func snapshot(t *testing.T, c *store.Context, m *fs.MemoryFS, rel, ver, content string) {
	t.Helper()
	if _, err := c.AppendSnapshot(rel, []byte(content), version.Parse(ver), "test"); err != nil {
		t.Fatal(err)
	}
	writeWorking(t, m, c.WorkingPath(rel), content)
}

func writeWorking(t *testing.T, m *fs.MemoryFS, path, content string) {
	t.Helper()
	if err := m.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := m.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestGenerateRecordsPresentFilesOnly(t *testing.T) {
	c, m := newProject(t)
	snapshot(t, c, m, "a.md", "0.1.0", "alpha")
	snapshot(t, c, m, "gone.md", "0.1.0", "bye")
	if err := m.Remove("/proj/gone.md"); err != nil {
		t.Fatal(err)
	}

	manifest, problems, err := lock.Generate(c)
	if err != nil {
		t.Fatal(err)
	}
	if len(problems) != 0 {
		t.Fatalf("unexpected problems: %v", problems)
	}

	if _, ok := manifest.Files["gone.md"]; ok {
		t.Error("missing working file must be excluded from the manifest")
	}
	ref, ok := manifest.Files["a.md"]
	if !ok {
		t.Fatal("a.md missing from manifest")
	}
	if ref.Version == nil || ref.Version.String() != "0.1.0" {
		t.Errorf("a.md version = %v, want 0.1.0", ref.Version)
	}
	if ref.Hash == "" {
		t.Error("a.md hash is empty")
	}
	if manifest.Version != lock.FormatVersion {
		t.Errorf("format version = %d, want %d", manifest.Version, lock.FormatVersion)
	}
	if manifest.GeneratedAt == "" {
		t.Error("generated_at is empty")
	}
}

func TestGenerateRecordsDirtyAsNull(t *testing.T) {
	c, m := newProject(t)
	snapshot(t, c, m, "a.md", "0.1.0", "alpha")
	writeWorking(t, m, "/proj/a.md", "edited since snapshot")

	manifest, _, err := lock.Generate(c)
	if err != nil {
		t.Fatal(err)
	}
	ref := manifest.Files["a.md"]
	if ref.Version != nil {
		t.Errorf("dirty file version = %v, want nil", ref.Version)
	}
	if ref.Hash == "" {
		t.Error("dirty file still needs its content hash recorded")
	}
}

func TestManifestJSONShape(t *testing.T) {
	c, m := newProject(t)
	snapshot(t, c, m, "clean.md", "0.2.0", "clean")
	snapshot(t, c, m, "dirty.md", "0.1.0", "original")
	writeWorking(t, m, "/proj/dirty.md", "changed")

	manifest, _, err := lock.Generate(c)
	if err != nil {
		t.Fatal(err)
	}
	raw, err := json.Marshal(manifest)
	if err != nil {
		t.Fatal(err)
	}

	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatal(err)
	}
	if doc["version"] != float64(1) {
		t.Errorf(`top-level "version" = %v, want 1`, doc["version"])
	}
	if _, ok := doc["generated_at"].(string); !ok {
		t.Error(`missing "generated_at" string`)
	}

	files := doc["files"].(map[string]any)
	clean := files["clean.md"].(map[string]any)
	if clean["version"] != "0.2.0" {
		t.Errorf("clean version = %v, want \"0.2.0\"", clean["version"])
	}
	if _, ok := clean["hash"].(string); !ok {
		t.Error("clean entry missing hash")
	}
	dirty := files["dirty.md"].(map[string]any)
	if dirty["version"] != nil {
		t.Errorf("dirty version = %v, want null", dirty["version"])
	}
}

func TestWriteLoadRoundTrip(t *testing.T) {
	c, m := newProject(t)
	snapshot(t, c, m, "a.md", "0.1.0", "alpha")

	manifest, _, err := lock.Generate(c)
	if err != nil {
		t.Fatal(err)
	}
	if err := lock.Write(c, manifest); err != nil {
		t.Fatal(err)
	}
	if !m.Exists("/proj/.promptvc-lock.json") {
		t.Fatal("lock file not written at project root")
	}

	loaded, err := lock.Load(c)
	if err != nil {
		t.Fatal(err)
	}
	if len(loaded.Files) != 1 {
		t.Fatalf("loaded %d files, want 1", len(loaded.Files))
	}
	ref := loaded.Files["a.md"]
	if ref.Version == nil || ref.Version.String() != "0.1.0" {
		t.Errorf("loaded version = %v, want 0.1.0", ref.Version)
	}
}

func TestLoadMissingManifest(t *testing.T) {
	c, _ := newProject(t)
	_, err := lock.Load(c)
	if !errors.Is(err, lock.ErrManifestMissing) {
		t.Fatalf("expected ErrManifestMissing, got %v", err)
	}
}

func TestLoadUnreadableManifest(t *testing.T) {
	c, m := newProject(t)
	writeWorking(t, m, lock.Path(c.Root), "{broken")

	_, err := lock.Load(c)
	if !errors.Is(err, lock.ErrManifestUnreadable) {
		t.Fatalf("expected ErrManifestUnreadable, got %v", err)
	}
}

func TestSyncAfterGenerateIsNoOp(t *testing.T) {
	c, m := newProject(t)
	snapshot(t, c, m, "a.md", "0.1.0", "alpha")
	snapshot(t, c, m, "b.md", "0.1.0", "beta")

	manifest, _, err := lock.Generate(c)
	if err != nil {
		t.Fatal(err)
	}
	res := lock.Sync(c, manifest)
	if res.Restored != 0 || res.Failed != 0 || res.Skipped != 2 {
		t.Fatalf("fresh lock sync = %+v, want all skipped", res)
	}
}

func TestSyncRestoresDrift(t *testing.T) {
	c, m := newProject(t)
	c.AppendSnapshot("a.md", []byte("one"), version.Parse("0.1.0"), "")
	snapshot(t, c, m, "a.md", "0.2.0", "two")

	manifest, _, err := lock.Generate(c)
	if err != nil {
		t.Fatal(err)
	}

	// Working file drifts back to the older version's bytes.
	writeWorking(t, m, "/proj/a.md", "one")

	res := lock.Sync(c, manifest)
	if res.Restored != 1 || res.Failed != 0 {
		t.Fatalf("sync = %+v, want one restore", res)
	}
	data, _ := m.ReadFile("/proj/a.md")
	if string(data) != "two" {
		t.Errorf("working file = %q, want locked content %q", data, "two")
	}

	// Second run performs zero restores.
	res = lock.Sync(c, manifest)
	if res.Restored != 0 || res.Skipped != 1 {
		t.Fatalf("second sync = %+v, want skip", res)
	}
}

func TestSyncSkipsDirtyEntries(t *testing.T) {
	c, m := newProject(t)
	snapshot(t, c, m, "a.md", "0.1.0", "alpha")
	writeWorking(t, m, "/proj/a.md", "uncommitted edits")

	manifest, _, err := lock.Generate(c)
	if err != nil {
		t.Fatal(err)
	}
	res := lock.Sync(c, manifest)
	if res.Skipped != 1 || res.Restored != 0 {
		t.Fatalf("sync = %+v, want dirty skip", res)
	}
	if res.Files[0].Reason != "dirty at lock time" {
		t.Errorf("reason = %q", res.Files[0].Reason)
	}
	data, _ := m.ReadFile("/proj/a.md")
	if string(data) != "uncommitted edits" {
		t.Error("dirty file must be left untouched")
	}
}

func TestSyncRestoresDeletedFile(t *testing.T) {
	c, m := newProject(t)
	snapshot(t, c, m, "src/deep/a.md", "0.1.0", "alpha")

	manifest, _, err := lock.Generate(c)
	if err != nil {
		t.Fatal(err)
	}
	if err := m.Remove("/proj/src/deep/a.md"); err != nil {
		t.Fatal(err)
	}

	res := lock.Sync(c, manifest)
	if res.Restored != 1 {
		t.Fatalf("sync = %+v, want restore of deleted file", res)
	}
	data, err := m.ReadFile("/proj/src/deep/a.md")
	if err != nil {
		t.Fatalf("file not recreated: %v", err)
	}
	if string(data) != "alpha" {
		t.Errorf("restored bytes = %q, want alpha", data)
	}
}

func TestSyncReportsMissingVersionAndContinues(t *testing.T) {
	c, m := newProject(t)
	snapshot(t, c, m, "a.md", "0.1.0", "alpha")
	snapshot(t, c, m, "b.md", "0.1.0", "beta")

	nine := version.Parse("9.9.9")
	manifest := lock.Manifest{
		Version:     lock.FormatVersion,
		GeneratedAt: "2026-01-01T00:00:00Z",
		Files: map[string]lock.FileRef{
			"a.md": {Version: &nine, Hash: "feed"},
			"b.md": {Version: triplePtr("0.1.0"), Hash: "beef"},
		},
	}
	writeWorking(t, m, "/proj/b.md", "drifted")

	res := lock.Sync(c, manifest)
	if res.Failed != 1 {
		t.Fatalf("sync = %+v, want one failure", res)
	}
	if res.Restored != 1 {
		t.Fatalf("sync = %+v, the intact entry must still be restored", res)
	}
	var failed lock.FileResult
	for _, fr := range res.Files {
		if fr.Action == lock.ActionFailed {
			failed = fr
		}
	}
	if failed.Path != "a.md" || !errors.Is(failed.Err, store.ErrVersionNotFound) {
		t.Errorf("failure = %+v, want version-not-found for a.md", failed)
	}
}

func triplePtr(s string) *version.Triple {
	v := version.Parse(s)
	return &v
}

func TestDriftClassification(t *testing.T) {
	c, m := newProject(t)

	// synced.md: locked at its live version.
	snapshot(t, c, m, "synced.md", "0.1.0", "synced")
	// drift.md: locked at 0.2.0, working tree carries 0.1.0 bytes.
	c.AppendSnapshot("drift.md", []byte("old"), version.Parse("0.1.0"), "")
	snapshot(t, c, m, "drift.md", "0.2.0", "new")
	// modified.md: locked clean, then edited to unknown bytes.
	snapshot(t, c, m, "modified.md", "0.1.0", "original")
	// missing.md: locked, then deleted.
	snapshot(t, c, m, "missing.md", "0.1.0", "gone soon")

	manifest, _, err := lock.Generate(c)
	if err != nil {
		t.Fatal(err)
	}
	if err := lock.Write(c, manifest); err != nil {
		t.Fatal(err)
	}

	// active.md is tracked after the lock, so it has no manifest entry.
	snapshot(t, c, m, "active.md", "0.1.0", "fresh")
	writeWorking(t, m, "/proj/drift.md", "old")
	writeWorking(t, m, "/proj/modified.md", "scrambled")
	if err := m.Remove("/proj/missing.md"); err != nil {
		t.Fatal(err)
	}

	rows, problems, err := lock.Report(c)
	if err != nil {
		t.Fatal(err)
	}
	if len(problems) != 0 {
		t.Fatalf("unexpected problems: %v", problems)
	}

	got := map[string]lock.State{}
	for _, r := range rows {
		got[r.Path] = r.State
	}
	want := map[string]lock.State{
		"synced.md":   lock.StateSynced,
		"drift.md":    lock.StateDrift,
		"modified.md": lock.StateModified,
		"missing.md":  lock.StateMissing,
		"active.md":   lock.StateActive,
	}
	for path, state := range want {
		if got[path] != state {
			t.Errorf("%s classified %v, want %v", path, got[path], state)
		}
	}
}

func TestReportWithoutManifest(t *testing.T) {
	c, m := newProject(t)
	snapshot(t, c, m, "a.md", "0.1.0", "alpha")
	snapshot(t, c, m, "b.md", "0.1.0", "beta")
	writeWorking(t, m, "/proj/b.md", "edited")

	rows, _, err := lock.Report(c)
	if err != nil {
		t.Fatalf("missing manifest must degrade, not fail: %v", err)
	}

	got := map[string]lock.State{}
	for _, r := range rows {
		got[r.Path] = r.State
		if r.Locked != nil {
			t.Errorf("%s has a locked version without a manifest", r.Path)
		}
	}
	if got["a.md"] != lock.StateActive || got["b.md"] != lock.StateModified {
		t.Errorf("states = %v", got)
	}
}
