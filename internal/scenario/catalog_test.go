package scenario

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultScenariosAreValidAndUnique(t *testing.T) {
	defs := DefaultScenarios()
	if len(defs) == 0 {
		t.Fatal("no built-in scenarios")
	}

	seen := make(map[string]bool)
	for _, def := range defs {
		if !def.Valid() {
			t.Errorf("scenario %q is not valid", def.ID)
		}
		if seen[def.ID] {
			t.Errorf("duplicate scenario id %q", def.ID)
		}
		seen[def.ID] = true
	}
}

func TestCatalogSelect(t *testing.T) {
	catalog := &Catalog{Scenarios: DefaultScenarios()}

	def, ok := catalog.Select("arena")
	if !ok {
		t.Fatal("arena not found")
	}
	if def.Name != "Iron Arena" {
		t.Errorf("name = %q, want %q", def.Name, "Iron Arena")
	}

	if _, ok := catalog.Select("missing"); ok {
		t.Error("unknown id should not resolve")
	}
}

func TestLoadCatalogWritesDefaultsToMissingDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "scenarios")

	catalog := LoadCatalog(dir)

	if got, want := len(catalog.Scenarios), len(DefaultScenarios()); got != want {
		t.Errorf("loaded %d scenarios, want %d", got, want)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("scenario dir was not created: %v", err)
	}
	if got, want := len(entries), len(DefaultScenarios()); got != want {
		t.Errorf("wrote %d files, want %d", got, want)
	}
}

func TestLoadCatalogReadsDirOfFiles(t *testing.T) {
	dir := t.TempDir()
	content := []byte("id: flats\nname: The Flats\nground_extent: 64\n")
	if err := os.WriteFile(filepath.Join(dir, "flats.yaml"), content, 0o644); err != nil {
		t.Fatal(err)
	}

	catalog := LoadCatalog(dir)

	if len(catalog.Scenarios) != 1 {
		t.Fatalf("loaded %d scenarios, want 1", len(catalog.Scenarios))
	}
	def := catalog.Scenarios[0]
	if def.ID != "flats" || def.Name != "The Flats" {
		t.Errorf("loaded %+v, want flats/The Flats", def)
	}
	if def.GroundExtent != 64 {
		t.Errorf("ground extent = %v, want 64", def.GroundExtent)
	}
}

func TestLoadCatalogFileWithList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "all.yaml")
	content := []byte("- id: a\n  name: A\n- id: b\n  name: B\n")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	catalog := LoadCatalog(path)

	if len(catalog.Scenarios) != 2 {
		t.Fatalf("loaded %d scenarios, want 2", len(catalog.Scenarios))
	}
	if catalog.Scenarios[1].ID != "b" {
		t.Errorf("second scenario id = %q, want b", catalog.Scenarios[1].ID)
	}
}

func TestLoadCatalogFallsBackOnInvalidFiles(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte("name: No ID\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	catalog := LoadCatalog(dir)

	if got, want := len(catalog.Scenarios), len(DefaultScenarios()); got != want {
		t.Errorf("loaded %d scenarios, want built-in fallback of %d", got, want)
	}
}
