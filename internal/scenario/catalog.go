package scenario

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/haemwend/haemwend/internal/logger"
)

// Catalog is the ordered set of scenarios offered to the player.
type Catalog struct {
	Scenarios []Definition
}

// Select returns the scenario with the given id.
func (c *Catalog) Select(id string) (*Definition, bool) {
	for i := range c.Scenarios {
		if c.Scenarios[i].ID == id {
			return &c.Scenarios[i], true
		}
	}
	return nil, false
}

// LoadCatalog loads scenarios from path. A directory is read as one
// YAML file per scenario; a file may hold a single scenario or a list.
// When the path does not exist the built-in catalog is written there
// first, and when nothing valid can be loaded the built-ins are used
// directly so the game always has something to start.
func LoadCatalog(path string) *Catalog {
	var scenarios []Definition

	info, err := os.Stat(path)
	switch {
	case err == nil && info.IsDir():
		scenarios = loadFromDir(path)
	case err == nil:
		scenarios = loadFromFile(path)
	case isYAMLFile(path):
		if err := writeDefaultsToFile(path); err != nil {
			logger.Sugar.Warnw("could not write default scenario file", "path", path, "error", err)
		} else {
			logger.Sugar.Infow("created scenario file", "path", path)
			scenarios = loadFromFile(path)
		}
	default:
		if err := writeDefaultsToDir(path); err != nil {
			logger.Sugar.Warnw("could not write default scenario dir", "path", path, "error", err)
		} else {
			logger.Sugar.Infow("created scenario dir", "path", path)
			scenarios = loadFromDir(path)
		}
	}

	if len(scenarios) == 0 {
		logger.Sugar.Warnw("no valid scenarios available, using built-in catalog", "path", path)
		scenarios = DefaultScenarios()
	}

	return &Catalog{Scenarios: scenarios}
}

func isYAMLFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

func loadFromDir(dir string) []Definition {
	entries, err := os.ReadDir(dir)
	if err != nil {
		logger.Sugar.Warnw("could not read scenario dir", "path", dir, "error", err)
		return nil
	}

	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && isYAMLFile(entry.Name()) {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(files)

	var scenarios []Definition
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			logger.Sugar.Warnw("could not read scenario file", "path", file, "error", err)
			continue
		}

		var def Definition
		if err := yaml.Unmarshal(data, &def); err == nil && def.Valid() {
			scenarios = append(scenarios, def)
			continue
		}

		// A file may also hold a list of scenarios.
		var list []Definition
		if err := yaml.Unmarshal(data, &list); err != nil {
			logger.Sugar.Warnw("could not parse scenario file", "path", file, "error", err)
			continue
		}
		scenarios = append(scenarios, filterValid(list, file)...)
	}

	return scenarios
}

func loadFromFile(path string) []Definition {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Sugar.Warnw("could not read scenario file", "path", path, "error", err)
		return nil
	}

	var list []Definition
	if err := yaml.Unmarshal(data, &list); err == nil {
		return filterValid(list, path)
	}

	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		logger.Sugar.Warnw("could not parse scenario file", "path", path, "error", err)
		return nil
	}
	return filterValid([]Definition{def}, path)
}

func filterValid(list []Definition, source string) []Definition {
	valid := list[:0]
	for _, def := range list {
		if def.Valid() {
			valid = append(valid, def)
		}
	}
	if len(valid) == 0 {
		logger.Sugar.Warnw("scenario source holds no valid scenarios", "path", source)
	}
	return valid
}

func writeDefaultsToDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating scenario dir: %w", err)
	}

	for _, def := range DefaultScenarios() {
		file := filepath.Join(dir, def.ID+".yaml")
		if _, err := os.Stat(file); err == nil {
			continue
		}

		data, err := yaml.Marshal(&def)
		if err != nil {
			return fmt.Errorf("serializing scenario %q: %w", def.ID, err)
		}
		if err := os.WriteFile(file, data, 0o644); err != nil {
			return fmt.Errorf("writing scenario %q: %w", def.ID, err)
		}
	}

	return nil
}

func writeDefaultsToFile(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating scenario dir: %w", err)
		}
	}

	defs := DefaultScenarios()
	data, err := yaml.Marshal(defs)
	if err != nil {
		return fmt.Errorf("serializing default scenarios: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing scenario file: %w", err)
	}
	return nil
}
