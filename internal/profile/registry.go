package profile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// Registry holds the profiles loaded from a local directory. Files that do
// not decode are skipped with a log line; schema validation beyond JSON
// decoding is the registry publisher's job, not ours.
type Registry struct {
	profiles map[string]*Profile
}

// LoadDir reads every *.json file under dir (one profile per file).
func LoadDir(dir string, log *zap.Logger) (*Registry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read profile dir: %w", err)
	}

	r := &Registry{profiles: make(map[string]*Profile)}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			log.Warn("skipping unreadable profile file", zap.String("path", path), zap.Error(err))
			continue
		}
		var p Profile
		if err := json.Unmarshal(data, &p); err != nil {
			log.Warn("skipping malformed profile file", zap.String("path", path), zap.Error(err))
			continue
		}
		if p.ProfileID == "" {
			log.Warn("skipping profile without profileId", zap.String("path", path))
			continue
		}
		r.profiles[p.ProfileID] = &p
	}

	log.Info("profiles loaded", zap.String("dir", dir), zap.Int("count", len(r.profiles)))
	return r, nil
}

// Get returns the profile for id, nil if unknown.
func (r *Registry) Get(id string) *Profile {
	return r.profiles[id]
}

// IDs returns all known profile ids, sorted.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.profiles))
	for id := range r.profiles {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
