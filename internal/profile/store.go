// Package profile persists named render configurations as flat JSON
// documents in a single per-user directory.
//
// Every operation is a whole-file read or write. There is no locking; the
// last writer wins.
package profile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/san-kum/asciifx/internal/config"
	"gopkg.in/yaml.v3"
)

const (
	DefaultName     = "default"
	LastProfileFile = "last_profile.txt"
	Ext             = ".json"
)

type Store struct {
	dir string
}

func New(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) Dir() string { return s.dir }

func (s *Store) Init() error {
	return os.MkdirAll(s.dir, 0755)
}

// Path returns the document path for name.
func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, name+Ext)
}

// ValidName returns ErrInvalidName unless name can be used as a file stem.
func ValidName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

func (s *Store) Exists(name string) bool {
	if ValidName(name) != nil {
		return false
	}
	_, err := os.Stat(s.Path(name))
	return err == nil
}

// CreateDefault writes the default profile unless it already exists. It
// reports whether a document was written.
func (s *Store) CreateDefault() (bool, error) {
	if err := s.Init(); err != nil {
		return false, err
	}
	if s.Exists(DefaultName) {
		return false, nil
	}
	if err := s.Save(DefaultName, config.DefaultConfig()); err != nil {
		return false, err
	}
	log.Debug("created default profile", "path", s.Path(DefaultName))
	return true, nil
}

// Load reads a profile; absent fields take their defaults.
func (s *Store) Load(name string) (*config.Config, error) {
	if err := ValidName(name); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.Path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Name: name}
		}
		return nil, err
	}
	cfg := config.DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("profile %s: %w", name, err)
	}
	cfg.ApplyDefaults()
	return cfg, nil
}

// Save overwrites the profile document for name.
func (s *Store) Save(name string, cfg *config.Config) error {
	if err := ValidName(name); err != nil {
		return err
	}
	if err := s.Init(); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.Path(name), append(data, '\n'), 0644)
}

// List returns the sorted profile names.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != Ext {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), Ext))
	}
	sort.Strings(names)
	return names, nil
}

func (s *Store) Delete(name string) error {
	if err := ValidName(name); err != nil {
		return err
	}
	if err := os.Remove(s.Path(name)); err != nil {
		if os.IsNotExist(err) {
			return &NotFoundError{Name: name}
		}
		return err
	}
	return nil
}

// Export copies a profile to dest. A .yaml or .yml destination is
// re-encoded as YAML.
func (s *Store) Export(name, dest string) error {
	if !s.Exists(name) {
		return &NotFoundError{Name: name}
	}
	dest = config.ExpandPath(dest)
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return err
	}

	var data []byte
	var err error
	switch ext := strings.ToLower(filepath.Ext(dest)); ext {
	case ".yaml", ".yml":
		cfg, lerr := s.Load(name)
		if lerr != nil {
			return lerr
		}
		data, err = yaml.Marshal(cfg)
	default:
		data, err = os.ReadFile(s.Path(name))
	}
	if err != nil {
		return err
	}
	return os.WriteFile(dest, data, 0644)
}

// Import copies an external document into the store, named after its file
// stem. YAML documents are converted to JSON; any other extension must hold
// a JSON document.
func (s *Store) Import(src string) (string, error) {
	path := config.ExpandPath(src)
	ext := filepath.Ext(path)
	name := strings.TrimSuffix(filepath.Base(path), ext)
	if err := ValidName(name); err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	var cfg config.Config
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return "", fmt.Errorf("import %s: %w", src, err)
		}
		if err := s.Save(name, &cfg); err != nil {
			return "", err
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return "", fmt.Errorf("import %s: %w", src, err)
		}
		if err := s.Init(); err != nil {
			return "", err
		}
		if err := os.WriteFile(s.Path(name), data, 0644); err != nil {
			return "", err
		}
	}

	log.Debug("imported profile", "name", name, "from", path)
	return name, nil
}

func (s *Store) SaveLast(name string) error {
	if err := s.Init(); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, LastProfileFile), []byte(name), 0644)
}

// LoadLast returns the last used profile name, or "default".
func (s *Store) LoadLast() string {
	data, err := os.ReadFile(filepath.Join(s.dir, LastProfileFile))
	if err != nil {
		return DefaultName
	}
	name := strings.TrimSpace(string(data))
	if name == "" {
		return DefaultName
	}
	return name
}
