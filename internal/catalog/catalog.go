// Package catalog holds the static framework, package manager and add-on
// library tables. The tables are embedded at build time and never change
// at runtime.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogData []byte

// ErrInvalid is wrapped by every catalog validation failure
var ErrInvalid = errors.New("invalid catalog")

// Catalog is the validated, read-only view over a catalog document
type Catalog struct {
	frameworks []Framework
	byName     map[string]int
	addVerbs   map[PackageManager]string
	extras     []ExtraLibrary
}

// Load parses and validates the embedded catalog
func Load() (*Catalog, error) {
	return Parse(catalogData)
}

// MustLoad is like Load but panics on error
func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}

// Parse builds a catalog from YAML data
func Parse(data []byte) (*Catalog, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	return New(doc)
}

// New validates doc and returns a catalog over it
func New(doc Document) (*Catalog, error) {
	c := &Catalog{
		byName:   make(map[string]int),
		addVerbs: make(map[PackageManager]string),
	}

	if len(doc.PackageManagers) != len(PackageManagers) {
		return nil, fmt.Errorf("%w: expected %d package managers, got %d", ErrInvalid, len(PackageManagers), len(doc.PackageManagers))
	}
	for _, info := range doc.PackageManagers {
		if !info.Name.Valid() {
			return nil, fmt.Errorf("%w: unknown package manager %q", ErrInvalid, info.Name)
		}
		if _, dup := c.addVerbs[info.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate package manager %q", ErrInvalid, info.Name)
		}
		add := strings.TrimSpace(info.Add)
		if add == "" {
			add = string(info.Name) + " add"
		}
		c.addVerbs[info.Name] = add
	}

	for _, fw := range doc.Frameworks {
		if strings.TrimSpace(fw.Name) == "" {
			return nil, fmt.Errorf("%w: framework with empty name", ErrInvalid)
		}
		key := strings.ToLower(fw.Name)
		if _, dup := c.byName[key]; dup {
			return nil, fmt.Errorf("%w: duplicate framework %q", ErrInvalid, fw.Name)
		}
		commands := make(map[PackageManager]string, len(fw.Commands))
		for pm, command := range fw.Commands {
			if !pm.Valid() {
				return nil, fmt.Errorf("%w: framework %q maps unknown package manager %q", ErrInvalid, fw.Name, pm)
			}
			commands[pm] = command
		}
		c.byName[key] = len(c.frameworks)
		c.frameworks = append(c.frameworks, Framework{Name: fw.Name, Commands: commands})
	}

	seen := make(map[string]bool)
	for _, extra := range doc.Extras {
		if extra.ID == "" {
			return nil, fmt.Errorf("%w: extra library with empty id", ErrInvalid)
		}
		if seen[extra.ID] {
			return nil, fmt.Errorf("%w: duplicate extra library %q", ErrInvalid, extra.ID)
		}
		seen[extra.ID] = true
		if extra.Label == "" {
			extra.Label = extra.ID
		}
		c.extras = append(c.extras, extra)
	}

	return c, nil
}

// Frameworks returns all frameworks in catalog order
func (c *Catalog) Frameworks() []Framework {
	out := make([]Framework, len(c.frameworks))
	copy(out, c.frameworks)
	return out
}

// FrameworkNames returns the display names in catalog order
func (c *Catalog) FrameworkNames() []string {
	names := make([]string, len(c.frameworks))
	for i, fw := range c.frameworks {
		names[i] = fw.Name
	}
	return names
}

// Framework looks up a framework by name, ignoring case
func (c *Catalog) Framework(name string) (Framework, bool) {
	i, ok := c.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Framework{}, false
	}
	return c.frameworks[i], true
}

// AddVerb returns the command prefix used to add dependencies with pm
func (c *Catalog) AddVerb(pm PackageManager) string {
	if verb, ok := c.addVerbs[pm]; ok {
		return verb
	}
	return string(pm) + " add"
}

// Extras returns the add-on libraries in catalog order
func (c *Catalog) Extras() []ExtraLibrary {
	out := make([]ExtraLibrary, len(c.extras))
	copy(out, c.extras)
	return out
}

// ParsePackageManager converts a user-supplied name into a PackageManager
func ParsePackageManager(name string) (PackageManager, error) {
	pm := PackageManager(strings.ToLower(strings.TrimSpace(name)))
	if !pm.Valid() {
		return "", fmt.Errorf("unknown package manager %q (expected one of %s)", name, joinManagers(", "))
	}
	return pm, nil
}

func joinManagers(sep string) string {
	names := make([]string, len(PackageManagers))
	for i, pm := range PackageManagers {
		names[i] = string(pm)
	}
	return strings.Join(names, sep)
}
