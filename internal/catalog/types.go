package catalog

// PackageManager identifies the installer used to fetch and run scaffolding tools
type PackageManager string

const (
	NPM  PackageManager = "npm"
	PNPM PackageManager = "pnpm"
	Yarn PackageManager = "yarn"
	Bun  PackageManager = "bun"
)

// PackageManagers is the fixed, ordered set of supported package managers
var PackageManagers = []PackageManager{NPM, PNPM, Yarn, Bun}

func (pm PackageManager) String() string {
	return string(pm)
}

// Valid reports whether pm belongs to the fixed set
func (pm PackageManager) Valid() bool {
	for _, known := range PackageManagers {
		if pm == known {
			return true
		}
	}
	return false
}

// Document represents the structure of the embedded catalog YAML
type Document struct {
	Name            string               `yaml:"name"`
	Description     string               `yaml:"description"`
	Version         string               `yaml:"version"`
	PackageManagers []PackageManagerInfo `yaml:"package_managers"`
	Frameworks      []Framework          `yaml:"frameworks"`
	Extras          []ExtraLibrary       `yaml:"extras"`
}

// PackageManagerInfo holds per-manager command verbs
type PackageManagerInfo struct {
	Name PackageManager `yaml:"name"`
	Add  string         `yaml:"add"`
}

// Framework is a scaffoldable front-end framework
type Framework struct {
	Name     string                    `yaml:"name"`
	Commands map[PackageManager]string `yaml:"commands"`
}

// ExtraLibrary is an optional add-on package
type ExtraLibrary struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
}
