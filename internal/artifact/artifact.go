// Package artifact assembles the full text and target path of each generated
// artifact for an entity.
package artifact

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Kind is the type of a generated artifact.
type Kind int

const (
	// CreateValidation validates creation requests.
	CreateValidation Kind = iota
	// UpdateValidation validates modification requests.
	UpdateValidation
	// Serialization converts an entity into its output mapping.
	Serialization
	// Routes is the entity's block in the shared route file.
	Routes
)

// Kinds lists every artifact kind in generation order.
var Kinds = []Kind{CreateValidation, UpdateValidation, Serialization, Routes}

// String returns the short name used on the command line and in manifests.
func (k Kind) String() string {
	switch k {
	case CreateValidation:
		return "create"
	case UpdateValidation:
		return "update"
	case Serialization:
		return "serialization"
	case Routes:
		return "routes"
	default:
		return "unknown"
	}
}

var kindAliases = map[string]Kind{
	"create":        CreateValidation,
	"store":         CreateValidation,
	"update":        UpdateValidation,
	"serialization": Serialization,
	"resource":      Serialization,
	"routes":        Routes,
}

// ParseKind parses an artifact name or alias.
func ParseKind(s string) (Kind, error) {
	k, ok := kindAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, fmt.Errorf("unknown artifact %q (valid: create, update, serialization, routes)", s)
	}
	return k, nil
}

// ParseKinds parses a list of artifact names. An empty list selects all kinds.
// Duplicates collapse and the result follows Kinds order.
func ParseKinds(names []string) ([]Kind, error) {
	if len(names) == 0 {
		return Kinds, nil
	}
	want := make(map[Kind]bool, len(names))
	for _, n := range names {
		k, err := ParseKind(n)
		if err != nil {
			return nil, err
		}
		want[k] = true
	}
	var kinds []Kind
	for _, k := range Kinds {
		if want[k] {
			kinds = append(kinds, k)
		}
	}
	return kinds, nil
}

// Identity returns the framework-independent name of an entity's artifact:
//
//	Product/CreateProductValidation
//	Product/UpdateProductValidation
//	ProductSerialization
//	ProductRoutes
func Identity(k Kind, entity string) string {
	switch k {
	case CreateValidation:
		return entity + "/Create" + entity + "Validation"
	case UpdateValidation:
		return entity + "/Update" + entity + "Validation"
	case Serialization:
		return entity + "Serialization"
	default:
		return entity + "Routes"
	}
}

// Artifact is one unit of generated text with its target path.
type Artifact struct {
	Kind    Kind
	Entity  string
	Name    string
	Path    string
	Content string
}

// Layout maps artifacts onto the host project's directory structure.
type Layout struct {
	BaseDir   string // project root
	Namespace string // root namespace of generated classes
	Requests  string // validation artifacts, relative to BaseDir
	Resources string // serialization artifacts, relative to BaseDir
	Routes    string // shared route file, relative to BaseDir
}

// DefaultLayout returns the conventional host project layout.
func DefaultLayout() Layout {
	return Layout{
		BaseDir:   ".",
		Namespace: "App",
		Requests:  filepath.Join("app", "Http", "Requests"),
		Resources: filepath.Join("app", "Http", "Resources"),
		Routes:    filepath.Join("routes", "api.php"),
	}
}

// Path returns the target file of an entity's artifact.
func (l Layout) Path(k Kind, entity string) string {
	switch k {
	case CreateValidation, UpdateValidation:
		return filepath.Join(l.BaseDir, l.Requests, requestFolder(entity), requestClass(k, entity)+".php")
	case Serialization:
		return filepath.Join(l.BaseDir, l.Resources, resourceClass(entity)+".php")
	default:
		return filepath.Join(l.BaseDir, l.Routes)
	}
}

// Controller returns the fully qualified controller class of an entity.
func (l Layout) Controller(entity string) string {
	return l.Namespace + `\Http\Controllers\` + entity + "Controller"
}

func requestFolder(entity string) string {
	return entity + "Requests"
}

func requestClass(k Kind, entity string) string {
	if k == UpdateValidation {
		return "Update" + entity + "Request"
	}
	return "Store" + entity + "Request"
}

func resourceClass(entity string) string {
	return entity + "Resource"
}
