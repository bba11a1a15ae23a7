// Package catalog holds the five Cogni subscription packages. A Catalog is
// built once at startup and is read-only afterwards, so it is safe to share
// between request goroutines.
package catalog

import (
	"fmt"
	"iter"
	"slices"

	apperrors "cogni-recommender/internal/common/errors"
)

// Package names. Together they form the closed set the classifier returns.
const (
	FreshStart       = "Fresh Start"
	PracticePlus     = "Practice Plus"
	CommunityAccess  = "Community Access"
	EnterpriseCare   = "Enterprise Care (Public Health)"
	EnterpriseAccess = "Enterprise Access (Insurance & EAS)"
)

// Names lists the package names in declaration order.
var Names = []string{FreshStart, PracticePlus, CommunityAccess, EnterpriseCare, EnterpriseAccess}

// PackageDefinition describes one subscription package. SeatRange and
// PricingFormula are display text only.
type PackageDefinition struct {
	Name           string   `json:"name"`
	IdealClient    string   `json:"ideal_client"`
	SeatRange      string   `json:"seat_range"`
	PricingFormula string   `json:"pricing_formula"`
	Features       []string `json:"features"`
}

func (p PackageDefinition) clone() PackageDefinition {
	p.Features = slices.Clone(p.Features)
	return p
}

// Catalog is an immutable, ordered set of package definitions.
type Catalog struct {
	order  []string
	byName map[string]PackageDefinition
}

// New validates defs and builds a Catalog. The definitions must cover
// exactly the names in Names, each once, with at least one feature.
func New(defs []PackageDefinition) (*Catalog, error) {
	if len(defs) != len(Names) {
		return nil, apperrors.NewCatalogLoadFailedError(
			fmt.Sprintf("expected %d packages, got %d", len(Names), len(defs)))
	}

	c := &Catalog{
		order:  make([]string, 0, len(Names)),
		byName: make(map[string]PackageDefinition, len(defs)),
	}
	for _, def := range defs {
		if !slices.Contains(Names, def.Name) {
			return nil, apperrors.NewCatalogLoadFailedError(fmt.Sprintf("unknown package %q", def.Name))
		}
		if _, dup := c.byName[def.Name]; dup {
			return nil, apperrors.NewCatalogLoadFailedError(fmt.Sprintf("duplicate package %q", def.Name))
		}
		if len(def.Features) == 0 {
			return nil, apperrors.NewCatalogLoadFailedError(fmt.Sprintf("package %q has no features", def.Name))
		}
		c.byName[def.Name] = def.clone()
	}
	// Iteration follows Names, whatever order defs arrived in.
	c.order = append(c.order, Names...)
	return c, nil
}

// Get returns the definition for name, or a PACKAGE_NOT_FOUND error.
func (c *Catalog) Get(name string) (PackageDefinition, error) {
	def, ok := c.byName[name]
	if !ok {
		return PackageDefinition{}, apperrors.NewPackageNotFoundError(name)
	}
	return def.clone(), nil
}

// Has reports whether name is in the catalog.
func (c *Catalog) Has(name string) bool {
	_, ok := c.byName[name]
	return ok
}

// All yields every definition in declaration order. Each call starts a new
// pass, and callers may stop early.
func (c *Catalog) All() iter.Seq[PackageDefinition] {
	return func(yield func(PackageDefinition) bool) {
		for _, name := range c.order {
			if !yield(c.byName[name].clone()) {
				return
			}
		}
	}
}

// Len returns the number of packages.
func (c *Catalog) Len() int { return len(c.order) }
