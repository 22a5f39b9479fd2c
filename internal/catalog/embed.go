package catalog

import (
	_ "embed"
	"fmt"
)

//go:embed default.yaml
var defaultCatalogYAML []byte

// Default returns the built-in contentious-case catalog. Used when no
// catalog file is configured.
func Default() (*Catalog, error) {
	c, err := Parse(defaultCatalogYAML)
	if err != nil {
		return nil, fmt.Errorf("built-in catalog: %w", err)
	}
	return c, nil
}
