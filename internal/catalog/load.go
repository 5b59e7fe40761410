package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"skill-billing/pkg/api"
)

// fileEntry is one catalog row as it appears in an override file.
// Prices are plain numbers there; they become decimals on load.
type fileEntry struct {
	ID        string  `json:"id" yaml:"id"`
	Name      string  `json:"name" yaml:"name"`
	BasePrice float64 `json:"base_price" yaml:"base_price"`
	Category  string  `json:"category" yaml:"category"`
}

type catalogFile struct {
	Skills []fileEntry `json:"skills" yaml:"skills"`
}

// LoadFile reads a catalog override from a YAML or JSON file. The file
// format is chosen by extension; anything that is not .json is parsed
// as YAML.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var f catalogFile
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(data, &f)
	} else {
		err = yaml.Unmarshal(data, &f)
	}
	if err != nil {
		return nil, fmt.Errorf("parse catalog file %s: %w", path, err)
	}
	if len(f.Skills) == 0 {
		return nil, fmt.Errorf("catalog file %s contains no skills", path)
	}

	entries := make([]api.SkillPricing, 0, len(f.Skills))
	for _, e := range f.Skills {
		entries = append(entries, api.SkillPricing{
			ID:        e.ID,
			Name:      e.Name,
			BasePrice: decimal.NewFromFloat(e.BasePrice),
			Category:  e.Category,
		})
	}
	return New(entries), nil
}
