package main

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

// productEntry is one product as it appears in an input file. Base
// prices are plain numbers there and become decimals on load.
type productEntry struct {
	ID        string   `json:"id" yaml:"id"`
	Name      string   `json:"name" yaml:"name"`
	Skills    []string `json:"skills" yaml:"skills"`
	BasePrice float64  `json:"base_price" yaml:"base_price"`
	Features  []string `json:"features,omitempty" yaml:"features,omitempty"`
}

type productFile struct {
	Products []productEntry `json:"products" yaml:"products"`
}

// loadProducts reads a product selection from a YAML or JSON file.
func loadProducts(path string) ([]api.ProductWithSkills, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read products file: %w", err)
	}

	var f productFile
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(data, &f)
	} else {
		err = yaml.Unmarshal(data, &f)
	}
	if err != nil {
		return nil, fmt.Errorf("parse products file %s: %w", path, err)
	}
	if len(f.Products) == 0 {
		return nil, fmt.Errorf("products file %s contains no products", path)
	}

	products := make([]api.ProductWithSkills, 0, len(f.Products))
	for _, e := range f.Products {
		if e.ID == "" {
			return nil, fmt.Errorf("products file %s: product without id", path)
		}
		name := e.Name
		if name == "" {
			name = e.ID
		}
		products = append(products, api.ProductWithSkills{
			ID:        e.ID,
			Name:      name,
			Skills:    e.Skills,
			BasePrice: decimal.NewFromFloat(e.BasePrice),
			Features:  e.Features,
		})
	}
	return products, nil
}
