package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadProductsYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.yaml")
	content := `products:
  - id: chatbot
    name: Chatbot
    base_price: 49
    skills:
      - email_integration
      - crm_sync
  - id: sales_agent
    base_price: 99.5
    skills: [email_integration, lead_scoring]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	products, err := loadProducts(path)
	require.NoError(t, err)
	require.Len(t, products, 2)

	assert.Equal(t, "chatbot", products[0].ID)
	assert.Equal(t, "Chatbot", products[0].Name)
	assert.True(t, products[0].BasePrice.Equal(decimal.NewFromInt(49)))
	assert.Equal(t, []string{"email_integration", "crm_sync"}, products[0].Skills)

	// Name defaults to the ID when omitted.
	assert.Equal(t, "sales_agent", products[1].Name)
	assert.True(t, products[1].BasePrice.Equal(decimal.NewFromFloat(99.5)))
}

func TestLoadProductsJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.json")
	content := `{"products":[{"id":"chatbot","name":"Chatbot","base_price":49,"skills":["email_integration"]}]}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	products, err := loadProducts(path)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "chatbot", products[0].ID)
}

func TestLoadProductsErrors(t *testing.T) {
	_, err := loadProducts(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	empty := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(empty, []byte("products: []\n"), 0o644))
	_, err = loadProducts(empty)
	assert.Error(t, err)

	noID := filepath.Join(t.TempDir(), "noid.yaml")
	require.NoError(t, os.WriteFile(noID, []byte("products:\n  - name: X\n"), 0o644))
	_, err = loadProducts(noID)
	assert.Error(t, err)
}
