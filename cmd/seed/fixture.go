package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// ErrInvalidCatalog is returned when a fixture file fails validation
var ErrInvalidCatalog = errors.New("seed: invalid catalog fixture")

// Catalog is a hand-written set of categories, products and suppliers
type Catalog struct {
	Categories []CategoryFixture `yaml:"categories"`
	Suppliers  []SupplierFixture `yaml:"suppliers"`
}

// CategoryFixture groups the products of one category
type CategoryFixture struct {
	Name     string           `yaml:"name"`
	Products []ProductFixture `yaml:"products"`
}

// ProductFixture describes one product. Prices are decimal strings.
type ProductFixture struct {
	Name        string          `yaml:"name"`
	Code        string          `yaml:"code"`
	Description string          `yaml:"description,omitempty"`
	Price       decimal.Decimal `yaml:"price"`
	BuyingPrice decimal.Decimal `yaml:"buying_price"`
	Stock       int             `yaml:"stock"`
}

// SupplierFixture describes one supplier
type SupplierFixture struct {
	Name    string `yaml:"name"`
	Phone   string `yaml:"phone,omitempty"`
	Email   string `yaml:"email,omitempty"`
	Address string `yaml:"address,omitempty"`
}

// LoadCatalog reads and validates a YAML fixture file
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog fixture: %w", err)
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes a fixture. Unknown keys are rejected so typos do not
// silently drop data.
func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("parsing catalog fixture: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks required fields, prices and product code uniqueness
func (c *Catalog) Validate() error {
	var problems []string
	codes := make(map[string]bool)

	for i, cat := range c.Categories {
		if strings.TrimSpace(cat.Name) == "" {
			problems = append(problems, fmt.Sprintf("categories[%d]: name is required", i))
		}
		for j, p := range cat.Products {
			where := fmt.Sprintf("categories[%d].products[%d]", i, j)
			if strings.TrimSpace(p.Name) == "" {
				problems = append(problems, where+": name is required")
			}
			switch {
			case strings.TrimSpace(p.Code) == "":
				problems = append(problems, where+": code is required")
			case codes[p.Code]:
				problems = append(problems, fmt.Sprintf("%s: duplicate code %q", where, p.Code))
			default:
				codes[p.Code] = true
			}
			if p.Price.IsNegative() || p.BuyingPrice.IsNegative() {
				problems = append(problems, where+": prices cannot be negative")
			}
			if p.Stock < 0 {
				problems = append(problems, where+": stock cannot be negative")
			}
		}
	}
	for i, s := range c.Suppliers {
		if strings.TrimSpace(s.Name) == "" {
			problems = append(problems, fmt.Sprintf("suppliers[%d]: name is required", i))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidCatalog, strings.Join(problems, "; "))
	}
	return nil
}

// ProductCount returns the number of products across all categories
func (c *Catalog) ProductCount() int {
	n := 0
	for _, cat := range c.Categories {
		n += len(cat.Products)
	}
	return n
}
