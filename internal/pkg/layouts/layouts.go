// Package layouts загружает описания шаблонных листов по категориям заказа из YAML.
package layouts

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
	"orderbot/internal/entities"
	"orderbot/internal/service/order"
	"orderbot/pkg/a1"
)

var ErrInvalidLayout = errors.New("invalid layout")

type file struct {
	Layouts map[string]layoutDoc `yaml:"layouts"`
}

type layoutDoc struct {
	SpreadsheetID      string         `yaml:"spreadsheet_id"`
	TemplateSheet      string         `yaml:"template_sheet"`
	SheetPrefix        string         `yaml:"sheet_prefix"`
	AddressHeaderRow   int            `yaml:"address_header_row"`
	AddressStartColumn string         `yaml:"address_start_column"`
	ItemNameColumn     string         `yaml:"item_name_column"`
	ItemRows           rowsDoc        `yaml:"item_rows"`
	ExcludedRows       []int          `yaml:"excluded_rows"`
	ExcludedValues     []string       `yaml:"excluded_values"`
	Multiples          map[string]int `yaml:"multiples"`
}

type rowsDoc struct {
	Start int `yaml:"start"`
	End   int `yaml:"end"`
}

type Registry struct {
	layouts map[entities.OrderCategory]entities.Layout
}

func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read layouts file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Registry, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode layouts: %w", err)
	}
	if len(f.Layouts) == 0 {
		return nil, fmt.Errorf("%w: no layouts defined", ErrInvalidLayout)
	}

	registry := &Registry{layouts: make(map[entities.OrderCategory]entities.Layout, len(f.Layouts))}
	for name, doc := range f.Layouts {
		layout, err := doc.toLayout()
		if err != nil {
			return nil, fmt.Errorf("layout %s: %w", name, err)
		}
		registry.layouts[entities.OrderCategory(name)] = layout
	}
	return registry, nil
}

func (r *Registry) LayoutFor(category entities.OrderCategory) (entities.Layout, error) {
	layout, ok := r.layouts[category]
	if !ok {
		return entities.Layout{}, fmt.Errorf("%w: %s", order.ErrLayoutNotFound, category)
	}
	return layout, nil
}

// Categories отсортированный список категорий с описанным шаблоном.
func (r *Registry) Categories() []entities.OrderCategory {
	categories := make([]entities.OrderCategory, 0, len(r.layouts))
	for category := range r.layouts {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i] < categories[j] })
	return categories
}

func (d layoutDoc) toLayout() (entities.Layout, error) {
	switch {
	case strings.TrimSpace(d.SpreadsheetID) == "":
		return entities.Layout{}, fmt.Errorf("%w: spreadsheet_id is required", ErrInvalidLayout)
	case strings.TrimSpace(d.TemplateSheet) == "":
		return entities.Layout{}, fmt.Errorf("%w: template_sheet is required", ErrInvalidLayout)
	case d.AddressHeaderRow < 1:
		return entities.Layout{}, fmt.Errorf("%w: address_header_row must be positive", ErrInvalidLayout)
	case d.ItemRows.Start < 1 || d.ItemRows.End < d.ItemRows.Start:
		return entities.Layout{}, fmt.Errorf("%w: item_rows %d..%d", ErrInvalidLayout, d.ItemRows.Start, d.ItemRows.End)
	}

	startColumn := strings.ToUpper(strings.TrimSpace(d.AddressStartColumn))
	if _, err := a1.ColumnToIndex(startColumn); err != nil {
		return entities.Layout{}, fmt.Errorf("%w: address_start_column: %w", ErrInvalidLayout, err)
	}
	itemColumn := strings.ToUpper(strings.TrimSpace(d.ItemNameColumn))
	if _, err := a1.ColumnToIndex(itemColumn); err != nil {
		return entities.Layout{}, fmt.Errorf("%w: item_name_column: %w", ErrInvalidLayout, err)
	}

	excludedRows := make(map[int]struct{}, len(d.ExcludedRows))
	for _, row := range d.ExcludedRows {
		excludedRows[row] = struct{}{}
	}
	excludedValues := make(map[string]struct{}, len(d.ExcludedValues))
	for _, value := range d.ExcludedValues {
		excludedValues[strings.TrimSpace(value)] = struct{}{}
	}
	multiples := make(map[string]int, len(d.Multiples))
	for item, multiple := range d.Multiples {
		if multiple < 1 {
			return entities.Layout{}, fmt.Errorf("%w: multiple for %q must be positive", ErrInvalidLayout, item)
		}
		multiples[item] = multiple
	}

	return entities.Layout{
		SpreadsheetID:      strings.TrimSpace(d.SpreadsheetID),
		TemplateSheetName:  d.TemplateSheet,
		SheetPrefix:        d.SheetPrefix,
		AddressHeaderRow:   d.AddressHeaderRow,
		AddressStartColumn: startColumn,
		ItemNameColumn:     itemColumn,
		ItemRowStart:       d.ItemRows.Start,
		ItemRowEnd:         d.ItemRows.End,
		ExcludedRows:       excludedRows,
		ExcludedValues:     excludedValues,
		Multiples:          multiples,
	}, nil
}
