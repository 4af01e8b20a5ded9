package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"lobitos-storefront/internal/domain"
	"lobitos-storefront/internal/store/catalog"
)

// ProductWriter is the catalog surface the importer writes into.
type ProductWriter interface {
	Add(in catalog.Input) (*domain.Product, error)
}

// CSVImporter reads product CSV exports and appends them to the catalog.
// Expected headers: name, price, category, description.en, description.es,
// images.url. Rows with an image URL but no name continue the previous
// product's image list.
type CSVImporter struct {
	reader  *csv.Reader
	catalog ProductWriter
}

func NewCSVImporter(r io.Reader, catalog ProductWriter) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{
		reader:  csvr,
		catalog: catalog,
	}
}

type csvRow struct {
	Name     string
	Price    float64
	Category string
	DescEN   string
	DescES   string
	Images   []string
}

// Run parses CSV rows and adds products, merging continuation image rows.
func (i *CSVImporter) Run() (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)

	var (
		current  *csvRow
		imported int
	)

	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}

		row := parseRow(record, index)
		if row == nil {
			continue
		}

		if row.Name != "" {
			if current != nil {
				if err := i.save(current); err != nil {
					return imported, err
				}
				imported++
			}
			current = row
			continue
		}

		// Continuation rows (images) belong to the current product.
		if current != nil && len(row.Images) > 0 {
			current.Images = append(current.Images, row.Images...)
		}
	}

	if current != nil {
		if err := i.save(current); err != nil {
			return imported, err
		}
		imported++
	}

	return imported, nil
}

func (i *CSVImporter) save(row *csvRow) error {
	if row.Name == "" || row.Price <= 0 || len(row.Images) == 0 {
		return fmt.Errorf("invalid product row (missing required fields) for name %q", row.Name)
	}

	category := domain.Category(row.Category)
	switch category {
	case domain.CategoryPoncho, domain.CategoryPonchos, domain.CategoryOther:
	default:
		category = domain.CategoryOther
	}

	_, err := i.catalog.Add(catalog.Input{
		Name:        row.Name,
		Description: domain.Localized{EN: row.DescEN, ES: row.DescES},
		Price:       row.Price,
		Images:      row.Images,
		Category:    category,
	})
	if err != nil {
		return fmt.Errorf("add product %q: %w", row.Name, err)
	}
	return nil
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[h] = i
	}
	return idx
}

func parseRow(record []string, index map[string]int) *csvRow {
	name := pick(record, index, "name")
	image := pick(record, index, "images.url")

	if name == "" && image == "" {
		return nil
	}

	var price float64
	if v := pick(record, index, "price"); v != "" {
		price, _ = strconv.ParseFloat(v, 64)
	}

	row := &csvRow{
		Name:     name,
		Price:    price,
		Category: pick(record, index, "category"),
		DescEN:   pick(record, index, "description.en"),
		DescES:   pick(record, index, "description.es"),
	}
	if image != "" {
		row.Images = []string{image}
	}
	return row
}

func pick(record []string, index map[string]int, key string) string {
	pos, ok := index[key]
	if !ok || pos >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[pos])
}
