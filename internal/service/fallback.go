package service

import (
	_ "embed"
	"encoding/csv"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/hecho/catalog_api/internal/models"
	"github.com/hecho/catalog_api/internal/repository"
	"github.com/hecho/catalog_api/internal/utils"
)

// The embedded dataset is a snapshot of the printed catalog. It keeps the
// storefront browsable when the database is unreachable: searches, category
// filters and pagination all run in memory against it.
//
//go:embed data/catalog_fallback.csv
var fallbackCSV string

var (
	fallbackOnce     sync.Once
	fallbackProducts []models.Product
)

// fallbackDataset parses the embedded CSV once and memoizes the result.
func fallbackDataset() []models.Product {
	fallbackOnce.Do(func() {
		rows, err := parseFallbackCSV(fallbackCSV)
		if err != nil {
			log.Error().Err(err).Msg("Failed to parse embedded catalog dataset")
			return
		}
		fallbackProducts = rows
	})
	return fallbackProducts
}

func parseFallbackCSV(raw string) ([]models.Product, error) {
	r := csv.NewReader(strings.NewReader(raw))
	r.Comma = ';'
	r.FieldsPerRecord = 6
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog csv: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("catalog csv has no data rows")
	}

	products := make([]models.Product, 0, len(records)-1)
	for i, rec := range records[1:] { // skip header
		products = append(products, models.Product{
			ID:           fmt.Sprintf("fallback-%03d", i+1),
			Code:         strings.TrimSpace(rec[0]),
			Name:         strings.TrimSpace(rec[1]),
			Info:         strings.TrimSpace(rec[2]),
			Quantity:     strings.TrimSpace(rec[3]),
			Barcode:      strings.TrimSpace(rec[4]),
			CategoryName: strings.TrimSpace(rec[5]),
		})
	}
	return products, nil
}

// MatchesSearch is the in-memory twin of the SQL search condition: the raw
// term substring-matches name, info, code or barcode case-insensitively, and
// the punctuation-stripped term is additionally tried against the code. An
// empty term matches everything.
func MatchesSearch(p *models.Product, term string) bool {
	if term == "" {
		return true
	}
	if utils.ContainsFold(p.Name, term) ||
		utils.ContainsFold(p.Info, term) ||
		utils.ContainsFold(p.Code, term) ||
		utils.ContainsFold(p.Barcode, term) {
		return true
	}
	stripped := utils.StripNonAlphanumeric(term)
	return stripped != "" && utils.ContainsFold(p.Code, stripped)
}

// fallbackCategoryID derives a stable category id from a dataset row. The
// embedded rows carry category names only, so the lowercased name stands in
// for the database id.
func fallbackCategoryID(categoryName string) string {
	if categoryName == "" {
		return ""
	}
	return strings.ToLower(categoryName)
}

// fallbackCatalog evaluates a catalog filter against the embedded dataset,
// applying the same search, category and pagination semantics the SQL path
// has. Row order is the dataset's print order.
func fallbackCatalog(filter repository.CatalogFilter) *repository.CatalogResult {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 50
	}

	var matched []models.Product
	for _, p := range fallbackDataset() {
		if !MatchesSearch(&p, filter.Search) {
			continue
		}
		switch filter.Category {
		case "", models.FacetAll:
		case models.FacetUncategorized:
			if p.CategoryName != "" {
				continue
			}
		default:
			if fallbackCategoryID(p.CategoryName) != strings.ToLower(filter.Category) {
				continue
			}
		}
		matched = append(matched, p)
	}

	total := len(matched)
	start := (filter.Page - 1) * filter.PageSize
	if start > total {
		start = total
	}
	end := start + filter.PageSize
	if end > total {
		end = total
	}
	return &repository.CatalogResult{Products: matched[start:end], Total: total}
}

// fallbackFacetCounts mirrors CountByCategory over the embedded dataset,
// keyed by the derived category id ('' for uncategorized rows).
func fallbackFacetCounts(search string) map[string]int {
	counts := make(map[string]int)
	for _, p := range fallbackDataset() {
		if !MatchesSearch(&p, search) {
			continue
		}
		counts[fallbackCategoryID(p.CategoryName)]++
	}
	return counts
}

// fallbackCategories lists the category names present in the embedded
// dataset, in first-appearance order, as minimal category records.
func fallbackCategories() []models.Category {
	seen := make(map[string]bool)
	var cats []models.Category
	for _, p := range fallbackDataset() {
		if p.CategoryName == "" || seen[p.CategoryName] {
			continue
		}
		seen[p.CategoryName] = true
		cats = append(cats, models.Category{
			ID:       fallbackCategoryID(p.CategoryName),
			Name:     p.CategoryName,
			TitlePT:  p.CategoryName,
			TitleES:  p.CategoryName,
			IsActive: true,
		})
	}
	return cats
}
