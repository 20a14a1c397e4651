package service

import "github.com/hecho/catalog_api/internal/models"

// GroupByName folds a page of products into display groups keyed by exact
// product name. Group order follows the first occurrence of each name in the
// input, and variations keep their input order, so the page's recency ordering
// survives the fold. Grouping is per page: the same name on another page forms
// its own group there.
func GroupByName(products []models.Product) []models.ProductGroup {
	groups := make([]models.ProductGroup, 0, len(products))
	index := make(map[string]int, len(products))

	for _, p := range products {
		i, ok := index[p.Name]
		if !ok {
			index[p.Name] = len(groups)
			groups = append(groups, models.ProductGroup{Name: p.Name})
			i = len(groups) - 1
		}
		groups[i].Variations = append(groups[i].Variations, p)
		groups[i].TotalVariations++
	}
	return groups
}
