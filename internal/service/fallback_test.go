package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hecho/catalog_api/internal/models"
	"github.com/hecho/catalog_api/internal/repository"
)

func TestFallbackDatasetParses(t *testing.T) {
	products := fallbackDataset()
	require.NotEmpty(t, products)

	for _, p := range products {
		assert.NotEmpty(t, p.ID)
		assert.NotEmpty(t, p.Code)
		assert.NotEmpty(t, p.Name)
	}
}

func TestMatchesSearchStrippedCode(t *testing.T) {
	p := models.Product{Code: "Cód. F232", Name: "DISCO DE CORTE", Info: "Disco de corte 115mm"}

	// Raw term hits the code directly.
	assert.True(t, MatchesSearch(&p, "Cód. F232"))
	// A bare code hits via the stripped term even though the stored code has
	// punctuation before the digits.
	assert.True(t, MatchesSearch(&p, "F232"))
	assert.True(t, MatchesSearch(&p, "f232"))
	// Name and info match case-insensitively.
	assert.True(t, MatchesSearch(&p, "disco"))
	assert.True(t, MatchesSearch(&p, "115mm"))
	// Empty term matches everything.
	assert.True(t, MatchesSearch(&p, ""))

	assert.False(t, MatchesSearch(&p, "martillo"))
	assert.False(t, MatchesSearch(&p, "F999"))
}

func TestFallbackCatalogSearch(t *testing.T) {
	result := fallbackCatalog(repository.CatalogFilter{Page: 1, PageSize: 50, Search: "disco de corte"})

	require.Equal(t, 2, result.Total)
	codes := []string{result.Products[0].Code, result.Products[1].Code}
	assert.Contains(t, codes, "Cód. F232")
	assert.Contains(t, codes, "Cód. F233")
}

func TestFallbackCatalogCategoryFilter(t *testing.T) {
	all := fallbackCatalog(repository.CatalogFilter{Page: 1, PageSize: 100})
	pesca := fallbackCatalog(repository.CatalogFilter{Page: 1, PageSize: 100, Category: "pesca"})
	uncategorized := fallbackCatalog(repository.CatalogFilter{Page: 1, PageSize: 100, Category: models.FacetUncategorized})

	assert.Greater(t, all.Total, pesca.Total)
	require.NotZero(t, pesca.Total)
	for _, p := range pesca.Products {
		assert.Equal(t, "Pesca", p.CategoryName)
	}
	require.NotZero(t, uncategorized.Total)
	for _, p := range uncategorized.Products {
		assert.Empty(t, p.CategoryName)
	}
}

func TestFallbackCatalogPagination(t *testing.T) {
	total := fallbackCatalog(repository.CatalogFilter{Page: 1, PageSize: 1000}).Total

	pageSize := 10
	seen := 0
	for page := 1; ; page++ {
		result := fallbackCatalog(repository.CatalogFilter{Page: page, PageSize: pageSize})
		assert.Equal(t, total, result.Total)
		if len(result.Products) == 0 {
			break
		}
		assert.LessOrEqual(t, len(result.Products), pageSize)
		seen += len(result.Products)
	}
	assert.Equal(t, total, seen)

	// A page past the end is empty, not an error.
	past := fallbackCatalog(repository.CatalogFilter{Page: 999, PageSize: pageSize})
	assert.Empty(t, past.Products)
	assert.Equal(t, total, past.Total)
}

func TestFallbackFacetCountsMatchCatalog(t *testing.T) {
	counts := fallbackFacetCounts("")

	total := 0
	for _, n := range counts {
		total += n
	}
	assert.Equal(t, fallbackCatalog(repository.CatalogFilter{Page: 1, PageSize: 1000}).Total, total)
	assert.NotZero(t, counts["ferretería"])
	assert.NotZero(t, counts[""]) // uncategorized bucket
}

func TestFallbackCategoriesFirstAppearanceOrder(t *testing.T) {
	cats := fallbackCategories()
	require.NotEmpty(t, cats)
	assert.Equal(t, "Hogar", cats[0].Name)
	for _, c := range cats {
		assert.True(t, c.IsActive)
		assert.NotEmpty(t, c.ID)
	}
}
