package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hecho/catalog_api/internal/models"
)

func product(id, code, name string) models.Product {
	return models.Product{ID: id, Code: code, Name: name}
}

func TestGroupByNameCollapsesVariations(t *testing.T) {
	products := []models.Product{
		product("1", "Cód. F232", "DISCO DE CORTE"),
		product("2", "Cód. B186", "COLADOR PLÁSTICO"),
		product("3", "Cód. F233", "DISCO DE CORTE"),
	}

	groups := GroupByName(products)

	assert.Len(t, groups, 2)
	assert.Equal(t, "DISCO DE CORTE", groups[0].Name)
	assert.Equal(t, 2, groups[0].TotalVariations)
	assert.True(t, groups[0].Expandable())
	assert.Equal(t, "Cód. F232", groups[0].Variations[0].Code)
	assert.Equal(t, "Cód. F233", groups[0].Variations[1].Code)

	assert.Equal(t, "COLADOR PLÁSTICO", groups[1].Name)
	assert.Equal(t, 1, groups[1].TotalVariations)
	assert.False(t, groups[1].Expandable())
}

func TestGroupByNamePreservesFirstSeenOrder(t *testing.T) {
	products := []models.Product{
		product("1", "A1", "ZETA"),
		product("2", "B1", "ALFA"),
		product("3", "A2", "ZETA"),
		product("4", "C1", "MEDIA"),
	}

	groups := GroupByName(products)

	names := make([]string, len(groups))
	for i, g := range groups {
		names[i] = g.Name
	}
	assert.Equal(t, []string{"ZETA", "ALFA", "MEDIA"}, names)
}

func TestGroupByNameConservesItems(t *testing.T) {
	products := []models.Product{
		product("1", "A", "X"), product("2", "B", "X"), product("3", "C", "X"),
		product("4", "D", "Y"), product("5", "E", "Z"),
	}

	groups := GroupByName(products)

	total := 0
	for _, g := range groups {
		assert.Equal(t, len(g.Variations), g.TotalVariations)
		total += g.TotalVariations
	}
	assert.Equal(t, len(products), total)
}

func TestGroupByNameEmptyInput(t *testing.T) {
	assert.Empty(t, GroupByName(nil))
	assert.Empty(t, GroupByName([]models.Product{}))
}
