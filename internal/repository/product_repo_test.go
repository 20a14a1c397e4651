package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchClauseEmptyTermIsNoop(t *testing.T) {
	where, args, argIdx := searchClause("WHERE 1=1", nil, 1, "")

	assert.Equal(t, "WHERE 1=1", where)
	assert.Empty(t, args)
	assert.Equal(t, 1, argIdx)
}

func TestSearchClauseAddsStrippedCodeMatch(t *testing.T) {
	where, args, argIdx := searchClause("WHERE 1=1", nil, 1, "Cód. F232")

	assert.Contains(t, where, "p.nome ILIKE $1")
	assert.Contains(t, where, "p.info ILIKE $1")
	assert.Contains(t, where, "p.codigo ILIKE $1")
	assert.Contains(t, where, "p.codigo_barra ILIKE $1")
	assert.Contains(t, where, "p.codigo ILIKE $2")

	require.Len(t, args, 2)
	assert.Equal(t, "%Cód. F232%", args[0])
	assert.Equal(t, "%CdF232%", args[1])
	assert.Equal(t, 3, argIdx)
}

func TestSearchClauseSkipsStrippedWhenEmpty(t *testing.T) {
	where, args, argIdx := searchClause("WHERE 1=1", nil, 1, "¡¿")

	// Only the raw-term placeholder: stripping left nothing to match.
	assert.NotContains(t, where, "$2")
	require.Len(t, args, 1)
	assert.Equal(t, 2, argIdx)
}

func TestSearchClauseContinuesArgNumbering(t *testing.T) {
	where, args, argIdx := searchClause("WHERE 1=1", []interface{}{"x", "y"}, 3, "disco")

	assert.Contains(t, where, "p.nome ILIKE $3")
	assert.Len(t, args, 3)
	assert.Equal(t, 4, argIdx)
}
