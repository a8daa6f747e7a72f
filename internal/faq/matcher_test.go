package faq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func matcherCorpus(t *testing.T) *Corpus {
	t.Helper()
	corpus := Load(writeFixture(t, `{
  "Pagos": {
    "¿Cómo realizo un pago a proveedores?": "Desde el portal.",
    "¿Cómo anulo un pago?": "Con una nota de crédito."
  },
  "Accesos": {
    "¿Cómo recupero mi clave de acceso?": "Con el botón de recuperación.",
    "¿Quién autoriza un acceso nuevo?": "La Contaduría General."
  }
}`))
	require.False(t, corpus.Empty())
	return corpus
}

func TestFindMatchesSortedByScore(t *testing.T) {
	corpus := matcherCorpus(t)

	matches := corpus.FindMatches("cómo realizo un pago", DefaultMinShared, DefaultMaxResults)
	require.NotEmpty(t, matches)
	for i := 1; i < len(matches); i++ {
		assert.GreaterOrEqual(t, matches[i-1].Score, matches[i].Score)
	}
	assert.Equal(t, "¿Cómo realizo un pago a proveedores?", matches[0].Question)
}

func TestFindMatchesCaseFolded(t *testing.T) {
	corpus := matcherCorpus(t)

	matches := corpus.FindMatches("CLAVE DE ACCESO", 2, DefaultMaxResults)
	require.NotEmpty(t, matches)
	assert.Equal(t, "¿Cómo recupero mi clave de acceso?", matches[0].Question)
}

func TestFindMatchesTiesKeepCorpusOrder(t *testing.T) {
	corpus := matcherCorpus(t)

	// "un" scores 1 against three questions; equal scores keep corpus order.
	matches := corpus.FindMatches("un", DefaultMinShared, DefaultMaxResults)
	require.Len(t, matches, 3)
	assert.Equal(t, "¿Cómo realizo un pago a proveedores?", matches[0].Question)
	assert.Equal(t, "¿Cómo anulo un pago?", matches[1].Question)
	assert.Equal(t, "¿Quién autoriza un acceso nuevo?", matches[2].Question)
}

func TestFindMatchesRespectsMaxResults(t *testing.T) {
	corpus := matcherCorpus(t)

	matches := corpus.FindMatches("cómo un pago acceso", DefaultMinShared, 2)
	assert.Len(t, matches, 2)
}

func TestFindMatchesNoOverlapReturnsEmpty(t *testing.T) {
	corpus := matcherCorpus(t)

	matches := corpus.FindMatches("xyzzy plugh", DefaultMinShared, DefaultMaxResults)
	assert.Empty(t, matches)
}

func TestFindMatchesEmptyQuery(t *testing.T) {
	corpus := matcherCorpus(t)

	matches := corpus.FindMatches("", DefaultMinShared, DefaultMaxResults)
	assert.Empty(t, matches)
}
