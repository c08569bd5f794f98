package relevance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractKeywords_VocabularyOrder(t *testing.T) {
	title := "Compostagem doméstica para quem tem horta"
	body := "<p>Um guia de <strong>jardinagem</strong> com foco em compostagem e adubo natural.</p>"

	keywords := ExtractKeywords(title, body)

	// Vocabulary declaration order, not text order.
	assert.Equal(t, []string{"jardinagem", "horta", "compostagem", "adubo"}, keywords)
}

func TestExtractKeywords_MatchesInsideHTML(t *testing.T) {
	keywords := ExtractKeywords("Dicas", `<div class="post">reciclagem de <em>residuos</em></div>`)
	assert.Equal(t, []string{"reciclagem", "residuos"}, keywords)
}

func TestExtractKeywords_FallbackTokens(t *testing.T) {
	title := "Ferramentas essenciais"
	body := "Um resumo com 2024 itens e algumas ferramentas de poda para canteiros pequenos"

	keywords := ExtractKeywords(title, body)

	// No vocabulary hit: plain tokens longer than 3 chars, numbers skipped,
	// text order preserved.
	assert.Equal(t, []string{
		"ferramentas", "essenciais", "resumo", "itens", "algumas",
		"ferramentas", "poda", "para", "canteiros", "pequenos",
	}, keywords)
}

func TestExtractKeywords_FallbackCapped(t *testing.T) {
	body := "alpha bravo charlie delta echo foxtrot golfe hotel india juliett kilo lima"
	keywords := ExtractKeywords("", body)
	assert.Len(t, keywords, fallbackKeywordLimit)
	assert.Equal(t, "alpha", keywords[0])
	assert.Equal(t, "juliett", keywords[len(keywords)-1])
}

func TestStripHTML_ReplacesTagsWithSpaces(t *testing.T) {
	got := stripHTML("<h1>Horta</h1><p>vertical</p>")
	assert.Equal(t, " horta  vertical ", got)
}
