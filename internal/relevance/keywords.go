package relevance

import (
	"regexp"
	"strings"
)

// vocabulary is the fixed list of domain terms matched against article text.
// Declaration order is significant: extracted keywords come back in this
// order, not in the order they appear in the text.
var vocabulary = []string{
	"jardinagem",
	"horta",
	"plantas",
	"jardim vertical",
	"compostagem",
	"adubo",
	"mudas",
	"suculentas",
	"energia solar",
	"energia",
	"painel solar",
	"sustentabilidade",
	"sustentavel",
	"reciclagem",
	"reciclar",
	"residuos",
	"reuso",
	"agua da chuva",
	"economia de agua",
	"consumo consciente",
	"decoracao",
	"iluminacao natural",
	"materiais reciclados",
	"eco-friendly",
	"organico",
	"permacultura",
	"telhado verde",
}

var htmlTag = regexp.MustCompile(`<[^>]*>`)

// stripHTML lowercases the text and replaces every tag with a single space so
// adjacent words are not joined together.
func stripHTML(text string) string {
	return strings.ToLower(htmlTag.ReplaceAllString(text, " "))
}

const fallbackKeywordLimit = 10

// ExtractKeywords pulls topical keywords out of an article's title and body.
// Vocabulary terms found as substrings win, in vocabulary order. When no term
// matches, the first 10 plain tokens longer than 3 characters that are not
// purely numeric are used instead, in text order.
func ExtractKeywords(title, body string) []string {
	text := stripHTML(title + " " + body)

	var found []string
	for _, term := range vocabulary {
		if strings.Contains(text, term) {
			found = append(found, term)
		}
	}
	if len(found) > 0 {
		return found
	}

	var fallback []string
	for _, token := range strings.Fields(text) {
		if len(token) <= 3 || isNumeric(token) {
			continue
		}
		fallback = append(fallback, token)
		if len(fallback) == fallbackKeywordLimit {
			break
		}
	}
	return fallback
}

func isNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
