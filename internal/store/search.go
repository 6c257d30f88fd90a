package store

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Customer search is tiered by normalized query length. Short strings carry
// too few trigrams for similarity scoring and too little signal for
// full-text ranking, so the strategy degrades to plain containment:
//
//	length <= 2: case-insensitive prefix/containment against first name,
//	             last name, and email; prefix outranks mid-string containment.
//	length 3-4:  prefix matches (weight 3), trigram similarity above a
//	             lowered threshold (weight 2), containment in the combined
//	             search blob (weight 1).
//	length >= 5: full-text rank over the search vector using both a
//	             natural-language query and a strict all-terms query
//	             (weight 3), trigram similarity above the standard threshold
//	             (weight 2), containment fallback (weight 1).
//
// Every tier scopes by owner inside the query and breaks rank ties by last
// name then first name ascending.
const (
	tierShort  = "short"
	tierMedium = "medium"
	tierLong   = "long"

	similarityMedium = 0.15
	similarityLong   = 0.2

	shortQueryMax  = 2
	mediumQueryMax = 4
)

func searchTier(normalized string) string {
	switch n := utf8.RuneCountInString(normalized); {
	case n <= shortQueryMax:
		return tierShort
	case n <= mediumQueryMax:
		return tierMedium
	default:
		return tierLong
	}
}

func normalizeQuery(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// strictTerms sanitizes the query into bare alphanumeric tokens safe to join
// into a to_tsquery all-terms expression.
func strictTerms(normalized string) []string {
	var terms []string
	for _, field := range strings.Fields(normalized) {
		var b strings.Builder
		for _, r := range field {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				b.WriteRune(r)
			}
		}
		if b.Len() > 0 {
			terms = append(terms, b.String())
		}
	}
	return terms
}

const searchShortSQL = `
SELECT *
FROM (
    SELECT c.*,
           CASE WHEN lower(c.first_name) LIKE ? OR lower(c.last_name) LIKE ? OR lower(c.email) LIKE ?
                THEN 1.0 ELSE 0.5 END AS rank
    FROM customers c
    WHERE c.user_id = ?
      AND (lower(c.first_name) LIKE ? OR lower(c.last_name) LIKE ? OR lower(c.email) LIKE ?)
) ranked
ORDER BY rank DESC, last_name ASC, first_name ASC`

const searchMediumSQL = `
SELECT *
FROM (
    SELECT c.*,
           (CASE WHEN lower(c.first_name) LIKE ? OR lower(c.last_name) LIKE ? OR lower(c.email) LIKE ?
                 THEN 1.0 ELSE 0.0 END * 3
            + similarity(c.search_text, ?) * 2
            + CASE WHEN c.search_text LIKE ? THEN 1.0 ELSE 0.0 END) / 6 AS rank
    FROM customers c
    WHERE c.user_id = ?
      AND (lower(c.first_name) LIKE ? OR lower(c.last_name) LIKE ? OR lower(c.email) LIKE ?
           OR similarity(c.search_text, ?) > ?
           OR c.search_text LIKE ?)
) ranked
ORDER BY rank DESC, last_name ASC, first_name ASC`

const searchLongSQL = `
SELECT *
FROM (
    SELECT c.*,
           ((ts_rank(c.search_vector, plainto_tsquery('english', ?))
             + ts_rank(c.search_vector, to_tsquery('english', ?))) / 2 * 3
            + similarity(c.search_text, ?) * 2
            + CASE WHEN c.search_text LIKE ? THEN 1.0 ELSE 0.0 END) / 6 AS rank
    FROM customers c
    WHERE c.user_id = ?
      AND (c.search_vector @@ plainto_tsquery('english', ?)
           OR c.search_vector @@ to_tsquery('english', ?)
           OR similarity(c.search_text, ?) > ?
           OR c.search_text LIKE ?)
) ranked
ORDER BY rank DESC, last_name ASC, first_name ASC`

// buildSearchQuery returns the ranked, owner-scoped SQL and its arguments
// for the query's tier.
func buildSearchQuery(userID, query string) (string, []any) {
	q := normalizeQuery(query)
	prefix := q + "%"
	contains := "%" + q + "%"

	switch searchTier(q) {
	case tierShort:
		return searchShortSQL, []any{
			prefix, prefix, prefix,
			userID,
			contains, contains, contains,
		}
	case tierMedium:
		return mediumQuery(userID, q, prefix, contains, similarityMedium)
	default:
		terms := strictTerms(q)
		if len(terms) == 0 {
			// Nothing tokenizable for full-text search; fall back to the
			// blended tier with the long-query similarity threshold.
			return mediumQuery(userID, q, prefix, contains, similarityLong)
		}
		strict := strings.Join(terms, " & ")
		return searchLongSQL, []any{
			q, strict, q, contains,
			userID,
			q, strict, q, similarityLong, contains,
		}
	}
}

func mediumQuery(userID, q, prefix, contains string, threshold float64) (string, []any) {
	return searchMediumSQL, []any{
		prefix, prefix, prefix, q, contains,
		userID,
		prefix, prefix, prefix, q, threshold, contains,
	}
}
