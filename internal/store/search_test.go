package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchTier(t *testing.T) {
	cases := []struct {
		query string
		tier  string
	}{
		{"j", tierShort},
		{"jo", tierShort},
		{"jon", tierMedium},
		{"john", tierMedium},
		{"johna", tierLong},
		{"johnathan", tierLong},
		{"日本", tierShort}, // rune count, not byte count
		{"日本語", tierMedium},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.tier, searchTier(tc.query), tc.query)
	}
}

func TestNormalizeQuery(t *testing.T) {
	assert.Equal(t, "jon doe", normalizeQuery("  Jon Doe \n"))
}

func TestStrictTerms(t *testing.T) {
	assert.Equal(t, []string{"jon", "doe"}, strictTerms("jon doe"))
	assert.Equal(t, []string{"oreilly"}, strictTerms("o'reilly"))
	assert.Equal(t, []string{"a1", "b2"}, strictTerms("a-1 b&2"))
	assert.Nil(t, strictTerms("&& !! |"))
}

func TestBuildSearchQueryShort(t *testing.T) {
	sql, args := buildSearchQuery("user-1", "Jo")

	assert.Equal(t, searchShortSQL, sql)
	require.Len(t, args, 7)
	assert.Equal(t, "jo%", args[0])
	assert.Equal(t, "user-1", args[3])
	assert.Equal(t, "%jo%", args[4])
	// No similarity scoring on short queries.
	assert.NotContains(t, sql, "similarity")
}

func TestBuildSearchQueryMedium(t *testing.T) {
	sql, args := buildSearchQuery("user-1", "john")

	assert.Equal(t, searchMediumSQL, sql)
	require.Len(t, args, 12)
	assert.Equal(t, "john%", args[0])
	assert.Equal(t, "john", args[3])
	assert.Equal(t, "user-1", args[5])
	assert.Equal(t, similarityMedium, args[10])
	assert.NotContains(t, sql, "ts_rank")
}

func TestBuildSearchQueryLong(t *testing.T) {
	sql, args := buildSearchQuery("user-1", "Johnathan Byrne")

	assert.Equal(t, searchLongSQL, sql)
	require.Len(t, args, 10)
	assert.Equal(t, "johnathan byrne", args[0])
	assert.Equal(t, "johnathan & byrne", args[1])
	assert.Equal(t, "user-1", args[4])
	assert.Equal(t, similarityLong, args[8])
	assert.Contains(t, sql, "ts_rank")
}

func TestBuildSearchQueryLongUntokenizable(t *testing.T) {
	// Five runes of punctuation select the long tier but yield no strict
	// terms, so the builder falls back to the blended query with the long
	// similarity threshold.
	sql, args := buildSearchQuery("user-1", "!!&&|")

	assert.Equal(t, searchMediumSQL, sql)
	require.Len(t, args, 12)
	assert.Equal(t, similarityLong, args[10])
}

func TestSearchSQLOrdering(t *testing.T) {
	for _, sql := range []string{searchShortSQL, searchMediumSQL, searchLongSQL} {
		assert.True(t, strings.HasSuffix(strings.TrimSpace(sql),
			"ORDER BY rank DESC, last_name ASC, first_name ASC"))
		assert.Contains(t, sql, "user_id = ?")
	}
}
