package repository

import "strings"

// likeEscaper neutralizes LIKE metacharacters so the query matches as a
// literal substring. The escape character is declared with ESCAPE '!' in
// the query; '!' survives string literals unchanged on every supported
// driver, which a backslash does not.
var likeEscaper = strings.NewReplacer(
	"!", "!!",
	"%", "!%",
	"_", "!_",
)

// containsPattern builds the case-insensitive LIKE pattern for content
// containing query as a literal substring.
func containsPattern(query string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(query)) + "%"
}
