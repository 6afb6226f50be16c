package constants

// SearchResultLimit caps the number of matches returned per entity type by
// the search endpoint.
const SearchResultLimit = 20
