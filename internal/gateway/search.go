package gateway

// LikeFilters turns a per-field search record into the gateway's filter
// dialect: every non-empty field becomes a case-insensitive substring
// predicate. Empty values are dropped so a blank search form fetches the
// full collection.
func LikeFilters(search map[string]string) map[string]string {
	if len(search) == 0 {
		return nil
	}
	filters := make(map[string]string, len(search))
	for field, value := range search {
		if value == "" {
			continue
		}
		filters[field+"_like"] = value
	}
	if len(filters) == 0 {
		return nil
	}
	return filters
}
