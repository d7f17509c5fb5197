package upstream

import "encoding/json"

// Collection decodes a listing response body into a slice regardless of
// whether the upstream served it as a plain JSON array or as a paginated
// envelope with a "results" field (count/next/previous are ignored). Any
// other shape — null, an object without results, a string — yields an empty
// slice. The result is never nil and no error is ever raised; listing pages
// render whatever could be recovered.
func Collection[T any](body []byte) []T {
	var items []T
	if err := json.Unmarshal(body, &items); err == nil && items != nil {
		return items
	}

	var page struct {
		Results []T `json:"results"`
	}
	if err := json.Unmarshal(body, &page); err == nil && page.Results != nil {
		return page.Results
	}

	return []T{}
}
