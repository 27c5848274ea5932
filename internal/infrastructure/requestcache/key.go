package requestcache

import "encoding/json"

// Key builds a deterministic cache key from an HTTP method, a resource
// path and normalized request parameters. encoding/json serializes map
// keys in sorted order, so semantically identical parameter sets produce
// identical keys regardless of insertion order. The resource path leads
// the key so invalidation by resource token works as a prefix match
// (clearing "properties/123" also clears "properties/123/amenities|GET|…").
func Key(method, resourcePath string, params map[string]any) string {
	key := resourcePath + "|" + method
	if len(params) == 0 {
		return key
	}
	b, err := json.Marshal(params)
	if err != nil {
		// Unserializable params degrade to the bare method+path key;
		// still deterministic, just coarser.
		return key
	}
	return key + "|" + string(b)
}
