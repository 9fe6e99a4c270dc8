package grammar

import "sort"

// Arguments maps option (`--name`) and positional (`<name>`) keys of a Grammar to resolved values.
// Values are bool, string, []string, or nil for unset optional strings.
type Arguments map[string]interface{}

// Bool returns value of the boolean option by `key`, false if absent.
func (a Arguments) Bool(key string) bool {
	v, _ := a[key].(bool)
	return v
}

// String returns value of the string option or positional by `key`,
// the second return value reports whether it was set.
func (a Arguments) String(key string) (string, bool) {
	v, ok := a[key].(string)
	return v, ok
}

// Strings returns value of the list option or repeated positional by `key`.
func (a Arguments) Strings(key string) []string {
	v, _ := a[key].([]string)
	return v
}

// Has determines whether the value by `key` is present and non-empty.
func (a Arguments) Has(key string) bool {
	switch v := a[key].(type) {
	case bool:
		return v
	case string:
		return true
	case []string:
		return len(v) != 0
	}

	return false
}

// Keys returns all keys of the Arguments in sorted order.
func (a Arguments) Keys() []string {
	keys := make([]string, 0, len(a))
	for key := range a {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}
