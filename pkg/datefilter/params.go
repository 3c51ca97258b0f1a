package datefilter

import (
	"net/url"

	"github.com/spf13/cast"
)

// Values reads filter parameters from a query string.
type Values url.Values

func (v Values) Has(key string) bool {
	_, ok := v[key]
	return ok
}

func (v Values) Get(key string) string {
	return url.Values(v).Get(key)
}

// Map reads filter parameters from a decoded JSON object. Numbers and other
// scalars are stringified, so {"year": 2024} and {"year": "2024"} behave alike.
type Map map[string]interface{}

func (m Map) Has(key string) bool {
	v, ok := m[key]
	return ok && v != nil
}

func (m Map) Get(key string) string {
	v, ok := m[key]
	if !ok || v == nil {
		return ""
	}
	return cast.ToString(v)
}
