package bittrex

import (
	"net/url"
	"strings"
)

// Param single query parameter.
type Param struct {
	Key   string
	Value string
}

// Params ordered query parameters. The order is the order in which they are signed.
type Params []Param

// Add returns p with key=value appended.
func (p Params) Add(key, value string) Params {
	return append(p, Param{Key: key, Value: value})
}

// Has reports whether key is present.
func (p Params) Has(key string) bool {
	for _, param := range p {
		if param.Key == key {
			return true
		}
	}

	return false
}

// Encode escapes every key and value independently and joins them in order.
func (p Params) Encode() string {
	if len(p) == 0 {
		return ""
	}

	var b strings.Builder
	for i, param := range p {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(param.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(param.Value))
	}

	return b.String()
}
