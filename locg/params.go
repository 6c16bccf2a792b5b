package locg

import (
	"strconv"
	"strings"
)

// RequestParameters is an ordered set of query parameters. The remote
// endpoint treats bracketed repeated keys as array parameters and is
// sensitive to their order, so parameters serialize in insertion order with
// sequence values emitted as one `key[]=value` pair per element. net/url's
// Values can guarantee neither the ordering nor the unescaped bracket keys.
type RequestParameters struct {
	pairs []parameter
}

type parameter struct {
	key    string
	values []string
	list   bool
}

// Set appends a scalar string parameter.
func (p *RequestParameters) Set(key, value string) {
	p.pairs = append(p.pairs, parameter{key: key, values: []string{value}})
}

// SetInt appends a scalar numeric parameter.
func (p *RequestParameters) SetInt(key string, value int) {
	p.Set(key, strconv.Itoa(value))
}

// SetList appends a sequence parameter, rendered as repeated `key[]=value`
// pairs in element order.
func (p *RequestParameters) SetList(key string, values ...string) {
	p.pairs = append(p.pairs, parameter{key: key, values: values, list: true})
}

// Encode renders the parameters as a query string, including the leading '?'.
// Values used here are plain ASCII (dates, numeric codes, enum strings), so
// no escaping is applied.
func (p *RequestParameters) Encode() string {
	var b strings.Builder
	b.WriteByte('?')
	first := true
	for _, pair := range p.pairs {
		key := pair.key
		if pair.list {
			key += "[]"
		}
		for _, v := range pair.values {
			if !first {
				b.WriteByte('&')
			}
			b.WriteString(key)
			b.WriteByte('=')
			b.WriteString(v)
			first = false
		}
	}
	return b.String()
}
