package tmdb

import (
	"net/url"
	"strconv"
	"strings"
)

// Params is an insertion-ordered list of query parameters. Values are written
// verbatim; callers escape free text (see EscapeQuery) before adding it.
type Params struct {
	entries []param
}

type param struct {
	name  string
	value string
}

// NewParams returns an empty parameter list.
func NewParams() *Params {
	return &Params{}
}

// Add appends name=value. Duplicates are kept.
func (p *Params) Add(name, value string) *Params {
	p.entries = append(p.entries, param{name: name, value: value})
	return p
}

// AddInt appends name=value when value is positive.
func (p *Params) AddInt(name string, value int) *Params {
	if value > 0 {
		p.Add(name, strconv.Itoa(value))
	}
	return p
}

// AddString appends name=value when value is not empty.
func (p *Params) AddString(name, value string) *Params {
	if value != "" {
		p.Add(name, value)
	}
	return p
}

// Len returns the number of parameters.
func (p *Params) Len() int {
	if p == nil {
		return 0
	}
	return len(p.entries)
}

// Get returns the first value recorded for name.
func (p *Params) Get(name string) (string, bool) {
	if p == nil {
		return "", false
	}
	for _, e := range p.entries {
		if e.name == name {
			return e.value, true
		}
	}
	return "", false
}

// BuildURL composes {baseURL}/{template}?{apiKeyName}={apiKey}&name=value...
// Placeholders {0}, {1}, ... in template are replaced by pathArgs in order.
// Parameters follow the API key in insertion order.
func BuildURL(baseURL, template string, pathArgs []string, apiKeyName, apiKey string, params *Params) string {
	var b strings.Builder

	b.WriteString(baseURL)
	b.WriteByte('/')
	b.WriteString(substitute(template, pathArgs))
	b.WriteByte('?')
	b.WriteString(apiKeyName)
	b.WriteByte('=')
	b.WriteString(apiKey)

	if params != nil {
		for _, e := range params.entries {
			b.WriteByte('&')
			b.WriteString(e.name)
			b.WriteByte('=')
			b.WriteString(e.value)
		}
	}

	return b.String()
}

func substitute(template string, args []string) string {
	for i, arg := range args {
		template = strings.ReplaceAll(template, "{"+strconv.Itoa(i)+"}", arg)
	}
	return template
}

// Flag is the constraint shared by the append-to-response bitsets.
type Flag interface {
	~uint
}

// FlagsToParameter joins the names of the flags set in value, walking order
// so the output is stable. It returns "" when no known flag is set; callers
// then omit the parameter entirely.
func FlagsToParameter[F Flag](value F, order []F, name func(F) string, sep string) string {
	var b strings.Builder
	for _, flag := range order {
		if value&flag == 0 {
			continue
		}
		s := name(flag)
		if s == "" {
			continue
		}
		b.WriteString(s)
		b.WriteString(sep)
	}
	return strings.TrimSuffix(b.String(), sep)
}

// EscapeQuery drops control characters from a free-text query and
// query-escapes the rest, so titles like "AC/DC: Live" reach the API intact.
func EscapeQuery(query string) string {
	cleaned := strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, query)
	return url.QueryEscape(cleaned)
}

// joinInts joins ids with sep.
func joinInts(ids []int, sep string) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, sep)
}
