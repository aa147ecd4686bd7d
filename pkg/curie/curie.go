// Package curie maps prefix names to namespaces and converts between compact
// URIs (prefix:local) and full IRIs.
package curie

import (
	"fmt"
	"sort"
	"strings"
)

// Curie is a compact IRI. An empty Prefix refers to the default namespace.
type Curie struct {
	Prefix string
	Local  string
}

func (c Curie) String() string {
	return c.Prefix + ":" + c.Local
}

type ExpansionErrorKind int

const (
	InvalidPrefix ExpansionErrorKind = iota
	MissingDefault
)

func (k ExpansionErrorKind) String() string {
	switch k {
	case InvalidPrefix:
		return "invalid prefix"
	case MissingDefault:
		return "missing default namespace"
	default:
		return "unknown"
	}
}

// ExpansionError reports a compact IRI whose prefix has no namespace.
type ExpansionError struct {
	Kind   ExpansionErrorKind
	Prefix string
}

func (e *ExpansionError) Error() string {
	if e.Kind == MissingDefault {
		return "no default namespace declared"
	}
	return fmt.Sprintf("prefix '%s' is not declared", e.Prefix)
}

// Mapping is a single prefix declaration.
type Mapping struct {
	Name      string
	Namespace string
}

// PrefixMapping holds an optional default namespace and any number of named
// prefixes. The zero value is an empty mapping.
type PrefixMapping struct {
	defaultNS  string
	hasDefault bool
	named      map[string]string
}

func NewPrefixMapping() *PrefixMapping {
	return &PrefixMapping{named: map[string]string{}}
}

// AddPrefix binds name to namespace. The empty name sets the default namespace.
func (m *PrefixMapping) AddPrefix(name, namespace string) error {
	if !IsPrefixName(name) {
		return fmt.Errorf("invalid prefix name '%s'", name)
	}
	if name == "" {
		m.SetDefault(namespace)
		return nil
	}
	if m.named == nil {
		m.named = map[string]string{}
	}
	m.named[name] = namespace
	return nil
}

func (m *PrefixMapping) SetDefault(namespace string) {
	m.defaultNS = namespace
	m.hasDefault = true
}

// Default returns the default namespace, if one was declared.
func (m *PrefixMapping) Default() (string, bool) {
	return m.defaultNS, m.hasDefault
}

// Namespace returns the namespace bound to name.
func (m *PrefixMapping) Namespace(name string) (string, bool) {
	if name == "" {
		return m.Default()
	}
	ns, ok := m.named[name]
	return ns, ok
}

// ExpandCurie returns the full IRI for c. The lookup is an exact match on
// the prefix name.
func (m *PrefixMapping) ExpandCurie(c Curie) (string, error) {
	if c.Prefix == "" {
		if !m.hasDefault {
			return "", &ExpansionError{Kind: MissingDefault}
		}
		return m.defaultNS + c.Local, nil
	}
	ns, ok := m.named[c.Prefix]
	if !ok {
		return "", &ExpansionError{Kind: InvalidPrefix, Prefix: c.Prefix}
	}
	return ns + c.Local, nil
}

// Shrink abbreviates iri using the longest matching namespace. It fails when
// no namespace matches or the remainder is not a valid local name.
func (m *PrefixMapping) Shrink(iri string) (Curie, bool) {
	best := Curie{}
	bestLen := -1
	for _, mapping := range m.Mappings() {
		ns := mapping.Namespace
		if !strings.HasPrefix(iri, ns) || len(ns) <= bestLen {
			continue
		}
		local := iri[len(ns):]
		if !IsLocalName(local) {
			continue
		}
		best = Curie{Prefix: mapping.Name, Local: local}
		bestLen = len(ns)
	}
	return best, bestLen >= 0
}

// Mappings lists the declarations, the default namespace first and then the
// named prefixes by name.
func (m *PrefixMapping) Mappings() []Mapping {
	mappings := make([]Mapping, 0, m.Len())
	if m.hasDefault {
		mappings = append(mappings, Mapping{Name: "", Namespace: m.defaultNS})
	}
	names := make([]string, 0, len(m.named))
	for name := range m.named {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		mappings = append(mappings, Mapping{Name: name, Namespace: m.named[name]})
	}
	return mappings
}

func (m *PrefixMapping) Len() int {
	n := len(m.named)
	if m.hasDefault {
		n++
	}
	return n
}

func (m *PrefixMapping) Clone() *PrefixMapping {
	clone := NewPrefixMapping()
	clone.defaultNS = m.defaultNS
	clone.hasDefault = m.hasDefault
	for name, ns := range m.named {
		clone.named[name] = ns
	}
	return clone
}
