package domain

// Token is a single placeholder name and the value it resolves to.
type Token struct {
	Name  string
	Value string
}

// TokenMap keeps tokens in insertion order. The zero value is an empty map.
type TokenMap struct {
	names  []string
	values map[string]string
}

func NewTokenMap(tokens ...Token) TokenMap {
	m := TokenMap{}
	for _, t := range tokens {
		m.Set(t.Name, t.Value)
	}

	return m
}

// Set overwrites an existing token in place or appends a new one.
func (m *TokenMap) Set(name, value string) {
	if m.values == nil {
		m.values = make(map[string]string)
	}

	if _, ok := m.values[name]; !ok {
		m.names = append(m.names, name)
	}
	m.values[name] = value
}

func (m TokenMap) Get(name string) (string, bool) {
	v, ok := m.values[name]
	return v, ok
}

// Value returns the token value or an empty string.
func (m TokenMap) Value(name string) string {
	return m.values[name]
}

func (m TokenMap) Names() []string {
	names := make([]string, len(m.names))
	copy(names, m.names)
	return names
}

func (m TokenMap) Tokens() []Token {
	tokens := make([]Token, 0, len(m.names))
	for _, name := range m.names {
		tokens = append(tokens, Token{Name: name, Value: m.values[name]})
	}

	return tokens
}

func (m TokenMap) Len() int {
	return len(m.names)
}

// Map returns an unordered copy.
func (m TokenMap) Map() map[string]string {
	out := make(map[string]string, len(m.values))
	for k, v := range m.values {
		out[k] = v
	}

	return out
}
