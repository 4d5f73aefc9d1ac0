package markdown

import "strings"

// LanguageRegistry maps code fence info strings to canonical language
// names. Unknown tags pass through unchanged; the field is free-form.
type LanguageRegistry struct {
	aliases map[string]string
}

// NewLanguageRegistry builds an empty registry.
func NewLanguageRegistry() *LanguageRegistry {
	return &LanguageRegistry{aliases: make(map[string]string)}
}

// Register maps one or more aliases to a canonical name.
func (r *LanguageRegistry) Register(canonical string, aliases ...string) {
	r.aliases[strings.ToLower(canonical)] = canonical
	for _, a := range aliases {
		r.aliases[strings.ToLower(a)] = canonical
	}
}

// Normalize reduces a fence info string to its language tag: the first
// whitespace-separated field, canonicalized when the registry knows it.
func (r *LanguageRegistry) Normalize(info string) string {
	tag := strings.TrimSpace(info)
	if tag == "" {
		return ""
	}
	if idx := strings.IndexAny(tag, " \t"); idx != -1 {
		tag = tag[:idx]
	}
	if r == nil {
		return tag
	}
	if canonical, ok := r.aliases[strings.ToLower(tag)]; ok {
		return canonical
	}
	return tag
}

var defaultLanguages = buildDefaultLanguages()

// DefaultLanguages returns the registry used when Parse is given none.
func DefaultLanguages() *LanguageRegistry {
	return defaultLanguages
}

func buildDefaultLanguages() *LanguageRegistry {
	r := NewLanguageRegistry()
	r.Register("go", "golang")
	r.Register("javascript", "js")
	r.Register("typescript", "ts")
	r.Register("python", "py", "python3")
	r.Register("rust", "rs")
	r.Register("shell", "sh", "bash", "zsh", "console")
	r.Register("markdown", "md")
	r.Register("c")
	r.Register("cpp", "c++", "cxx")
	r.Register("java")
	r.Register("ruby", "rb")
	r.Register("html")
	r.Register("css")
	r.Register("json")
	r.Register("yaml", "yml")
	r.Register("toml")
	r.Register("sql")
	r.Register("text", "txt", "plain")
	return r
}
