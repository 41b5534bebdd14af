package mustache

// defaultEngine backs the package-level parse functions.
var defaultEngine = MustNew()

// Parse parses template source with the default configuration:
// {{ }} delimiters, filesystem partial loading, no base directory.
func Parse(src []byte) (*Template, error) {
	return defaultEngine.Parse(src)
}

// ParseString parses a template from a string with the default
// configuration.
func ParseString(src string) (*Template, error) {
	return defaultEngine.ParseString(src)
}

// ParseFile loads and parses the template file at path. Partials
// resolve relative to the file's directory.
func ParseFile(path string) (*Template, error) {
	return defaultEngine.ParseFile(path)
}

// MustParse parses template source and panics on error. Intended for
// templates known to be valid.
func MustParse(src []byte) *Template {
	tmpl, err := Parse(src)
	if err != nil {
		panic(err)
	}
	return tmpl
}

// MustParseString parses a template string and panics on error.
func MustParseString(src string) *Template {
	tmpl, err := ParseString(src)
	if err != nil {
		panic(err)
	}
	return tmpl
}
