// Package mustache provides a parser for mustache-style logic-less templates.
//
// The parser turns template source into a flat or nested sequence of tags
// without rendering anything. It recognizes the classic {{ }} syntax:
//
//	Hello, {{name}}!
//
// # Basic Usage
//
// Parse a template string and inspect the resulting tags:
//
//	tmpl, err := mustache.ParseString("Hello, {{name}}!")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, tag := range tmpl.Tags() {
//	    fmt.Printf("%T\n", tag)
//	}
//
// # Tag Syntax
//
// Variables interpolate a key, HTML-escaped by default:
//
//	{{name}}        escaped variable
//	{{&name}}       unescaped variable
//	{{{name}}}      unescaped variable (triple mustache)
//
// Sections repeat or gate their content on the key's value:
//
//	{{#items}}...{{/items}}    section
//	{{^items}}...{{/items}}    inverted section
//
// Comments disappear from the parsed output:
//
//	{{! ignore me }}
//
// Partials splice another template file in place of the tag:
//
//	{{>header}}
//
// Set-delimiter tags change the delimiters for the rest of the template:
//
//	{{=<% %>=}}  <%name%>  <%={{ }}=%>
//
// # Engine
//
// An Engine carries configuration shared by many parses: custom default
// delimiters, a partial loader, a base directory, and a logger:
//
//	engine := mustache.MustNew(
//	    mustache.WithBaseDir("templates"),
//	    mustache.WithMaxPartialDepth(8),
//	)
//	tmpl, err := engine.ParseFile("page.mustache")
//
// Package-level Parse, ParseString, ParseFile, and MustParse use a default
// engine and cover the common case.
//
// # Errors
//
// Parsing fails with exactly two error families: MalformedTemplate for
// syntax errors (unterminated tags, unclosed sections, bad delimiter
// directives) and FileNotFound for partials that cannot be loaded. Use
// IsMalformedTemplate and IsFileNotFound to distinguish them.
package mustache
