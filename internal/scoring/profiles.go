package scoring

// syntaxProfile maps tree-sitter node kinds to the structural categories the
// complexity analyzer counts. Kinds absent from a language (exception blocks
// in Go and Rust) are simply empty sets there.
type syntaxProfile struct {
	functions  map[string]bool
	classes    map[string]bool
	imports    map[string]bool
	branches   map[string]bool
	loops      map[string]bool
	exceptions map[string]bool

	// lineComment is the prefix that marks a full-line comment, used when
	// counting significant lines.
	lineComment string
}

func kindSet(kinds ...string) map[string]bool {
	m := make(map[string]bool, len(kinds))
	for _, k := range kinds {
		m[k] = true
	}
	return m
}

var profiles = map[Language]syntaxProfile{
	LangPython: {
		functions: kindSet("function_definition"),
		classes:   kindSet("class_definition"),
		imports:   kindSet("import_statement", "import_from_statement"),
		// elif clauses are counted as independent branches to match the
		// nested-If counting of an AST walk.
		branches:    kindSet("if_statement", "elif_clause"),
		loops:       kindSet("for_statement", "while_statement"),
		exceptions:  kindSet("try_statement"),
		lineComment: "#",
	},
	LangGo: {
		functions:   kindSet("function_declaration", "method_declaration"),
		classes:     kindSet("type_declaration"),
		imports:     kindSet("import_spec"),
		branches:    kindSet("if_statement", "expression_switch_statement", "type_switch_statement", "select_statement"),
		loops:       kindSet("for_statement"),
		exceptions:  kindSet(),
		lineComment: "//",
	},
	LangTypeScript: {
		functions:   kindSet("function_declaration", "method_definition"),
		classes:     kindSet("class_declaration"),
		imports:     kindSet("import_statement"),
		branches:    kindSet("if_statement", "switch_statement"),
		loops:       kindSet("for_statement", "for_in_statement", "while_statement", "do_statement"),
		exceptions:  kindSet("try_statement"),
		lineComment: "//",
	},
	LangRust: {
		functions:   kindSet("function_item"),
		classes:     kindSet("struct_item", "enum_item", "trait_item"),
		imports:     kindSet("use_declaration"),
		branches:    kindSet("if_expression", "match_expression"),
		loops:       kindSet("for_expression", "while_expression", "loop_expression"),
		exceptions:  kindSet(),
		lineComment: "//",
	},
}
