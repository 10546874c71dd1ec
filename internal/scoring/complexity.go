package scoring

import (
	"fmt"
	"strings"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_go "github.com/tree-sitter/tree-sitter-go/bindings/go"
	tree_sitter_python "github.com/tree-sitter/tree-sitter-python/bindings/go"
	tree_sitter_rust "github.com/tree-sitter/tree-sitter-rust/bindings/go"
	tree_sitter_typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"
)

// ComplexityLevel is the categorical rating of a code sample.
type ComplexityLevel string

const (
	ComplexityLow      ComplexityLevel = "Low"
	ComplexityMedium   ComplexityLevel = "Medium"
	ComplexityHigh     ComplexityLevel = "High"
	ComplexityVeryHigh ComplexityLevel = "Very High"
)

// FunctionSpan describes one function definition found in a code sample.
type FunctionSpan struct {
	Name      string `json:"name"`
	StartLine int    `json:"startLine"`
	EndLine   int    `json:"endLine"`
	Lines     int    `json:"lines"`
}

// ComplexityReport holds the structural metrics derived from one code sample.
// It is immutable once computed.
//
// Cyclomatic is a McCabe-style approximation: 1 + branches + loops +
// exception blocks. It deliberately avoids full control-flow-graph analysis.
type ComplexityReport struct {
	Language        Language        `json:"language"`
	Functions       int             `json:"functions"`
	Classes         int             `json:"classes"`
	Imports         int             `json:"imports"`
	Branches        int             `json:"branches"`
	Loops           int             `json:"loops"`
	ExceptionBlocks int             `json:"exceptionBlocks"`
	Lines           int             `json:"lines"` // non-blank, non-comment lines
	Cyclomatic      int             `json:"cyclomatic"`
	Level           ComplexityLevel `json:"level"`
	QualityScore    int             `json:"qualityScore"` // 0-100, floors at 0
	Recommendation  string          `json:"recommendation"`
	FunctionSpans   []FunctionSpan  `json:"functionSpans,omitempty"`
}

// Analyzer computes complexity reports by parsing source with tree-sitter.
// A new tree-sitter parser is created per call, so individual calls are
// independent and the Analyzer is safe for concurrent use.
type Analyzer struct {
	languages map[Language]*tree_sitter.Language
}

// NewAnalyzer creates an Analyzer with Go, TypeScript, Python, and Rust
// grammars registered.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		languages: map[Language]*tree_sitter.Language{
			LangGo:         tree_sitter.NewLanguage(tree_sitter_go.Language()),
			LangTypeScript: tree_sitter.NewLanguage(tree_sitter_typescript.LanguageTypescript()),
			LangPython:     tree_sitter.NewLanguage(tree_sitter_python.Language()),
			LangRust:       tree_sitter.NewLanguage(tree_sitter_rust.Language()),
		},
	}
}

// AnalyzeComplexity parses source and derives its ComplexityReport.
// Malformed source returns a *ParseError carrying the location of the first
// syntax error; the caller should present that distinctly from a valid but
// low-quality report.
func (a *Analyzer) AnalyzeComplexity(source []byte, lang Language) (*ComplexityReport, error) {
	tsLang, ok := a.languages[lang]
	if !ok {
		return nil, fmt.Errorf("scoring: unsupported language: %s", lang)
	}
	profile, ok := profiles[lang]
	if !ok {
		return nil, fmt.Errorf("scoring: no syntax profile for language: %s", lang)
	}

	parser := tree_sitter.NewParser()
	defer parser.Close()

	if err := parser.SetLanguage(tsLang); err != nil {
		return nil, fmt.Errorf("scoring: set language %s: %w", lang, err)
	}

	tree := parser.Parse(source, nil)
	if tree == nil {
		return nil, fmt.Errorf("scoring: tree-sitter returned nil tree for %s source", lang)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		row, col := firstErrorPosition(root)
		return nil, &ParseError{Language: lang, Row: row, Column: col}
	}

	var counts structCounts
	cursor := root.Walk()
	countNodes(cursor, source, profile, &counts)
	cursor.Close()

	lines := countSignificantLines(source, profile.lineComment)
	cyclomatic := 1 + counts.branches + counts.loops + counts.exceptions

	level, recommendation := classifyComplexity(cyclomatic, lines)
	quality := 100 - cyclomatic*3 - lines/5
	if quality < 0 {
		quality = 0
	}

	return &ComplexityReport{
		Language:        lang,
		Functions:       counts.functions,
		Classes:         counts.classes,
		Imports:         counts.imports,
		Branches:        counts.branches,
		Loops:           counts.loops,
		ExceptionBlocks: counts.exceptions,
		Lines:           lines,
		Cyclomatic:      cyclomatic,
		Level:           level,
		QualityScore:    quality,
		Recommendation:  recommendation,
		FunctionSpans:   counts.spans,
	}, nil
}

type structCounts struct {
	functions  int
	classes    int
	imports    int
	branches   int
	loops      int
	exceptions int
	spans      []FunctionSpan
}

// countNodes walks the syntax tree with a cursor, tallying nodes whose kind
// appears in the profile's category sets.
func countNodes(cursor *tree_sitter.TreeCursor, source []byte, profile syntaxProfile, counts *structCounts) {
	node := cursor.Node()
	kind := node.Kind()

	switch {
	case profile.functions[kind]:
		counts.functions++
		if span := functionSpan(node, source); span != nil {
			counts.spans = append(counts.spans, *span)
		}
	case profile.classes[kind]:
		counts.classes++
	case profile.imports[kind]:
		counts.imports++
	case profile.branches[kind]:
		counts.branches++
	case profile.loops[kind]:
		counts.loops++
	case profile.exceptions[kind]:
		counts.exceptions++
	}

	if cursor.GotoFirstChild() {
		countNodes(cursor, source, profile, counts)
		for cursor.GotoNextSibling() {
			countNodes(cursor, source, profile, counts)
		}
		cursor.GotoParent()
	}
}

// functionSpan builds a FunctionSpan from a function definition node, or nil
// if the node carries no name field (anonymous functions).
func functionSpan(node *tree_sitter.Node, source []byte) *FunctionSpan {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return nil
	}
	start := int(node.StartPosition().Row) + 1
	end := int(node.EndPosition().Row) + 1
	return &FunctionSpan{
		Name:      nameNode.Utf8Text(source),
		StartLine: start,
		EndLine:   end,
		Lines:     end - start,
	}
}

// firstErrorPosition finds the 1-based row and column of the first ERROR or
// missing node in the tree.
func firstErrorPosition(root *tree_sitter.Node) (row, col int) {
	cursor := root.Walk()
	defer cursor.Close()

	var find func() *tree_sitter.Node
	find = func() *tree_sitter.Node {
		node := cursor.Node()
		if node.IsError() || node.IsMissing() {
			return node
		}
		if cursor.GotoFirstChild() {
			if found := find(); found != nil {
				return found
			}
			for cursor.GotoNextSibling() {
				if found := find(); found != nil {
					return found
				}
			}
			cursor.GotoParent()
		}
		return nil
	}

	if node := find(); node != nil {
		pos := node.StartPosition()
		return int(pos.Row) + 1, int(pos.Column) + 1
	}
	// The tree reported an error but no ERROR node was reachable; point at
	// the start of the file.
	return 1, 1
}

// countSignificantLines counts lines that are neither blank nor full-line
// comments.
func countSignificantLines(source []byte, lineComment string) int {
	count := 0
	for _, line := range strings.Split(string(source), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, lineComment) {
			continue
		}
		count++
	}
	return count
}

// classifyComplexity maps cyclomatic complexity and line count to a level
// and recommendation. Thresholds: >20 or >200 lines is Very High, >10 or
// >100 is High, >5 or >50 is Medium, anything else Low.
func classifyComplexity(cyclomatic, lines int) (ComplexityLevel, string) {
	switch {
	case cyclomatic > 20 || lines > 200:
		return ComplexityVeryHigh, "Consider refactoring into smaller functions/modules"
	case cyclomatic > 10 || lines > 100:
		return ComplexityHigh, "Code is complex but manageable. Consider adding more comments and documentation"
	case cyclomatic > 5 || lines > 50:
		return ComplexityMedium, "Code complexity is acceptable. Ensure proper testing coverage"
	default:
		return ComplexityLow, "Code is simple and maintainable"
	}
}
