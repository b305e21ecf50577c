package model

import "time"

// FunctionContext is the heuristically-recovered enclosing function of a
// Match, recovered by scanning backward from the match line. A Match whose
// enclosing function could not be found has a nil Function.
type FunctionContext struct {
	Name        string
	DeclLine    int
	Signature   string
	DistanceLines int
}

// Match is a single piece of evidence that a pattern fired against a file.
// Matches are created once by the Pattern Matcher and shared by reference
// between GateResult and GateScore; nothing mutates a Match after creation.
type Match struct {
	AbsolutePath string
	RelativePath string
	FileName     string
	Extension    string
	SizeBytes    int64
	ModifiedAt   time.Time

	Line           int
	ColumnStart    int
	ColumnEnd      int
	MatchedText    string
	LineText       string
	ContextLines   []string
	ContextStart   int
	ContextEnd     int

	Pattern      string
	PatternType  string
	Category     string
	Language     Language
	Gate         GateKind

	Severity Severity
	Priority int

	Function *FunctionContext

	LineLength        int
	LeadingWhitespace int
	IsComment         bool
	IsStringLiteral   bool

	SuggestedFix      string
	DocumentationLink string
}
