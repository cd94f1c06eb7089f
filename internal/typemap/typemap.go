// Package typemap holds the lookup tables that translate abstract field type
// tokens into the type vocabulary of each output format.
//
// The tables are plain data. Each one has an entry for every Type, including
// Unknown, so a lookup can never miss.
package typemap

import "strings"

// Type is an abstract field type
type Type int

const (
	// Unknown is any token outside the vocabulary; it renders like a string.
	Unknown Type = iota
	String
	Text
	Email
	URL
	Number
	Integer
	Float
	Decimal
	Double
	Boolean
	Date
	DateTime
	Timestamp
	Array
	JSON
)

var tokens = map[string]Type{
	"string":    String,
	"text":      Text,
	"email":     Email,
	"url":       URL,
	"number":    Number,
	"integer":   Integer,
	"int":       Integer,
	"float":     Float,
	"decimal":   Decimal,
	"double":    Double,
	"boolean":   Boolean,
	"bool":      Boolean,
	"date":      Date,
	"datetime":  DateTime,
	"timestamp": Timestamp,
	"array":     Array,
	"json":      JSON,
	"object":    JSON,
}

var names = map[Type]string{
	Unknown:   "unknown",
	String:    "string",
	Text:      "text",
	Email:     "email",
	URL:       "url",
	Number:    "number",
	Integer:   "integer",
	Float:     "float",
	Decimal:   "decimal",
	Double:    "double",
	Boolean:   "boolean",
	Date:      "date",
	DateTime:  "datetime",
	Timestamp: "timestamp",
	Array:     "array",
	JSON:      "json",
}

// Parse maps a raw type token to a Type. Matching is case-insensitive and
// ignores surrounding whitespace; unrecognised tokens yield Unknown.
func Parse(token string) Type {
	if t, ok := tokens[strings.ToLower(strings.TrimSpace(token))]; ok {
		return t
	}
	return Unknown
}

// All returns every Type including Unknown, in declaration order
func All() []Type {
	return []Type{
		Unknown, String, Text, Email, URL, Number, Integer, Float, Decimal, Double,
		Boolean, Date, DateTime, Timestamp, Array, JSON,
	}
}

func (t Type) String() string {
	if name, ok := names[t]; ok {
		return name
	}
	return names[Unknown]
}

// IsStringLike reports whether string constraints (length, pattern) apply.
// Unknown counts as string-like because it falls back to a string.
func (t Type) IsStringLike() bool {
	switch t {
	case String, Text, Email, URL, Unknown:
		return true
	}
	return false
}

// IsNumeric reports whether numeric constraints (minimum, maximum) apply
func (t Type) IsNumeric() bool {
	switch t {
	case Number, Integer, Float, Decimal, Double:
		return true
	}
	return false
}

// IsTemporal reports whether the type carries a date or timestamp
func (t Type) IsTemporal() bool {
	switch t {
	case Date, DateTime, Timestamp:
		return true
	}
	return false
}
