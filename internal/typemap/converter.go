package typemap

import "strconv"

// Converter target types, keyed by JSON Schema type keyword. These are used when
// projecting an already generated JSON Schema, so the abstract token is no longer
// the input.

// TypeScriptAny is the universal type used when nothing more specific is known
const TypeScriptAny = "any"

var typeScriptTypes = map[string]string{
	JSONString:  "string",
	JSONNumber:  "number",
	JSONInteger: "number",
	JSONBoolean: "boolean",
	JSONObject:  "object",
}

var mongooseTypes = map[string]string{
	JSONString:  "String",
	JSONNumber:  "Number",
	JSONInteger: "Number",
	JSONBoolean: "Boolean",
	JSONArray:   "[String]",
	JSONObject:  "mongoose.Schema.Types.Mixed",
}

// MongooseFallback is used for JSON types without a mongoose entry
const MongooseFallback = "String"

// DefaultVarcharLength is the VARCHAR length when no maxLength is given
const DefaultVarcharLength = 255

// TypeScriptType maps a scalar JSON Schema type to TypeScript. Arrays are
// handled by the caller because they recurse on items.
func TypeScriptType(jsonType string) string {
	if t, ok := typeScriptTypes[jsonType]; ok {
		return t
	}
	return TypeScriptAny
}

// MongooseType maps a JSON Schema type to a mongoose SchemaType
func MongooseType(jsonType string) string {
	if t, ok := mongooseTypes[jsonType]; ok {
		return t
	}
	return MongooseFallback
}

// SQLType maps a JSON Schema type to a column type. maxLength sizes VARCHAR columns.
func SQLType(jsonType string, maxLength *int) string {
	switch jsonType {
	case JSONString:
		length := DefaultVarcharLength
		if maxLength != nil && *maxLength > 0 {
			length = *maxLength
		}
		return "VARCHAR(" + strconv.Itoa(length) + ")"
	case JSONInteger:
		return "INT"
	case JSONNumber:
		return "DECIMAL(10,2)"
	case JSONBoolean:
		return "BOOLEAN"
	default:
		return "TEXT"
	}
}
