package typemap

// SchemaType is a JSON Schema / OpenAPI type keyword with an optional format
type SchemaType struct {
	Type   string
	Format string
}

// JSON Schema type keywords
const (
	JSONString  = "string"
	JSONNumber  = "number"
	JSONInteger = "integer"
	JSONBoolean = "boolean"
	JSONArray   = "array"
	JSONObject  = "object"
)

var jsonSchemaTypes = map[Type]SchemaType{
	String:    {Type: JSONString},
	Text:      {Type: JSONString},
	Email:     {Type: JSONString, Format: "email"},
	URL:       {Type: JSONString, Format: "uri"},
	Number:    {Type: JSONNumber},
	Integer:   {Type: JSONInteger},
	Float:     {Type: JSONNumber},
	Decimal:   {Type: JSONNumber},
	Double:    {Type: JSONNumber},
	Boolean:   {Type: JSONBoolean},
	Date:      {Type: JSONString, Format: "date"},
	DateTime:  {Type: JSONString, Format: "date-time"},
	Timestamp: {Type: JSONString, Format: "date-time"},
	Array:     {Type: JSONArray},
	JSON:      {Type: JSONObject},
	Unknown:   {Type: JSONString},
}

// ER diagram attribute types
var erTypes = map[Type]string{
	String:    "string",
	Text:      "text",
	Email:     "string",
	URL:       "string",
	Number:    "int",
	Integer:   "int",
	Float:     "float",
	Decimal:   "decimal",
	Double:    "double",
	Boolean:   "boolean",
	Date:      "date",
	DateTime:  "datetime",
	Timestamp: "timestamp",
	Array:     "array",
	JSON:      "json",
	Unknown:   "string",
}

// UML entity member types
var umlTypes = map[Type]string{
	String:    "VARCHAR",
	Text:      "TEXT",
	Email:     "VARCHAR",
	URL:       "VARCHAR",
	Number:    "INTEGER",
	Integer:   "INTEGER",
	Float:     "FLOAT",
	Decimal:   "DECIMAL",
	Double:    "DOUBLE",
	Boolean:   "BOOLEAN",
	Date:      "DATE",
	DateTime:  "DATETIME",
	Timestamp: "TIMESTAMP",
	Array:     "ARRAY",
	JSON:      "JSON",
	Unknown:   "VARCHAR",
}

// ToJSONSchema returns the JSON Schema type and format for a type token
func ToJSONSchema(token string) SchemaType {
	return jsonSchemaTypes[Parse(token)]
}

// ToERDiagram returns the ER diagram attribute type for a type token
func ToERDiagram(token string) string {
	return erTypes[Parse(token)]
}

// ToUMLDiagram returns the UML entity member type for a type token
func ToUMLDiagram(token string) string {
	return umlTypes[Parse(token)]
}
