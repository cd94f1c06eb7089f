package v0

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/getkin/kin-openapi/openapi3"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Leading keys of the serialized document, its components and each component schema.
// Keys not listed follow in sorted order.
var (
	documentKeys  = []string{"openapi", "info", "servers", "tags", "paths", "components"}
	componentKeys = []string{"schemas", "responses"}
	schemaKeys    = []string{"type", "description", "properties", "required", "example"}
)

// OpenAPIDocument is an OpenAPI document that serializes its paths, component
// schemas and schema properties in the order given by Order. The embedded
// document keeps them in maps, which encode sorted.
type OpenAPIDocument struct {
	*openapi3.T
	Order DocumentOrder `json:"-"`
}

// DocumentOrder records the model order of the keyed parts of a document
type DocumentOrder struct {
	// Paths in the order they were added
	Paths []string
	// Schemas by component name, in entity order
	Schemas []string
	// Properties lists the property names of each component schema in field order
	Properties map[string][]string
}

// MarshalJSON encodes the document with its keyed parts in model order
func (d OpenAPIDocument) MarshalJSON() ([]byte, error) {
	if d.T == nil {
		return []byte("null"), nil
	}

	data, err := json.Marshal(d.T)
	if err != nil {
		return nil, err
	}

	return reorder(data, documentKeys, func(key string, value json.RawMessage) (json.RawMessage, error) {
		switch key {
		case "paths":
			return reorder(value, d.Order.Paths, nil)
		case "components":
			return reorder(value, componentKeys, d.components)
		default:
			return value, nil
		}
	})
}

// UnmarshalJSON decodes the document and recovers Order from the key order of data
func (d *OpenAPIDocument) UnmarshalJSON(data []byte) error {
	doc := &openapi3.T{}
	if err := doc.UnmarshalJSON(data); err != nil {
		return err
	}

	var raw struct {
		Paths      json.RawMessage `json:"paths"`
		Components struct {
			Schemas json.RawMessage `json:"schemas"`
		} `json:"components"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	order := DocumentOrder{Properties: map[string][]string{}}
	order.Paths = objectKeys(raw.Paths)
	schemas := orderedmap.New[string, struct {
		Properties json.RawMessage `json:"properties"`
	}]()
	if len(raw.Components.Schemas) > 0 {
		if err := json.Unmarshal(raw.Components.Schemas, schemas); err != nil {
			return err
		}
	}
	for pair := schemas.Oldest(); pair != nil; pair = pair.Next() {
		order.Schemas = append(order.Schemas, pair.Key)
		order.Properties[pair.Key] = objectKeys(pair.Value.Properties)
	}

	d.T, d.Order = doc, order
	return nil
}

// objectKeys returns the keys of a JSON object in document order, or nil if data is not an object
func objectKeys(data json.RawMessage) []string {
	if len(data) == 0 {
		return nil
	}
	fields := orderedmap.New[string, json.RawMessage]()
	if json.Unmarshal(data, fields) != nil {
		return nil
	}
	keys := make([]string, 0, fields.Len())
	for pair := fields.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

func (d OpenAPIDocument) components(key string, value json.RawMessage) (json.RawMessage, error) {
	if key != "schemas" {
		return value, nil
	}
	return reorder(value, d.Order.Schemas, func(name string, schema json.RawMessage) (json.RawMessage, error) {
		return reorder(schema, schemaKeys, func(key string, value json.RawMessage) (json.RawMessage, error) {
			if key != "properties" {
				return value, nil
			}
			return reorder(value, d.Order.Properties[name], nil)
		})
	})
}

// reorder re-encodes the JSON object data with the keys of first leading, in
// that order, and the remaining keys sorted. edit, when set, may replace the
// value of each key. Anything other than an object is returned unchanged.
func reorder(data json.RawMessage, first []string, edit func(key string, value json.RawMessage) (json.RawMessage, error)) (json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if json.Unmarshal(data, &fields) != nil || fields == nil {
		return data, nil
	}

	out := orderedmap.New[string, json.RawMessage](len(fields))
	for _, key := range first {
		if value, ok := fields[key]; ok {
			out.Set(key, value)
		}
	}
	rest := make([]string, 0, len(fields)-out.Len())
	for key := range fields {
		if _, placed := out.Get(key); !placed {
			rest = append(rest, key)
		}
	}
	sort.Strings(rest)
	for _, key := range rest {
		out.Set(key, fields[key])
	}

	if edit != nil {
		for pair := out.Oldest(); pair != nil; pair = pair.Next() {
			value, err := edit(pair.Key, pair.Value)
			if err != nil {
				return nil, fmt.Errorf("failed to encode %q: %w", pair.Key, err)
			}
			pair.Value = value
		}
	}

	return json.Marshal(out)
}
