package openapi

import (
	"time"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/modelgen/modelgen/internal/typemap"
	"github.com/modelgen/modelgen/pkg/model"
)

// Example is a synthesised entity instance keyed by field name in field order
type Example = *orderedmap.OrderedMap[string, any]

// ExampleObject synthesises one representative value per field, in field order
func ExampleObject(entity model.Entity, now time.Time) Example {
	example := orderedmap.New[string, any](len(entity.Fields))
	for _, field := range entity.Fields {
		example.Set(field.Name, ExampleValue(field, now))
	}
	return example
}

// ExampleValue picks a value of the right JSON type for field. An enum
// constraint wins with its first option, then a default constraint, then a
// value chosen by type.
func ExampleValue(field model.Field, now time.Time) any {
	if c := field.Constraints; c != nil {
		if len(c.Enum) > 0 {
			return c.Enum[0]
		}
		if c.Default != nil {
			return c.Default
		}
	}

	isID := field.Name == model.PrimaryKeyName

	switch typemap.Parse(field.Type) {
	case typemap.String, typemap.Text:
		if field.Name == "name" {
			return "John Doe"
		}
		return "Sample " + field.Name
	case typemap.Email:
		return "user@example.com"
	case typemap.URL:
		return "https://example.com"
	case typemap.Number, typemap.Integer:
		if isID {
			return 1
		}
		return 100
	case typemap.Float, typemap.Decimal, typemap.Double:
		if isID {
			return 1
		}
		return 99.99
	case typemap.Boolean:
		return true
	case typemap.Date:
		return model.FormatDate(now)
	case typemap.DateTime, typemap.Timestamp:
		return model.FormatTimestamp(now)
	case typemap.Array:
		return []any{}
	case typemap.JSON:
		return map[string]any{}
	default:
		return "sample_" + field.Name
	}
}

// payload is the example object without its primary key, as sent on create and update
func payload(example Example) Example {
	out := orderedmap.New[string, any](example.Len())
	for pair := example.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Key == model.PrimaryKeyName {
			continue
		}
		out.Set(pair.Key, pair.Value)
	}
	return out
}
