// Package normalizer turns a parsed entity/relationship structure into the
// canonical model every generator consumes.
package normalizer

import (
	"strings"

	"github.com/jinzhu/inflection"

	"github.com/modelgen/modelgen/pkg/model"
)

// Normalize returns a new canonical model derived from in. The input is never mutated.
//
// Every entity without a field named "id" gets a synthesised primary key prepended
// to its field list. A missing relationship list becomes an empty one, and an empty
// table name is filled with the plural of the entity name. Nothing is validated here:
// unknown field types are left for each generator's fallback.
func Normalize(in *model.Model) *model.Model {
	out := &model.Model{
		Entities:      []model.Entity{},
		Relationships: []model.Relationship{},
	}
	if in == nil {
		return out
	}

	for _, entity := range in.Entities {
		out.Entities = append(out.Entities, normalizeEntity(entity))
	}
	out.Relationships = append(out.Relationships, in.Relationships...)

	return out
}

func normalizeEntity(entity model.Entity) model.Entity {
	normalized := model.Entity{
		Name:        entity.Name,
		TableName:   entity.TableName,
		Description: entity.Description,
	}
	if strings.TrimSpace(normalized.TableName) == "" && normalized.Name != "" {
		normalized.TableName = inflection.Plural(normalized.Name)
	}

	fields := make([]model.Field, 0, len(entity.Fields)+1)
	if !HasPrimaryKey(entity) {
		fields = append(fields, PrimaryKeyField())
	}
	for _, field := range entity.Fields {
		field.Constraints = field.Constraints.Clone()
		fields = append(fields, field)
	}
	normalized.Fields = fields

	return normalized
}

// HasPrimaryKey reports whether the entity already declares a field named "id"
func HasPrimaryKey(entity model.Entity) bool {
	for _, field := range entity.Fields {
		if field.Name == model.PrimaryKeyName {
			return true
		}
	}
	return false
}

// PrimaryKeyField returns the field synthesised for entities lacking an id
func PrimaryKeyField() model.Field {
	return model.Field{
		Name:        model.PrimaryKeyName,
		Type:        model.PrimaryKeyType,
		Required:    true,
		Description: model.PrimaryKeyDescription,
		Constraints: &model.Constraints{
			Primary:       true,
			AutoIncrement: true,
		},
	}
}
