package model

import (
	"bytes"
	"encoding/json"
	"reflect"
	"sort"
)

// Model is the canonical entity/relationship structure consumed by every generator
type Model struct {
	Entities      []Entity       `json:"entities" yaml:"entities"`
	Relationships []Relationship `json:"relationships" yaml:"relationships"`
}

// Entity is a named record type. Name is singular and keys every generator output,
// TableName is the plural storage identifier used for URL paths and diagram labels.
type Entity struct {
	Name        string  `json:"name" yaml:"name"`
	TableName   string  `json:"tableName" yaml:"tableName"`
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`
	Fields      []Field `json:"fields" yaml:"fields"`
}

// Field is a typed attribute of an entity. Type is an abstract token such as
// "string" or "datetime"; see internal/typemap for the vocabulary.
type Field struct {
	Name        string       `json:"name" yaml:"name"`
	Type        string       `json:"type" yaml:"type"`
	Required    bool         `json:"required" yaml:"required"`
	Description string       `json:"description,omitempty" yaml:"description,omitempty"`
	Constraints *Constraints `json:"constraints,omitempty" yaml:"constraints,omitempty"`
}

// Relationship is a directed edge between two entities, referenced by name
type Relationship struct {
	From        string `json:"from" yaml:"from"`
	To          string `json:"to" yaml:"to"`
	Type        string `json:"type" yaml:"type"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Kind returns the parsed cardinality of the relationship
func (r Relationship) Kind() RelationType {
	return ParseRelationType(r.Type)
}

// Label is the text used on diagram edges: the description, or the raw type token
func (r Relationship) Label() string {
	if r.Description != "" {
		return r.Description
	}
	return r.Type
}

// Constraints holds the recognised validation and metadata flags of a field.
// Keys outside the recognised set are kept in Extra and survive a JSON round trip.
// Constraints decoded from JSON re-encode as their source object, explicit false
// and zero values included, for as long as the decoded fields are left unchanged.
type Constraints struct {
	Primary       bool           `json:"primary,omitempty"`
	Unique        bool           `json:"unique,omitempty"`
	AutoIncrement bool           `json:"autoIncrement,omitempty"`
	MaxLength     *int           `json:"maxLength,omitempty"`
	MinLength     *int           `json:"minLength,omitempty"`
	Minimum       *float64       `json:"minimum,omitempty"`
	Maximum       *float64       `json:"maximum,omitempty"`
	Default       any            `json:"default,omitempty"`
	Enum          []string       `json:"enum,omitempty"`
	Pattern       string         `json:"pattern,omitempty"`
	Items         map[string]any `json:"items,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`

	source json.RawMessage
}

type constraintsAlias Constraints

var knownConstraintKeys = map[string]bool{
	"primary": true, "unique": true, "autoIncrement": true,
	"maxLength": true, "minLength": true, "minimum": true, "maximum": true,
	"default": true, "enum": true, "pattern": true, "items": true,
}

// UnmarshalJSON decodes the recognised keys and stashes the rest in Extra
func (c *Constraints) UnmarshalJSON(data []byte) error {
	var compact bytes.Buffer
	if err := json.Compact(&compact, data); err != nil {
		return err
	}
	data = compact.Bytes()

	var alias constraintsAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for key, value := range raw {
		if knownConstraintKeys[key] {
			continue
		}
		if alias.Extra == nil {
			alias.Extra = make(map[string]json.RawMessage)
		}
		alias.Extra[key] = value
	}
	alias.source = data

	*c = Constraints(alias)
	return nil
}

// MarshalJSON re-emits the source object of decoded, unchanged constraints.
// Otherwise it encodes the recognised keys followed by Extra, keys sorted.
func (c Constraints) MarshalJSON() ([]byte, error) {
	if c.unchanged() {
		return c.source, nil
	}

	known, err := json.Marshal(constraintsAlias(c))
	if err != nil {
		return nil, err
	}
	if len(c.Extra) == 0 {
		return known, nil
	}

	merged := make(map[string]json.RawMessage, len(c.Extra))
	if err := json.Unmarshal(known, &merged); err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(c.Extra))
	for key := range c.Extra {
		if _, exists := merged[key]; !exists {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	for _, key := range keys {
		merged[key] = c.Extra[key]
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(merged); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// unchanged reports whether c still holds exactly what its source object decodes to
func (c Constraints) unchanged() bool {
	if c.source == nil {
		return false
	}
	var decoded Constraints
	if err := decoded.UnmarshalJSON(c.source); err != nil {
		return false
	}
	return reflect.DeepEqual(decoded, c)
}

// Clone returns a deep copy of the constraints
func (c *Constraints) Clone() *Constraints {
	if c == nil {
		return nil
	}
	out := *c
	if c.MaxLength != nil {
		v := *c.MaxLength
		out.MaxLength = &v
	}
	if c.MinLength != nil {
		v := *c.MinLength
		out.MinLength = &v
	}
	if c.Minimum != nil {
		v := *c.Minimum
		out.Minimum = &v
	}
	if c.Maximum != nil {
		v := *c.Maximum
		out.Maximum = &v
	}
	if c.Enum != nil {
		out.Enum = make([]string, len(c.Enum))
		copy(out.Enum, c.Enum)
	}
	if c.Items != nil {
		out.Items = make(map[string]any, len(c.Items))
		for k, v := range c.Items {
			out.Items[k] = v
		}
	}
	if c.Extra != nil {
		out.Extra = make(map[string]json.RawMessage, len(c.Extra))
		for k, v := range c.Extra {
			out.Extra[k] = append(json.RawMessage(nil), v...)
		}
	}
	if c.source != nil {
		out.source = append(json.RawMessage(nil), c.source...)
	}
	return &out
}

// IsPrimary reports whether the field is flagged as primary key
func (f Field) IsPrimary() bool {
	return f.Constraints != nil && f.Constraints.Primary
}

// IsUnique reports whether the field is flagged unique
func (f Field) IsUnique() bool {
	return f.Constraints != nil && f.Constraints.Unique
}

// IsAutoIncrement reports whether the field is flagged auto-increment
func (f Field) IsAutoIncrement() bool {
	return f.Constraints != nil && f.Constraints.AutoIncrement
}

// EntityByName returns the entity with the given name, or nil
func (m *Model) EntityByName(name string) *Entity {
	for i := range m.Entities {
		if m.Entities[i].Name == name {
			return &m.Entities[i]
		}
	}
	return nil
}

// ResolvedRelationship is a relationship whose both endpoints exist in the model
type ResolvedRelationship struct {
	Relationship
	FromEntity *Entity
	ToEntity   *Entity
}

// ResolvedRelationships returns the relationships whose endpoints both resolve,
// in declaration order. Unresolvable relationships are dropped silently.
func (m *Model) ResolvedRelationships() []ResolvedRelationship {
	resolved := make([]ResolvedRelationship, 0, len(m.Relationships))
	for _, rel := range m.Relationships {
		from := m.EntityByName(rel.From)
		to := m.EntityByName(rel.To)
		if from == nil || to == nil {
			continue
		}
		resolved = append(resolved, ResolvedRelationship{
			Relationship: rel,
			FromEntity:   from,
			ToEntity:     to,
		})
	}
	return resolved
}
