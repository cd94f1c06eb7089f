package model

// RelationType is the cardinality of a relationship between two entities
type RelationType string

// Relationship types - supported cardinalities
const (
	RelationOneToOne   RelationType = "oneToOne"
	RelationOneToMany  RelationType = "oneToMany"
	RelationManyToOne  RelationType = "manyToOne"
	RelationManyToMany RelationType = "manyToMany"

	// RelationUnknown marks a type token outside the supported set.
	// Renderers fall back to the oneToMany notation for it.
	RelationUnknown RelationType = ""
)

// ParseRelationType maps a raw relationship type token to a RelationType.
// Matching is exact, the tokens are camelCase identifiers.
func ParseRelationType(token string) RelationType {
	switch RelationType(token) {
	case RelationOneToOne, RelationOneToMany, RelationManyToOne, RelationManyToMany:
		return RelationType(token)
	default:
		return RelationUnknown
	}
}

// Primary key conventions applied by the normalizer
const (
	PrimaryKeyName        = "id"
	PrimaryKeyType        = "number"
	PrimaryKeyDescription = "Unique identifier"
)
