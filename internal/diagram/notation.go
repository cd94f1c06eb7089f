package diagram

import "github.com/modelgen/modelgen/pkg/model"

// cardinalitySymbols is shared by the ER and PlantUML renderings
var cardinalitySymbols = map[model.RelationType]string{
	model.RelationOneToOne:   "||--||",
	model.RelationOneToMany:  "||--o{",
	model.RelationManyToOne:  "o{--||",
	model.RelationManyToMany: "o{--o{",
}

var relationVerbs = map[model.RelationType]string{
	model.RelationOneToOne:   "has one",
	model.RelationOneToMany:  "has many",
	model.RelationManyToOne:  "belongs to",
	model.RelationManyToMany: "has many",
	model.RelationUnknown:    "relates to",
}

// multiplicities are the from/to ends of a class diagram association
var multiplicities = map[model.RelationType][2]string{
	model.RelationOneToOne:   {"1", "1"},
	model.RelationOneToMany:  {"1", "*"},
	model.RelationManyToOne:  {"*", "1"},
	model.RelationManyToMany: {"*", "*"},
}

// CardinalitySymbol returns the crow's foot symbol of a relationship type.
// Unrecognised types use the oneToMany symbol.
func CardinalitySymbol(kind model.RelationType) string {
	if symbol, ok := cardinalitySymbols[kind]; ok {
		return symbol
	}
	return cardinalitySymbols[model.RelationOneToMany]
}

// RelationVerb returns the phrase used for a relationship in the text description
func RelationVerb(kind model.RelationType) string {
	if verb, ok := relationVerbs[kind]; ok {
		return verb
	}
	return relationVerbs[model.RelationUnknown]
}

// Multiplicity returns the from and to multiplicities of a relationship type.
// Unrecognised types use the oneToMany pair.
func Multiplicity(kind model.RelationType) (string, string) {
	m, ok := multiplicities[kind]
	if !ok {
		m = multiplicities[model.RelationOneToMany]
	}
	return m[0], m[1]
}
