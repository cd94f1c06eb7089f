package diagram

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/modelgen/modelgen/pkg/model"
)

// ConstraintDescription lists the constraints present on a field in readable form
func ConstraintDescription(field model.Field) []string {
	c := field.Constraints
	if c == nil {
		return nil
	}

	var parts []string
	if c.Primary {
		parts = append(parts, "Primary Key")
	}
	if c.Unique {
		parts = append(parts, "Unique")
	}
	if c.AutoIncrement {
		parts = append(parts, "Auto Increment")
	}
	if c.MaxLength != nil {
		parts = append(parts, fmt.Sprintf("Max Length: %d", *c.MaxLength))
	}
	if c.MinLength != nil {
		parts = append(parts, fmt.Sprintf("Min Length: %d", *c.MinLength))
	}
	if c.Minimum != nil {
		parts = append(parts, "Min Value: "+formatNumber(*c.Minimum))
	}
	if c.Maximum != nil {
		parts = append(parts, "Max Value: "+formatNumber(*c.Maximum))
	}
	if c.Default != nil {
		parts = append(parts, "Default: "+formatValue(c.Default))
	}
	if len(c.Enum) > 0 {
		parts = append(parts, "Options: "+strings.Join(c.Enum, ", "))
	}
	return parts
}

// Text renders a plain-text description of the model
func Text(m *model.Model, generatedAt string) string {
	var sb strings.Builder
	sb.WriteString("Database Schema Description\n")
	sb.WriteString("===========================\n\n")

	sb.WriteString("Entities:\n\n")
	for i, entity := range m.Entities {
		sb.WriteString(fmt.Sprintf("%d. %s (table: %s)\n", i+1, entity.Name, entity.TableName))
		if entity.Description != "" {
			sb.WriteString(fmt.Sprintf("   Description: %s\n", entity.Description))
		}
		sb.WriteString("   Fields:\n")
		for _, field := range entity.Fields {
			presence := "Optional"
			if field.Required {
				presence = "Required"
			}
			sb.WriteString(fmt.Sprintf("   - %s: %s (%s)\n", field.Name, field.Type, presence))
			if parts := ConstraintDescription(field); len(parts) > 0 {
				sb.WriteString(fmt.Sprintf("     %s\n", strings.Join(parts, ", ")))
			}
		}
		sb.WriteString("\n")
	}

	relationships := m.ResolvedRelationships()
	if len(relationships) > 0 {
		sb.WriteString("Relationships:\n\n")
		for i, rel := range relationships {
			sb.WriteString(fmt.Sprintf("%d. %s %s %s\n", i+1, rel.From, RelationVerb(rel.Kind()), rel.To))
			if rel.Description != "" {
				sb.WriteString(fmt.Sprintf("   %s\n", rel.Description))
			}
		}
		sb.WriteString("\n")
	}

	sb.WriteString("Summary:\n")
	sb.WriteString(fmt.Sprintf("- Total Entities: %d\n", len(m.Entities)))
	sb.WriteString(fmt.Sprintf("- Total Relationships: %d\n", len(relationships)))
	sb.WriteString(fmt.Sprintf("- Generated At: %s\n", generatedAt))

	return sb.String()
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatValue(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return formatNumber(val)
	case bool:
		return strconv.FormatBool(val)
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(data)
}
