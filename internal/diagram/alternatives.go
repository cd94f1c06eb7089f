package diagram

import (
	"fmt"
	"strings"

	"github.com/modelgen/modelgen/internal/typemap"
	"github.com/modelgen/modelgen/pkg/model"
)

// MindmapRoot labels the root node of the mindmap rendering
const MindmapRoot = "Database Schema"

// Flowchart renders the model as a Mermaid top-down graph, one box per entity
func Flowchart(m *model.Model) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, entity := range m.Entities {
		lines := make([]string, 0, len(entity.Fields)+1)
		lines = append(lines, "<b>"+entity.Name+"</b>")
		for _, field := range entity.Fields {
			lines = append(lines, fmt.Sprintf("%s: %s", field.Name, field.Type))
		}
		sb.WriteString(fmt.Sprintf("    %s[\"%s\"]\n", entity.Name, strings.Join(lines, "<br/>")))
	}

	for _, rel := range m.ResolvedRelationships() {
		sb.WriteString(fmt.Sprintf("    %s -->|%s| %s\n", rel.From, labelEscaper.Replace(rel.Label()), rel.To))
	}

	return sb.String()
}

// ClassDiagram renders the model as a Mermaid class diagram
func ClassDiagram(m *model.Model) string {
	var sb strings.Builder
	sb.WriteString("classDiagram\n")

	for _, entity := range m.Entities {
		sb.WriteString(fmt.Sprintf("    class %s {\n", entity.Name))
		for _, field := range entity.Fields {
			sb.WriteString(fmt.Sprintf("        +%s %s\n", typemap.ToERDiagram(field.Type), field.Name))
		}
		sb.WriteString("    }\n")
	}

	for _, rel := range m.ResolvedRelationships() {
		from, to := Multiplicity(rel.Kind())
		sb.WriteString(fmt.Sprintf("    %s %s --> %s %s : %s\n", rel.From, quoteLabel(from), quoteLabel(to), rel.To, labelEscaper.Replace(rel.Label())))
	}

	return sb.String()
}

// Mindmap renders the model as a Mermaid mindmap of entities and their fields
func Mindmap(m *model.Model) string {
	var sb strings.Builder
	sb.WriteString("mindmap\n")
	sb.WriteString(fmt.Sprintf("  root((%s))\n", MindmapRoot))

	for _, entity := range m.Entities {
		sb.WriteString(fmt.Sprintf("    %s\n", entity.Name))
		for _, field := range entity.Fields {
			sb.WriteString(fmt.Sprintf("      %s\n", field.Name))
		}
	}

	return sb.String()
}
