package openapi

import (
	"bytes"
	"encoding/json"
	"strings"
	"text/template"

	apiv0 "github.com/modelgen/modelgen/pkg/api/v0"
	"github.com/modelgen/modelgen/pkg/model"
)

var javascriptTemplate = template.Must(template.New("javascript").Parse(`// List all {{.Table}}
const listResponse = await fetch('{{.BaseURL}}/{{.Table}}');
const {{.Var}}List = await listResponse.json();

// Create a new {{.Entity}}
const createResponse = await fetch('{{.BaseURL}}/{{.Table}}', {
  method: 'POST',
  headers: { 'Content-Type': 'application/json' },
  body: JSON.stringify({{.Payload}}),
});
const created{{.Type}} = await createResponse.json();

// Get {{.Entity}} by ID
const getResponse = await fetch('{{.BaseURL}}/{{.Table}}/1');
const {{.Var}} = await getResponse.json();

// Update {{.Entity}}
const updateResponse = await fetch('{{.BaseURL}}/{{.Table}}/1', {
  method: 'PUT',
  headers: { 'Content-Type': 'application/json' },
  body: JSON.stringify({{.Payload}}),
});
const updated{{.Type}} = await updateResponse.json();

// Delete {{.Entity}}
await fetch('{{.BaseURL}}/{{.Table}}/1', { method: 'DELETE' });
`))

var pythonTemplate = template.Must(template.New("python").Parse(`import requests

BASE_URL = '{{.BaseURL}}'

# List all {{.Table}}
response = requests.get(f'{BASE_URL}/{{.Table}}')
items = response.json()

# Create a new {{.Entity}}
payload = r"""{{.Payload}}"""
response = requests.post(
    f'{BASE_URL}/{{.Table}}',
    data=payload,
    headers={'Content-Type': 'application/json'},
)
created = response.json()
`))

var curlTemplate = template.Must(template.New("curl").Parse(`# List all {{.Table}}
curl -X GET '{{.BaseURL}}/{{.Table}}'

# Create a new {{.Entity}}
curl -X POST '{{.BaseURL}}/{{.Table}}' \
  -H 'Content-Type: application/json' \
  -d '{{.ShellPayload}}'
`))

type snippetData struct {
	BaseURL      string
	Entity       string
	Table        string
	Type         string
	Var          string
	Payload      string
	ShellPayload string
}

// CodeExamples renders the client snippets of one entity. Every snippet embeds
// the same indented payload: the example object without its id.
func CodeExamples(entity model.Entity, example Example, baseURL string) (apiv0.EntityCodeExamples, error) {
	body, err := json.MarshalIndent(payload(example), "", "  ")
	if err != nil {
		return apiv0.EntityCodeExamples{}, err
	}

	typeName := model.PascalCase(entity.Name)
	data := snippetData{
		BaseURL:      strings.TrimRight(baseURL, "/"),
		Entity:       entity.Name,
		Table:        entity.TableName,
		Type:         typeName,
		Var:          model.LowerFirst(typeName),
		Payload:      string(body),
		ShellPayload: strings.ReplaceAll(string(body), "'", `'\''`),
	}

	var examples apiv0.EntityCodeExamples
	for _, target := range []struct {
		tmpl *template.Template
		out  *string
	}{
		{javascriptTemplate, &examples.JavaScript},
		{pythonTemplate, &examples.Python},
		{curlTemplate, &examples.Curl},
	} {
		var buf bytes.Buffer
		if err := target.tmpl.Execute(&buf, data); err != nil {
			return apiv0.EntityCodeExamples{}, err
		}
		*target.out = buf.String()
	}

	return examples, nil
}
