package openapi

import "time"

// Version is the OpenAPI version every generated document declares
const Version = "3.0.3"

// Defaults for the document boilerplate
const (
	DefaultTitle             = "Generated API"
	DefaultVersion           = "1.0.0"
	DefaultDescription       = "API generated from a natural language data description"
	DefaultServerURL         = "http://localhost:3000/api"
	DefaultServerDescription = "Development server"
)

// Options controls the info and servers boilerplate of generated documents.
// Zero fields take the package defaults.
type Options struct {
	Title             string
	Version           string
	Description       string
	ServerURL         string
	ServerDescription string

	// Now is used for example timestamps and summary.generatedAt
	Now func() time.Time
}

func (o Options) withDefaults() Options {
	if o.Title == "" {
		o.Title = DefaultTitle
	}
	if o.Version == "" {
		o.Version = DefaultVersion
	}
	if o.Description == "" {
		o.Description = DefaultDescription
	}
	if o.ServerURL == "" {
		o.ServerURL = DefaultServerURL
	}
	if o.ServerDescription == "" {
		o.ServerDescription = DefaultServerDescription
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}
