// Package loader reads canonical models from local files or HTTP URLs, in JSON
// or YAML, either bare or wrapped in a {"model": ...} envelope.
package loader

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/modelgen/modelgen/pkg/model"
)

var (
	ErrEmptyInput       = errors.New("input is empty")
	ErrUnexpectedStatus = errors.New("unexpected HTTP status")
)

// maxBodySize caps how much of a remote document is read
const maxBodySize = 10 << 20

// Loader fetches and decodes model documents
type Loader struct {
	client *http.Client
}

// New creates a loader. A nil client uses http.DefaultClient.
func New(client *http.Client) *Loader {
	if client == nil {
		client = http.DefaultClient
	}
	return &Loader{client: client}
}

// LoadFromPath reads a model from a local path or an http(s) URL
func (l *Loader) LoadFromPath(ctx context.Context, path string) (*model.Model, error) {
	data, err := l.read(ctx, path)
	if err != nil {
		return nil, err
	}

	m, err := Decode(data, isYAMLPath(path))
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return m, nil
}

// ReadJSON returns the document at a local path or http(s) URL as JSON bytes.
// YAML documents are converted.
func (l *Loader) ReadJSON(ctx context.Context, path string) ([]byte, error) {
	data, err := l.read(ctx, path)
	if err != nil {
		return nil, err
	}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, ErrEmptyInput
	}
	if isYAMLPath(path) {
		return yamlToJSON(trimmed)
	}
	return trimmed, nil
}

func (l *Loader) read(ctx context.Context, path string) ([]byte, error) {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return l.fetch(ctx, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return data, nil
}

func (l *Loader) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json, application/yaml")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s returned %d", ErrUnexpectedStatus, url, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return data, nil
}

func isYAMLPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// Decode parses a model document. JSON is assumed when the document starts with
// '{' and asYAML is false; everything else goes through the YAML decoder.
func Decode(data []byte, asYAML bool) (*model.Model, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, ErrEmptyInput
	}

	if asYAML || trimmed[0] != '{' {
		converted, err := yamlToJSON(trimmed)
		if err != nil {
			return nil, err
		}
		trimmed = converted
	}

	var envelope struct {
		Model *model.Model `json:"model"`
	}
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, fmt.Errorf("invalid model document: %w", err)
	}
	if envelope.Model != nil {
		return envelope.Model, nil
	}

	var m model.Model
	if err := json.Unmarshal(trimmed, &m); err != nil {
		return nil, fmt.Errorf("invalid model document: %w", err)
	}
	return &m, nil
}

// yamlToJSON re-encodes a YAML document as JSON so that model types need only
// one set of decoding rules
func yamlToJSON(data []byte) ([]byte, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	if doc == nil {
		return nil, ErrEmptyInput
	}
	out, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("YAML document cannot be represented as JSON: %w", err)
	}
	return out, nil
}
