package driver

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const resultsJSON = "application/sparql-results+json"

// SPARQLDriver executes queries over the SPARQL 1.1 Protocol: form-encoded
// POST to the endpoint, JSON results back. No authentication, no retry.
type SPARQLDriver struct {
	Endpoint string
	Client   *http.Client
}

func NewSPARQLDriver(endpoint string, timeout time.Duration) *SPARQLDriver {
	log.Printf("Using SPARQL endpoint %s", endpoint)
	return &SPARQLDriver{
		Endpoint: endpoint,
		Client:   &http.Client{Timeout: timeout},
	}
}

// sparqlResponse covers both SELECT and ASK result documents.
type sparqlResponse struct {
	Results struct {
		Bindings []map[string]struct {
			Type  string `json:"type"`
			Value string `json:"value"`
		} `json:"bindings"`
	} `json:"results"`
	Boolean *bool `json:"boolean"`
}

func (d *SPARQLDriver) query(ctx context.Context, query string) (*sparqlResponse, error) {
	form := url.Values{"query": {query}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.Endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", resultsJSON)

	resp, err := d.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to query endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("endpoint returned %s: %s", resp.Status, strings.TrimSpace(string(body)))
	}

	var parsed sparqlResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode results: %w", err)
	}
	return &parsed, nil
}

func (d *SPARQLDriver) Select(ctx context.Context, query string) ([]Row, error) {
	parsed, err := d.query(ctx, query)
	if err != nil {
		return nil, err
	}

	rows := make([]Row, 0, len(parsed.Results.Bindings))
	for _, binding := range parsed.Results.Bindings {
		row := Row{}
		for name, term := range binding {
			row[name] = term.Value
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (d *SPARQLDriver) Ask(ctx context.Context, query string) (bool, error) {
	parsed, err := d.query(ctx, query)
	if err != nil {
		return false, err
	}
	if parsed.Boolean == nil {
		return false, fmt.Errorf("endpoint returned no boolean for ASK query")
	}
	return *parsed.Boolean, nil
}
