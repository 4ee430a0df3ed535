package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/dom/superheroes-api/internal/domain"
)

// APIClient handles HTTP communication with the backend
type APIClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewAPIClient creates a new API client
func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{
		baseURL: baseURL + "/api",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type apiError struct {
	Error string `json:"error"`
}

// ListHeroes fetches the full catalog
func (c *APIClient) ListHeroes() ([]*domain.Hero, error) {
	var heroes []*domain.Hero
	if err := c.getJSON("/superheroes", &heroes); err != nil {
		return nil, fmt.Errorf("list heroes failed: %w", err)
	}
	return heroes, nil
}

// GetHero fetches a single hero
func (c *APIClient) GetHero(id domain.HeroID) (*domain.Hero, error) {
	var hero domain.Hero
	if err := c.getJSON("/superheroes/"+url.PathEscape(id.String()), &hero); err != nil {
		return nil, fmt.Errorf("get hero %s failed: %w", id, err)
	}
	return &hero, nil
}

// Compare asks the backend to rank two heroes
func (c *APIClient) Compare(idA, idB domain.HeroID) (*domain.ComparisonResult, error) {
	query := url.Values{}
	query.Set("id1", idA.String())
	query.Set("id2", idB.String())

	var result domain.ComparisonResult
	if err := c.getJSON("/superheroes/compare?"+query.Encode(), &result); err != nil {
		return nil, fmt.Errorf("compare %s vs %s failed: %w", idA, idB, err)
	}
	return &result, nil
}

func (c *APIClient) getJSON(path string, out any) error {
	resp, err := c.get(path)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		var apiErr apiError
		if json.Unmarshal(bodyBytes, &apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("status %d: %s", resp.StatusCode, apiErr.Error)
		}
		return fmt.Errorf("status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *APIClient) get(path string) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	return c.httpClient.Do(req)
}
