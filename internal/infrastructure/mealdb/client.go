// Package mealdb is a thin client for the TheMealDB-style upstream recipe
// catalog. Calls are bounded by a single timeout and never retried; any
// transport or decode failure surfaces as ErrUpstream so handlers can map
// it to a gateway error.
package mealdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

var (
	// ErrUpstream means the catalog was unreachable or answered garbage.
	ErrUpstream = errors.New("upstream catalog error")
	// ErrNoMeals means the catalog answered but had no matching meals.
	ErrNoMeals = errors.New("no meals found")
)

// Category is one entry of the upstream category list.
type Category struct {
	ID          string `json:"idCategory"`
	Name        string `json:"strCategory"`
	Thumbnail   string `json:"strCategoryThumb"`
	Description string `json:"strCategoryDescription"`
}

// MealSummary is the shape returned by the category filter endpoint.
type MealSummary struct {
	ID        string `json:"idMeal"`
	Name      string `json:"strMeal"`
	Thumbnail string `json:"strMealThumb"`
}

// Meal is a full upstream meal record. The catalog's field set is large and
// versioned upstream, so it is passed through opaquely.
type Meal map[string]any

type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a catalog client. timeout bounds every call; after it the
// call fails rather than hangs.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	return nil
}

// Categories fetches the full category list.
func (c *Client) Categories(ctx context.Context) ([]Category, error) {
	var body struct {
		Categories []Category `json:"categories"`
	}
	if err := c.get(ctx, "/categories.php", nil, &body); err != nil {
		return nil, err
	}
	if body.Categories == nil {
		return []Category{}, nil
	}
	return body.Categories, nil
}

// FilterByCategory lists meal summaries for a category. A null meals array
// upstream means nothing matched.
func (c *Client) FilterByCategory(ctx context.Context, category string) ([]MealSummary, error) {
	var body struct {
		Meals []MealSummary `json:"meals"`
	}
	q := url.Values{"c": {category}}
	if err := c.get(ctx, "/filter.php", q, &body); err != nil {
		return nil, err
	}
	if len(body.Meals) == 0 {
		return nil, ErrNoMeals
	}
	return body.Meals, nil
}

// LookupByID fetches a single meal record, normalized from the upstream
// one-element list.
func (c *Client) LookupByID(ctx context.Context, id string) (Meal, error) {
	var body struct {
		Meals []Meal `json:"meals"`
	}
	q := url.Values{"i": {id}}
	if err := c.get(ctx, "/lookup.php", q, &body); err != nil {
		return nil, err
	}
	if len(body.Meals) == 0 {
		return nil, ErrNoMeals
	}
	return body.Meals[0], nil
}
