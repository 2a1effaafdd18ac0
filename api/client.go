package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Client talks to a backend serving the /foods REST contract.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// foodPlateBody is the request body for POST and PUT. The id is omitted on
// create.
type foodPlateBody struct {
	ID          int64  `json:"id,omitempty"`
	Image       string `json:"image"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Available   bool   `json:"available"`
}

func (c *Client) ListFoods(ctx context.Context) ([]FoodPlate, error) {
	var foods []FoodPlate
	err := c.do(ctx, http.MethodGet, "/foods", nil, &foods)
	if err != nil {
		return nil, err
	}

	return foods, nil
}

// CreateFood posts a new plate. The plate is always created available.
func (c *Client) CreateFood(ctx context.Context, in FoodPlateInput) (FoodPlate, error) {
	body := foodPlateBody{
		Image:       in.Image,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Available:   true,
	}

	var food FoodPlate
	err := c.do(ctx, http.MethodPost, "/foods", body, &food)
	return food, err
}

// UpdateFood replaces the plate with the given id. The plate is always
// marked available.
func (c *Client) UpdateFood(ctx context.Context, id int64, in FoodPlateInput) (FoodPlate, error) {
	body := foodPlateBody{
		ID:          id,
		Image:       in.Image,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Available:   true,
	}

	var food FoodPlate
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/foods/%d", id), body, &food)
	return food, err
}

func (c *Client) DeleteFood(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/foods/%d", id), nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, in interface{}, out interface{}) error {
	var body io.Reader
	if in != nil {
		jsonInput, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("unable to encode request: %w", err)
		}
		body = bytes.NewReader(jsonInput)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	r, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer r.Body.Close()

	if r.StatusCode < 200 || r.StatusCode >= 300 {
		return decodeError(r)
	}

	if out == nil || r.StatusCode == http.StatusNoContent {
		return nil
	}

	err = json.NewDecoder(r.Body).Decode(out)
	if err != nil {
		return fmt.Errorf("unable to decode %s %s response: %w", method, path, err)
	}

	return nil
}

func decodeError(r *http.Response) error {
	apiErr := &Error{StatusCode: r.StatusCode}

	b, _ := io.ReadAll(r.Body)
	var payload struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(b, &payload) == nil && payload.Error != "" {
		apiErr.Message = payload.Error
	} else {
		apiErr.Message = strings.TrimSpace(string(b))
	}

	return apiErr
}
