package geocode

import (
	"context"
	"fmt"
)

// ReverseGeocoder resolves coordinates to a locality name.
type ReverseGeocoder interface {
	CityName(ctx context.Context, lat, lng float64) (string, error)
}

// Client embeds the common HTTPClient and talks to the public
// reverse-geocode endpoint.
type Client struct {
	*HTTPClient
}

// NewClient creates a new instance of Client
func NewClient(httpClient *HTTPClient) *Client {
	return &Client{
		HTTPClient: httpClient,
	}
}

type reverseGeocodeResponse struct {
	City     string `json:"city"`
	Locality string `json:"locality"`
}

// CityName looks up the city for a coordinate pair. Any transport error,
// non-2xx status, or a response naming neither city nor locality is
// reported as an error; callers treat all of these the same way and fall
// back to the default origin.
func (c *Client) CityName(ctx context.Context, lat, lng float64) (string, error) {
	endpoint := fmt.Sprintf("/reverse-geocode-client?latitude=%f&longitude=%f&localityLanguage=en", lat, lng)

	var response reverseGeocodeResponse
	if err := c.Request(ctx, "GET", endpoint, nil, &response); err != nil {
		return "", err
	}

	if response.City != "" {
		return response.City, nil
	}
	if response.Locality != "" {
		return response.Locality, nil
	}
	return "", fmt.Errorf("reverse geocode response named no city or locality")
}
