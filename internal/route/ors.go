package route

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// ORSPlanner computes routes against an OpenRouteService-compatible
// directions API. Any failure (transport error, non-success status, empty
// result set) surfaces as ErrRoutingUnavailable; there are no retries.
type ORSPlanner struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewORSPlanner(baseURL, apiKey string) *ORSPlanner {
	return &ORSPlanner{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func orsProfile(m Method) string {
	switch m {
	case MethodFoot:
		return "foot-walking"
	case MethodBike:
		return "cycling-regular"
	default:
		return "driving-car"
	}
}

type orsDirectionsRequest struct {
	Coordinates [][]float64 `json:"coordinates"`
	Preference  string      `json:"preference,omitempty"`
}

type orsDirectionsResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"`
		} `json:"geometry"`
		Properties struct {
			Summary struct {
				Distance float64 `json:"distance"`
				Duration float64 `json:"duration"`
			} `json:"summary"`
		} `json:"properties"`
	} `json:"features"`
}

func (p *ORSPlanner) Calculate(ctx context.Context, origin, destination Coordinates, method Method, hint string) (Route, error) {
	body, err := json.Marshal(orsDirectionsRequest{
		Coordinates: [][]float64{{origin.Lng, origin.Lat}, {destination.Lng, destination.Lat}},
		Preference:  hint,
	})
	if err != nil {
		return Route{}, fmt.Errorf("%w: %v", ErrRoutingUnavailable, err)
	}

	url := fmt.Sprintf("%s/v2/directions/%s/geojson", p.baseURL, orsProfile(method))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return Route{}, fmt.Errorf("%w: %v", ErrRoutingUnavailable, err)
	}
	req.Header.Set("Authorization", p.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return Route{}, fmt.Errorf("%w: %v", ErrRoutingUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return Route{}, fmt.Errorf("%w: status %d: %s", ErrRoutingUnavailable, resp.StatusCode, b)
	}

	var parsed orsDirectionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return Route{}, fmt.Errorf("%w: %v", ErrRoutingUnavailable, err)
	}
	if len(parsed.Features) == 0 {
		return Route{}, fmt.Errorf("%w: empty result set", ErrRoutingUnavailable)
	}

	feature := parsed.Features[0]
	path := make([]Coordinates, 0, len(feature.Geometry.Coordinates))
	for _, c := range feature.Geometry.Coordinates {
		if len(c) < 2 {
			continue
		}
		path = append(path, Coordinates{Lat: c[1], Lng: c[0]})
	}

	return Route{
		ID:          uuid.NewString(),
		Origin:      origin,
		Destination: destination,
		DistanceM:   int(feature.Properties.Summary.Distance),
		DurationSec: int(feature.Properties.Summary.Duration),
		Method:      method,
		Type:        TypeBalanced,
		Path:        path,
	}, nil
}
