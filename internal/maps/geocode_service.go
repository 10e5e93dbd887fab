// README: Forward/reverse geocoding and autocomplete against a Nominatim-compatible API.
package maps

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"taxifare/internal/types"
)

// Bounding region hint for suggestion queries (Cádiz province and
// surroundings), as lon1,lat1,lon2,lat2.
const regionViewbox = "-6.60,37.10,-5.20,36.00"

const suggestionLimit = 5

// GeocodeResult is the normalized outcome of a forward geocoding request.
type GeocodeResult struct {
	Success     bool
	Error       string
	Position    types.Coordinates
	DisplayName string
}

// ReverseResult decomposes a reverse-geocoded position into street and city.
type ReverseResult struct {
	Success     bool
	Error       string
	Street      string
	City        string
	DisplayName string
}

// Suggestion is one autocomplete candidate.
type Suggestion struct {
	DisplayName string
	Position    types.Coordinates
}

// GeocodeService talks to a Nominatim-shaped API. Results carry latitude
// and longitude as separate decimal fields; conversion to Coordinates
// happens at this boundary only.
type GeocodeService struct {
	baseURL string
	client  *apiClient
	log     *zap.Logger
}

func NewGeocodeService(baseURL string, timeout time.Duration, userAgent string, log *zap.Logger) *GeocodeService {
	return &GeocodeService{
		baseURL: baseURL,
		client:  newAPIClient(timeout, userAgent, log),
		log:     log,
	}
}

type nominatimPlace struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

type nominatimReverse struct {
	Error       string `json:"error"`
	DisplayName string `json:"display_name"`
	Address     struct {
		Road         string `json:"road"`
		HouseNumber  string `json:"house_number"`
		City         string `json:"city"`
		Town         string `json:"town"`
		Village      string `json:"village"`
		Municipality string `json:"municipality"`
	} `json:"address"`
}

// Forward geocodes free text, implicitly scoped to the operating region.
// An empty result list is a failure.
func (s *GeocodeService) Forward(ctx context.Context, query string) GeocodeResult {
	u := fmt.Sprintf("%s/search?q=%s&format=json&limit=1&countrycodes=es",
		s.baseURL, url.QueryEscape(query))

	var places []nominatimPlace
	if err := s.client.getJSON(ctx, u, &places); err != nil {
		s.log.Warn("forward geocoding failed", zap.Error(err))
		return GeocodeResult{Error: "No se encontró la dirección"}
	}
	if len(places) == 0 {
		return GeocodeResult{Error: "No se encontró la dirección"}
	}

	pos, err := parsePosition(places[0].Lat, places[0].Lon)
	if err != nil {
		s.log.Warn("geocoding returned bad coordinates", zap.Error(err))
		return GeocodeResult{Error: "No se encontró la dirección"}
	}
	return GeocodeResult{
		Success:     true,
		Position:    pos,
		DisplayName: places[0].DisplayName,
	}
}

// Reverse resolves coordinates into a street/city label. Best-effort for
// callers: failure only degrades the displayed label.
func (s *GeocodeService) Reverse(ctx context.Context, pos types.Coordinates) ReverseResult {
	u := fmt.Sprintf("%s/reverse?lat=%f&lon=%f&format=json", s.baseURL, pos.Lat, pos.Lng)

	var resp nominatimReverse
	if err := s.client.getJSON(ctx, u, &resp); err != nil {
		s.log.Warn("reverse geocoding failed", zap.Error(err))
		return ReverseResult{Error: "Dirección no disponible"}
	}
	if resp.Error != "" || resp.DisplayName == "" {
		return ReverseResult{Error: "Dirección no disponible"}
	}

	street := resp.Address.Road
	if street != "" && resp.Address.HouseNumber != "" {
		street += " " + resp.Address.HouseNumber
	}
	city := firstNonEmpty(resp.Address.City, resp.Address.Town, resp.Address.Village, resp.Address.Municipality)

	return ReverseResult{
		Success:     true,
		Street:      street,
		City:        city,
		DisplayName: resp.DisplayName,
	}
}

// Suggest returns up to five autocomplete candidates for partial text,
// biased to the operating region. Candidates with unparseable coordinates
// are skipped.
func (s *GeocodeService) Suggest(ctx context.Context, query string) ([]Suggestion, error) {
	u := fmt.Sprintf("%s/search?q=%s&format=json&limit=%d&countrycodes=es&viewbox=%s",
		s.baseURL, url.QueryEscape(query), suggestionLimit, regionViewbox)

	var places []nominatimPlace
	if err := s.client.getJSON(ctx, u, &places); err != nil {
		return nil, fmt.Errorf("suggestions: %w", err)
	}

	out := make([]Suggestion, 0, len(places))
	for _, p := range places {
		pos, err := parsePosition(p.Lat, p.Lon)
		if err != nil {
			continue
		}
		out = append(out, Suggestion{DisplayName: p.DisplayName, Position: pos})
		if len(out) == suggestionLimit {
			break
		}
	}
	return out, nil
}

func parsePosition(lat, lon string) (types.Coordinates, error) {
	la, err := strconv.ParseFloat(strings.TrimSpace(lat), 64)
	if err != nil {
		return types.Coordinates{}, fmt.Errorf("latitude %q: %w", lat, err)
	}
	lo, err := strconv.ParseFloat(strings.TrimSpace(lon), 64)
	if err != nil {
		return types.Coordinates{}, fmt.Errorf("longitude %q: %w", lon, err)
	}
	return types.Coordinates{Lat: la, Lng: lo}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
