// README: Routing adapter for an OSRM-compatible engine.
package maps

import (
	"context"
	"fmt"
	"time"

	"github.com/twpayne/go-polyline"
	"go.uber.org/zap"

	"taxifare/internal/types"
)

// RouteResult is the normalized outcome of one routing request. Callers
// never see transport-level faults; a failed call carries Success=false and
// a user-facing message.
type RouteResult struct {
	Success     bool
	Error       string
	DistanceKm  float64
	DurationMin float64
	Geometry    []types.Coordinates
}

// RouteService computes driving routes against an OSRM-shaped API.
type RouteService struct {
	baseURL string
	client  *apiClient
	log     *zap.Logger
}

func NewRouteService(baseURL string, timeout time.Duration, userAgent string, log *zap.Logger) *RouteService {
	return &RouteService{
		baseURL: baseURL,
		client:  newAPIClient(timeout, userAgent, log),
		log:     log,
	}
}

type osrmResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Distance float64 `json:"distance"`
		Duration float64 `json:"duration"`
		Geometry string  `json:"geometry"`
	} `json:"routes"`
}

// Route returns the driving route between origin and destination.
// OSRM expects longitude before latitude; the conversion happens here and
// nowhere else.
func (s *RouteService) Route(ctx context.Context, origin, destination types.Coordinates) RouteResult {
	url := fmt.Sprintf("%s/route/v1/driving/%f,%f;%f,%f?overview=simplified",
		s.baseURL, origin.Lng, origin.Lat, destination.Lng, destination.Lat)

	var resp osrmResponse
	if err := s.client.getJSON(ctx, url, &resp); err != nil {
		s.log.Warn("routing request failed", zap.Error(err))
		return RouteResult{Error: "No se pudo calcular la ruta"}
	}
	if resp.Code != "Ok" || len(resp.Routes) == 0 {
		s.log.Warn("routing rejected", zap.String("code", resp.Code), zap.Int("routes", len(resp.Routes)))
		return RouteResult{Error: "No se pudo calcular la ruta"}
	}

	r := resp.Routes[0]
	coords, _, err := polyline.DecodeCoords([]byte(r.Geometry))
	if err != nil {
		s.log.Warn("route geometry undecodable", zap.Error(err))
		return RouteResult{Error: "No se pudo calcular la ruta"}
	}

	geometry := make([]types.Coordinates, 0, len(coords))
	for _, c := range coords {
		geometry = append(geometry, types.Coordinates{Lat: c[0], Lng: c[1]})
	}

	return RouteResult{
		Success:     true,
		DistanceKm:  r.Distance / 1000.0,
		DurationMin: r.Duration / 60.0,
		Geometry:    geometry,
	}
}
