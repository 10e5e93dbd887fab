// README: Road-incident adapter, queried per province.
package maps

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Severity is an incident level, ordered green < yellow < red < black.
type Severity string

const (
	SeverityGreen  Severity = "green"
	SeverityYellow Severity = "yellow"
	SeverityRed    Severity = "red"
	SeverityBlack  Severity = "black"
)

// Rank returns the position of s in the severity order; unknown levels rank
// lowest.
func (s Severity) Rank() int {
	switch s {
	case SeverityYellow:
		return 1
	case SeverityRed:
		return 2
	case SeverityBlack:
		return 3
	default:
		return 0
	}
}

// TrafficIncident is one reported road incident.
type TrafficIncident struct {
	Type        string
	Description string
	Road        string
	Severity    Severity
}

// TrafficService fetches incidents for a province.
type TrafficService struct {
	baseURL string
	client  *apiClient
	log     *zap.Logger
}

func NewTrafficService(baseURL string, timeout time.Duration, userAgent string, log *zap.Logger) *TrafficService {
	return &TrafficService{
		baseURL: baseURL,
		client:  newAPIClient(timeout, userAgent, log),
		log:     log,
	}
}

type trafficResponse struct {
	Incidencias []struct {
		Tipo        string `json:"tipo"`
		Descripcion string `json:"descripcion"`
		Carretera   string `json:"carretera"`
		Nivel       string `json:"nivel"`
	} `json:"incidencias"`
}

// Incidents returns the current incidents for a province, or an error for
// the caller to absorb; traffic is best-effort and never fails a fare
// request.
func (s *TrafficService) Incidents(ctx context.Context, province string) ([]TrafficIncident, error) {
	u := fmt.Sprintf("%s/incidencias?provincia=%s", s.baseURL, url.QueryEscape(province))

	var resp trafficResponse
	if err := s.client.getJSON(ctx, u, &resp); err != nil {
		return nil, fmt.Errorf("traffic: %w", err)
	}

	out := make([]TrafficIncident, 0, len(resp.Incidencias))
	for _, inc := range resp.Incidencias {
		out = append(out, TrafficIncident{
			Type:        inc.Tipo,
			Description: inc.Descripcion,
			Road:        inc.Carretera,
			Severity:    parseSeverity(inc.Nivel),
		})
	}
	return out, nil
}

func parseSeverity(level string) Severity {
	switch Severity(strings.ToLower(strings.TrimSpace(level))) {
	case SeverityYellow:
		return SeverityYellow
	case SeverityRed:
		return SeverityRed
	case SeverityBlack:
		return SeverityBlack
	default:
		return SeverityGreen
	}
}

// ProvinceFromDisplayName extracts the province as the second-to-last
// comma-separated segment of a geocoded display name ("…, Cádiz, España").
// Returns "" when the name has too few segments.
func ProvinceFromDisplayName(displayName string) string {
	parts := strings.Split(displayName, ",")
	if len(parts) < 2 {
		return ""
	}
	return strings.TrimSpace(parts[len(parts)-2])
}
