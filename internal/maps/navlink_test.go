package maps

import (
	"strings"
	"testing"

	"taxifare/internal/types"
)

func TestNavigationURL(t *testing.T) {
	origin := types.Coordinates{Lat: 36.70, Lng: -6.05}
	dest := types.Coordinates{Lat: 37.39, Lng: -5.98}

	tests := []struct {
		name       string
		userAgent  string
		wantPrefix string
	}{
		{
			name:       "iphone gets apple maps",
			userAgent:  "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X)",
			wantPrefix: "https://maps.apple.com/",
		},
		{
			name:       "android gets navigation intent",
			userAgent:  "Mozilla/5.0 (Linux; Android 14; Pixel 8)",
			wantPrefix: "google.navigation:",
		},
		{
			name:       "desktop gets web directions",
			userAgent:  "Mozilla/5.0 (X11; Linux x86_64)",
			wantPrefix: "https://www.google.com/maps/dir/",
		},
		{
			name:       "empty user agent falls back to web",
			userAgent:  "",
			wantPrefix: "https://www.google.com/maps/dir/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NavigationURL(tt.userAgent, origin, dest)
			if !strings.HasPrefix(got, tt.wantPrefix) {
				t.Errorf("NavigationURL(%q) = %q, want prefix %q", tt.userAgent, got, tt.wantPrefix)
			}
			if !strings.Contains(got, "37.39") {
				t.Errorf("deep link misses destination: %q", got)
			}
		})
	}
}
