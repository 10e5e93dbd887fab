// README: Deep-link builder for handing a trip off to an external map app.
package maps

import (
	"fmt"
	"strings"

	"taxifare/internal/types"
)

// NavigationURL builds the platform-appropriate deep link for opening an
// external map application pre-filled with origin and destination. The
// platform is chosen by user-agent sniffing.
func NavigationURL(userAgent string, origin, destination types.Coordinates) string {
	ua := strings.ToLower(userAgent)
	switch {
	case strings.Contains(ua, "iphone"), strings.Contains(ua, "ipad"), strings.Contains(ua, "ipod"):
		return fmt.Sprintf("https://maps.apple.com/?saddr=%f,%f&daddr=%f,%f&dirflg=d",
			origin.Lat, origin.Lng, destination.Lat, destination.Lng)
	case strings.Contains(ua, "android"):
		return fmt.Sprintf("google.navigation:q=%f,%f&mode=d", destination.Lat, destination.Lng)
	default:
		return fmt.Sprintf("https://www.google.com/maps/dir/?api=1&origin=%f,%f&destination=%f,%f&travelmode=driving",
			origin.Lat, origin.Lng, destination.Lat, destination.Lng)
	}
}
