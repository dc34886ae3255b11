package simulator

import (
	"fmt"
	"math/rand"

	"github.com/drivergigspro/demandmap/internal/models"
)

// hotspotTemplate describes one synthetic demand center relative to the
// resolved origin. Intensity draws uniformly from [intensityBase,
// intensityBase+intensitySpread).
type hotspotTemplate struct {
	name            string
	latOffset       float64
	lngOffset       float64
	intensityBase   int
	intensitySpread int
	earnings        string
	peakHours       string
	cityPrefixed    bool
	events          []models.Event
}

var hotspotTemplates = []hotspotTemplate{
	{
		name: "Downtown", cityPrefixed: true,
		latOffset: 0.05, lngOffset: -0.03,
		intensityBase: 70, intensitySpread: 30,
		earnings: "$35-55/hr", peakHours: "11 AM-2 PM, 6-11 PM",
		events: []models.Event{{
			ID: 1, Name: "Business District Rush", Venue: "Downtown Core",
			Time: "5:00 PM - 7:00 PM", ExpectedAttendance: 5000,
			Category: models.EventBusiness,
		}},
	},
	{
		name: "Airport Area", cityPrefixed: true,
		latOffset: -0.15, lngOffset: 0.10,
		intensityBase: 75, intensitySpread: 25,
		earnings: "$45-65/hr", peakHours: "5-9 AM, 4-8 PM",
		events: []models.Event{{
			ID: 2, Name: "Flight Schedule Peak", Venue: "Local Airport",
			Time: "6:00 AM - 9:00 AM", ExpectedAttendance: 8000,
			Category: models.EventBusiness,
		}},
	},
	{
		name:      "Shopping District",
		latOffset: 0.08, lngOffset: 0.05,
		intensityBase: 60, intensitySpread: 20,
		earnings: "$25-40/hr", peakHours: "10 AM-4 PM, 7-10 PM",
	},
	{
		name:      "Entertainment Quarter",
		latOffset: -0.05, lngOffset: -0.08,
		intensityBase: 65, intensitySpread: 25,
		earnings: "$30-50/hr", peakHours: "7 PM-2 AM Fri-Sat",
		events: []models.Event{{
			ID: 3, Name: "Weekend Nightlife", Venue: "Entertainment District",
			Time: "9:00 PM - 2:00 AM", ExpectedAttendance: 3000,
			Category: models.EventNightlife,
		}},
	},
	{
		name:      "University Campus",
		latOffset: 0.12, lngOffset: -0.15,
		intensityBase: 55, intensitySpread: 20,
		earnings: "$20-35/hr", peakHours: "8 AM-6 PM weekdays",
	},
	{
		name:      "Medical Center",
		latOffset: -0.08, lngOffset: 0.12,
		intensityBase: 50, intensitySpread: 15,
		earnings: "$18-30/hr", peakHours: "24/7 steady",
	},
	{
		name:      "Suburban Mall",
		latOffset: 0.20, lngOffset: 0.18,
		intensityBase: 45, intensitySpread: 15,
		earnings: "$15-28/hr", peakHours: "12-8 PM weekends",
	},
	{
		name:      "Sports Complex",
		latOffset: -0.12, lngOffset: -0.20,
		intensityBase: 40, intensitySpread: 30,
		earnings: "$25-45/hr", peakHours: "Event dependent",
		events: []models.Event{{
			ID: 4, Name: "Local Sports Event", Venue: "Stadium",
			Time: "7:00 PM - 10:00 PM", ExpectedAttendance: 15000,
			Category: models.EventSports,
		}},
	},
}

// GenerateLocalHotspots instantiates the template set around an origin.
// IDs are positional starting at 1 and stay stable across regenerations
// for the same origin.
func GenerateLocalHotspots(rng *rand.Rand, origin models.UserLocation) []models.HotSpot {
	spots := make([]models.HotSpot, 0, len(hotspotTemplates))
	for i, t := range hotspotTemplates {
		name := t.name
		if t.cityPrefixed {
			name = fmt.Sprintf("%s %s", origin.City, t.name)
		}
		spot := models.HotSpot{
			ID:   i + 1,
			Name: name,
			Location: models.Location{
				Lat: origin.Lat + t.latOffset,
				Lng: origin.Lng + t.lngOffset,
			},
			Intensity:         float64(rng.Intn(t.intensitySpread) + t.intensityBase),
			EstimatedEarnings: t.earnings,
			PeakHours:         t.peakHours,
		}
		if len(t.events) > 0 {
			spot.Events = append([]models.Event(nil), t.events...)
		}
		spots = append(spots, spot)
	}
	return spots
}

// DeriveBounds builds the view rectangle centered on the origin. The
// offset is sized so every template spot lands comfortably inside.
func DeriveBounds(origin models.UserLocation) models.ViewBounds {
	return models.ViewBounds{
		North: origin.Lat + models.BoundsDegreeOffset,
		South: origin.Lat - models.BoundsDegreeOffset,
		East:  origin.Lng + models.BoundsDegreeOffset,
		West:  origin.Lng - models.BoundsDegreeOffset,
	}
}
