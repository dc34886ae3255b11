package models

const (
	TierHighThreshold   = 80.0
	TierMediumThreshold = 60.0

	// Intensity clamp applied by perturbation refreshes.
	IntensityFloor   = 20.0
	IntensityCeiling = 100.0

	CanvasWidth  = 800
	CanvasHeight = 500

	MinSpotRadius   = 15.0
	SpotRadiusScale = 40.0

	// BoundsDegreeOffset expands the view bounds around an origin.
	// 1 degree ~ 69 miles, so 100 miles ~ 1.44927 degrees. No correction
	// for longitude convergence at high latitudes.
	BoundsDegreeOffset = 1.44927

	FallbackLat  = 33.7490
	FallbackLng  = -84.3880
	FallbackCity = "Atlanta"

	DataSourceRealtime = "realtime"
	DataSourceCached   = "cached"
	DataSourceFallback = "fallback"
)
