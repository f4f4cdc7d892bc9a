package pkg

// enum of crossing_model
type CrossingModel uint8

const (
	// raw (lat, lon) values tested as planar (x=lon, y=lat) segments
	PLANAR_CROSSING CrossingModel = iota
	// endpoints joined by great-circle arcs
	GEODESIC_CROSSING
	UNKNOWN_CROSSING
)

func (m CrossingModel) String() string {
	switch m {
	case PLANAR_CROSSING:
		return "planar"
	case GEODESIC_CROSSING:
		return "geodesic"
	default:
		return "unknown"
	}
}

func GetCrossingModel(model string) CrossingModel {
	switch model {
	case "planar", "":
		return PLANAR_CROSSING
	case "geodesic":
		return GEODESIC_CROSSING
	default:
		return UNKNOWN_CROSSING
	}
}

const (
	DEFAULT_MAX_BRIDGES = 5000
)
