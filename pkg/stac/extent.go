package stac

// Extent represents the spatial and temporal extent of a STAC Collection.
type Extent struct {
	Spatial  *SpatialExtent  `json:"spatial,omitempty"`
	Temporal *TemporalExtent `json:"temporal,omitempty"`
}

// SpatialExtent represents the spatial extent of a STAC Collection.
type SpatialExtent struct {
	Bbox [][]float64 `json:"bbox"`
}

// TemporalExtent represents the temporal extent of a STAC Collection.
// Open intervals use null for the missing endpoint.
type TemporalExtent struct {
	Interval [][]any `json:"interval"`
}

// NewExtent builds an extent from a single bounding box and temporal interval.
func NewExtent(bbox []float64, start, end any) *Extent {
	return &Extent{
		Spatial:  &SpatialExtent{Bbox: [][]float64{bbox}},
		Temporal: &TemporalExtent{Interval: [][]any{{start, end}}},
	}
}
