// Package climate resamples climate datasets onto regular lon/lat grids and
// replaces their variables with scalar or array data.
package climate

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"go.ngs.io/climate-tools/domain"
	"go.ngs.io/climate-tools/interp"
)

// MethodAttr is the dataset attribute recording the interpolation method
// used by ResizeGrid.
const MethodAttr = "resample_method"

// GridSize is the number of points along the resampled axes.
type GridSize struct {
	Lon int
	Lat int
}

// ResampleConfig controls how the horizontal coordinates are located.
type ResampleConfig struct {
	LonPrefix string // E.g., "lon" matches "lon", "longitude".
	LatPrefix string // E.g., "lat" matches "lat", "latitude".
}

// DefaultResampleConfig returns the default coordinate prefixes.
func DefaultResampleConfig() ResampleConfig {
	return ResampleConfig{
		LonPrefix: "lon",
		LatPrefix: "lat",
	}
}

// Resampler moves datasets onto regular lon/lat grids.
type Resampler struct {
	config ResampleConfig
	logger logrus.FieldLogger
}

// NewResampler creates a new resampler. A nil logger uses the logrus
// standard logger.
func NewResampler(config ResampleConfig, logger logrus.FieldLogger) *Resampler {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Resampler{
		config: config,
		logger: logger,
	}
}

// ResizeGrid resamples ds with the default configuration.
func ResizeGrid(ds *domain.Dataset, size GridSize) (*domain.Dataset, error) {
	return NewResampler(DefaultResampleConfig(), nil).ResizeGrid(ds, size)
}

// SelectMethod returns Cubic when no variable holds a NaN and Linear
// otherwise. The choice applies to every variable of the dataset.
func SelectMethod(ds *domain.Dataset) interp.Method {
	if ds.HasNaN() {
		return interp.Linear
	}
	return interp.Cubic
}

// ResizeGrid returns a new dataset with every variable interpolated onto
// size.Lon x size.Lat evenly spaced points spanning the first to the last
// value of the existing lon/lat coordinates. ds is not modified.
//
// Source coordinate values need not be monotonic: each variable is sorted
// along the coordinate before fitting. Repeated or NaN coordinate values are
// an error. Every variable dimension named after a coordinate must match its
// length.
func (r *Resampler) ResizeGrid(ds *domain.Dataset, size GridSize) (*domain.Dataset, error) {
	if ds == nil {
		return nil, fmt.Errorf("%w: dataset", domain.ErrNilInput)
	}
	if err := ds.Validate(); err != nil {
		return nil, fmt.Errorf("invalid dataset: %w", err)
	}
	if size.Lon <= 0 || size.Lat <= 0 {
		return nil, fmt.Errorf("%w: %d x %d", domain.ErrInvalidGridSize, size.Lon, size.Lat)
	}

	lon, err := ds.FindCoord(r.config.LonPrefix)
	if err != nil {
		return nil, fmt.Errorf("failed to locate longitude: %w", err)
	}
	lat, err := ds.FindCoord(r.config.LatPrefix)
	if err != nil {
		return nil, fmt.Errorf("failed to locate latitude: %w", err)
	}
	if lon.Len() == 0 || lat.Len() == 0 {
		return nil, fmt.Errorf("%w: empty coordinate", domain.ErrCoordNotFound)
	}

	newLon := interp.Linspace(lon.Values[0], lon.Values[lon.Len()-1], size.Lon)
	newLat := interp.Linspace(lat.Values[0], lat.Values[lat.Len()-1], size.Lat)
	method := SelectMethod(ds)

	r.logger.WithFields(logrus.Fields{
		"lon":    lon.Name,
		"lat":    lat.Name,
		"from":   fmt.Sprintf("%dx%d", lon.Len(), lat.Len()),
		"to":     fmt.Sprintf("%dx%d", size.Lon, size.Lat),
		"method": method.String(),
	}).Debug("resizing grid")

	out := domain.NewDataset()
	for k, v := range ds.Attrs {
		out.Attrs[k] = v
	}
	for _, c := range ds.Coords() {
		switch c.Name {
		case lon.Name:
			out.AddCoord(c.Name, newLon)
		case lat.Name:
			out.AddCoord(c.Name, newLat)
		default:
			out.AddCoord(c.Name, c.Values)
		}
	}

	for _, v := range ds.Variables() {
		resized := v.Clone()
		for _, axis := range []struct {
			coord *domain.Coordinate
			to    []float64
		}{
			{lon, newLon},
			{lat, newLat},
		} {
			idx := resized.DimIndex(axis.coord.Name)
			if idx < 0 {
				continue
			}
			data, err := interp.AlongAxis(resized.Data, idx, axis.coord.Values, axis.to, method)
			if err != nil {
				return nil, fmt.Errorf("failed to interpolate %s along %s: %w", v.Name, axis.coord.Name, err)
			}
			resized.Data = data
		}
		out.AddVariable(resized)
	}

	out.Attrs[MethodAttr] = method.String()
	return out, nil
}
