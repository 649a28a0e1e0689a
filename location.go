package yweather

// Coordinate is a WGS84 latitude/longitude pair in decimal degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Validate returns an error if the coordinate is outside the valid range.
func (c Coordinate) Validate() error {
	if c.Lat < -90 || c.Lat > 90 {
		return Errorf(EINVALID, "latitude %v out of range [-90, 90]", c.Lat)
	}
	if c.Lon < -180 || c.Lon > 180 {
		return Errorf(EINVALID, "longitude %v out of range [-180, 180]", c.Lon)
	}
	return nil
}

// LocationInfo identifies a place by its WOEIDs.
//
// An empty PrimaryWoeid is a valid intermediate state: the geocode stage
// has not run yet, or it did not find a place. The weather stage requires
// a non-empty PrimaryWoeid.
type LocationInfo struct {
	PrimaryWoeid string   `json:"primaryWoeid"`
	Woeids       []string `json:"woeids"`
	Town         string   `json:"town,omitempty"`
}

// Resolved reports whether the location has a primary WOEID.
func (l *LocationInfo) Resolved() bool {
	return l != nil && l.PrimaryWoeid != ""
}

// AddWoeid appends an alternate WOEID, ignoring empty values.
func (l *LocationInfo) AddWoeid(woeid string) {
	if woeid == "" {
		return
	}
	l.Woeids = append(l.Woeids, woeid)
}

// LocationExtractor turns a reverse-geocode response document into a LocationInfo.
type LocationExtractor interface {
	// ExtractLocation parses the document and returns the location it describes.
	// A document without a WOEID yields a LocationInfo with an empty
	// PrimaryWoeid and no error. Malformed documents return EPARSE and no
	// partial result.
	ExtractLocation(doc string) (*LocationInfo, error)
}
