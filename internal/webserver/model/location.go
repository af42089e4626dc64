package model

// Location is a place candidate as picked on the map: a venue title plus its
// road address. Two locations are the same place only when both fields match.
type Location struct {
	Title   string `json:"title"`
	Address string `json:"address"`
}

// Key returns the composite identity used to count a location across
// submissions and ballots. Keys are only ever mapped back to locations by
// lookup; titles may contain the separator themselves, so a key cannot be
// split apart reliably.
func (l Location) Key() string {
	return l.Title + ":" + l.Address
}

// LocationKeys maps a slice of locations to their composite keys.
func LocationKeys(locations []Location) []string {
	keys := make([]string, len(locations))
	for i, location := range locations {
		keys[i] = location.Key()
	}
	return keys
}
