package appointment

// IsFree reports whether candidate overlaps none of the occupied intervals.
// Each occupied entry is measured with its own duration. An entry whose ID
// equals excludeID is ignored.
func IsFree(candidate Interval, occupied []Occupied, excludeID uint) bool {
	for _, o := range occupied {
		if excludeID != 0 && o.ID == excludeID {
			continue
		}
		if candidate.Overlaps(o.Interval()) {
			return false
		}
	}
	return true
}
