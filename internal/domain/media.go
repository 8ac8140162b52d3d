package domain

// MediaObject points at a stored media file. Key is the object storage key
// used for deletion; it is serialized as public_id for client compatibility.
type MediaObject struct {
	URL string `json:"url"`
	Key string `json:"public_id"`
}

// MediaList is persisted as a JSON column via the gorm json serializer.
type MediaList []MediaObject

// Without removes the objects whose keys appear in deleted and reports
// which objects were dropped.
func (m MediaList) Without(deleted []string) (kept MediaList, removed MediaList) {
	drop := make(map[string]bool, len(deleted))
	for _, key := range deleted {
		drop[key] = true
	}
	for _, obj := range m {
		if drop[obj.Key] {
			removed = append(removed, obj)
		} else {
			kept = append(kept, obj)
		}
	}
	return kept, removed
}
