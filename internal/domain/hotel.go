package domain

// Hotel is a food vendor on campus. Read-only on this side; the backend
// (or the fallback dataset) is the source of truth.
type Hotel struct {
	ID       string `json:"_id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}
