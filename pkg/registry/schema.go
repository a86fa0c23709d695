// pkg/registry/schema.go
package registry

// CollectionRegistry enumerates the upstream marketplace collections this
// service may touch, so route allow-lists and fetch wiring share one
// source of truth.
type CollectionRegistry struct {
	Version     string       `json:"version"`
	LastUpdated string       `json:"lastUpdated"`
	Collections []Collection `json:"collections"`
}

// Collection describes one posting collection and its child collection.
type Collection struct {
	Name       string `json:"name"`
	Children   string `json:"children"`
	OwnerField string `json:"ownerField"`
	IDsParam   string `json:"idsParam"`
	Type       string `json:"type"`
}
