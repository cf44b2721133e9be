package models

// Resource is an external help resource. Only Name is guaranteed.
type Resource struct {
	Name  string `json:"name"`
	Type  string `json:"type,omitempty"`
	Phone string `json:"phone,omitempty"`
	Chat  string `json:"chat,omitempty"`
	URL   string `json:"url,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// ResourceList is the body of the resources endpoint
type ResourceList struct {
	Resources []Resource `json:"resources"`
}
