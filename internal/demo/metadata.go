package demo

import "encoding/json"

// Metadata is the payload the Python fixture serializes. Field order is
// serialization order, so the rendered keys always read project, language,
// version, features.
type Metadata struct {
	Project  string   `json:"project"`
	Language string   `json:"language"`
	Version  string   `json:"version"`
	Features []string `json:"features"`
}

// DefaultMetadata returns the canonical payload describing the host IDE.
func DefaultMetadata() Metadata {
	return Metadata{
		Project:  ProjectName,
		Language: "Python",
		Version:  "3.11",
		Features: []string{"execution", "terminal", "file management"},
	}
}

// JSON renders the payload with 2-space indentation, one feature per line.
func (m Metadata) JSON() ([]byte, error) {
	return json.MarshalIndent(m, "", "  ")
}
