// Package types defines shared types used across the application.
package types

import "time"

// MatchResult represents the outcome of checking one selector against a page.
type MatchResult struct {
	Name     string `json:"name"`
	Selector string `json:"selector"`
	Count    int    `json:"count"`
	Sample   string `json:"sample,omitempty"`   // shortened text of the first match
	NodePath string `json:"nodePath,omitempty"` // tag path from the root to the first match
}

// CheckStatus represents the status of a check run.
type CheckStatus struct {
	URL            string    `json:"url"`
	NrSelectors    int       `json:"nrSelectors"`
	NrErrors       int       `json:"nrErrors"`
	LastCheckStart time.Time `json:"lastCheckStart"`
	LastCheckEnd   time.Time `json:"lastCheckEnd"`
}
