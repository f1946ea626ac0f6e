package types

import "time"

// Report is the top-level structure for commands that produce rich
// output. It is what the ui renderers consume, for every output format.
type Report struct {
	Command   string          `json:"command"` // "link", "unlink", "status"
	Profiles  []ProfileReport `json:"profiles"`
	DryRun    bool            `json:"dryRun"`
	Timestamp time.Time       `json:"timestamp"`
}

// ProfileReport represents a single profile for display.
type ProfileReport struct {
	Name      string        `json:"name"`
	Status    string        `json:"status"` // Aggregated: "alert", "success", "queue"
	Entries   []EntryReport `json:"entries"`
	HasConfig bool          `json:"hasConfig"` // Profile has .dotdash.toml
}

// EntryReport represents a single entry within a profile for display.
type EntryReport struct {
	Path        string `json:"path"`
	Destination string `json:"destination"`
	Rendered    bool   `json:"rendered,omitempty"` // Entry went through template rendering
	Status      string `json:"status"`             // linked, relinked, unchanged, removed, unlinked, foreign, conflict, stale, error
	Message     string `json:"message,omitempty"`
	Failed      bool   `json:"failed,omitempty"` // Entry counts toward a non-zero exit
}

// GetProfileStatus determines the profile-level status from its entries:
// any failed entry makes the profile "alert", a profile whose entries all
// settled cleanly is "success", anything in between is "queue".
func (pr *ProfileReport) GetProfileStatus() string {
	if len(pr.Entries) == 0 {
		return "queue"
	}

	hasFailure := false
	allSettled := true

	for _, entry := range pr.Entries {
		if entry.Failed {
			hasFailure = true
		}
		switch entry.Status {
		case "linked", "relinked", "unchanged", "removed":
		default:
			allSettled = false
		}
	}

	if hasFailure {
		return "alert"
	}
	if allSettled {
		return "success"
	}
	return "queue"
}

// HasFailures reports whether any entry in any profile failed.
func (r *Report) HasFailures() bool {
	for _, profile := range r.Profiles {
		for _, entry := range profile.Entries {
			if entry.Failed {
				return true
			}
		}
	}
	return false
}

// CountEntries returns the number of entries across all profiles with
// the given status.
func (r *Report) CountEntries(status string) int {
	n := 0
	for _, profile := range r.Profiles {
		for _, entry := range profile.Entries {
			if entry.Status == status {
				n++
			}
		}
	}
	return n
}
