package linker

// EntryStatus classifies the outcome of a single profile entry.
type EntryStatus string

const (
	// StatusLinked means a new symlink was created.
	StatusLinked EntryStatus = "linked"

	// StatusRelinked means an existing symlink was replaced.
	StatusRelinked EntryStatus = "relinked"

	// StatusUnchanged means the destination already points at the source.
	StatusUnchanged EntryStatus = "unchanged"

	// StatusRemoved means the destination symlink was removed.
	StatusRemoved EntryStatus = "removed"

	// StatusUnlinked means nothing exists at the destination.
	StatusUnlinked EntryStatus = "unlinked"

	// StatusForeign means the destination is a symlink that does not
	// point into the profile. It is reported and left in place.
	StatusForeign EntryStatus = "foreign"

	// StatusConflict means the destination exists and is not a symlink.
	// It is reported and left untouched.
	StatusConflict EntryStatus = "conflict"

	// StatusStale means the entry's template is newer than its rendered
	// output, or the rendered output is missing.
	StatusStale EntryStatus = "stale"

	// StatusError means rendering or a filesystem operation failed.
	StatusError EntryStatus = "error"
)

// EntryResult records what happened to one profile entry.
type EntryResult struct {
	// Path is the entry's path relative to the profile directory, with
	// template suffixes intact.
	Path string `json:"path"`

	// Source is the absolute path the symlink points at. For templates
	// this is the sibling .rendered file.
	Source string `json:"source"`

	// Destination is the absolute dotfile path under the home directory.
	Destination string `json:"destination"`

	// Rendered is true when the entry was a template.
	Rendered bool `json:"rendered,omitempty"`

	// Status classifies the outcome.
	Status EntryStatus `json:"status"`

	// Message carries human-readable detail for reports.
	Message string `json:"message,omitempty"`

	// Err is set for failed entries; it never aborts the run.
	Err error `json:"-"`
}

// Result collects per-entry outcomes for one profile. Entry failures
// are recorded, never propagated as run-level errors.
type Result struct {
	Profile string        `json:"profile"`
	Entries []EntryResult `json:"entries"`
}

// Errors returns the errors of all failed entries, in walk order.
func (r *Result) Errors() []error {
	var errs []error
	for _, e := range r.Entries {
		if e.Err != nil {
			errs = append(errs, e.Err)
		}
	}
	return errs
}

// HasErrors reports whether any entry failed.
func (r *Result) HasErrors() bool {
	for _, e := range r.Entries {
		if e.Err != nil {
			return true
		}
	}
	return false
}

// Count returns the number of entries with the given status.
func (r *Result) Count(status EntryStatus) int {
	n := 0
	for _, e := range r.Entries {
		if e.Status == status {
			n++
		}
	}
	return n
}
