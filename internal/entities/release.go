// Package entities contains core business entities.
package entities

import "time"

const (
	// DefaultReleaseName is used when the trigger carries no release name.
	DefaultReleaseName = "Latest release"
	// DefaultReleaseDescription is used when the trigger carries no release description.
	DefaultReleaseDescription = "Changes delivered during the current sprint."
)

// TimeWindow is the trailing range a release covers. Start <= End.
type TimeWindow struct {
	Start time.Time
	End   time.Time
}

// ReleaseMetadata names and describes a release.
type ReleaseMetadata struct {
	Name        string
	Description string
}

// DefaultReleaseMetadata returns the placeholder metadata.
func DefaultReleaseMetadata() ReleaseMetadata {
	return ReleaseMetadata{Name: DefaultReleaseName, Description: DefaultReleaseDescription}
}

// ReleaseDocument aggregates everything rendered into one release-notes document.
type ReleaseDocument struct {
	Metadata     ReleaseMetadata
	WorkItems    []WorkItemRef
	PullRequests []PullRequestRef
}

// NamedSlotOutcome tells what happened to the per-release slot.
type NamedSlotOutcome string

const (
	// NamedSlotCreated means the document was written to a fresh named slot.
	NamedSlotCreated NamedSlotOutcome = "created"
	// NamedSlotSkippedExists means the named slot was already taken and left untouched.
	NamedSlotSkippedExists NamedSlotOutcome = "skipped-exists"
)

// PublishResult reports what a publish did to both slots.
type PublishResult struct {
	LatestKey     string           `json:"latest_key"`
	NamedKey      string           `json:"named_key"`
	LatestUpdated bool             `json:"latest_updated"`
	Named         NamedSlotOutcome `json:"named,omitempty"`
}

// ReleaseRun is the outcome of one pipeline invocation.
type ReleaseRun struct {
	Metadata     ReleaseMetadata
	Window       TimeWindow
	Document     string
	Publish      PublishResult
	WorkItems    int
	PullRequests int
}
