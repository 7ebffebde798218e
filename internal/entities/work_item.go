// Package entities contains core business entities.
package entities

// WorkItemState is a lifecycle state of a work-tracking item.
type WorkItemState string

// StateClosed is the terminal state release notes collect.
const StateClosed WorkItemState = "Closed"

// WorkItemRef is a closed work item as it appears in release notes.
type WorkItemRef struct {
	ID    int
	Title string
	Link  string
}
