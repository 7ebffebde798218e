// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"strconv"

	"release-notes-webhook/internal/entities"

	"github.com/tidwall/gjson"
)

// Trigger payload paths.
const (
	releaseNamePath        = "resource.release.name"
	releaseDescriptionPath = "resource.release.description"
)

// Headers exposing the publish outcome.
const (
	HeaderLatestKey     = "X-Release-Latest-Key"
	HeaderLatestUpdated = "X-Release-Latest-Updated"
	HeaderNamedKey      = "X-Release-Named-Key"
	HeaderNamedSlot     = "X-Release-Named-Slot"
)

// FromTriggerPayload reads release metadata from a trigger body. Fields that are missing or
// not strings come back empty; an empty or malformed body yields zero metadata.
func FromTriggerPayload(body []byte) entities.ReleaseMetadata {
	if len(body) == 0 || !gjson.ValidBytes(body) {
		return entities.ReleaseMetadata{}
	}

	res := gjson.GetManyBytes(body, releaseNamePath, releaseDescriptionPath)
	return entities.ReleaseMetadata{
		Name:        stringField(res[0]),
		Description: stringField(res[1]),
	}
}

func stringField(r gjson.Result) string {
	if r.Type != gjson.String {
		return ""
	}
	return r.Str
}

// PublishHeaders maps the publish outcome to response headers.
func PublishHeaders(res entities.PublishResult) map[string]string {
	return map[string]string{
		HeaderLatestKey:     res.LatestKey,
		HeaderLatestUpdated: strconv.FormatBool(res.LatestUpdated),
		HeaderNamedKey:      res.NamedKey,
		HeaderNamedSlot:     string(res.Named),
	}
}
