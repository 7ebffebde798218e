package mapper

import (
	"testing"

	"release-notes-webhook/internal/entities"

	"github.com/stretchr/testify/require"
)

func TestFromTriggerPayload(t *testing.T) {
	tests := []struct {
		name string
		body string
		want entities.ReleaseMetadata
	}{
		{
			name: "full",
			body: `{"resource":{"release":{"name":"v1.2.0","description":"Bug fixes"}}}`,
			want: entities.ReleaseMetadata{Name: "v1.2.0", Description: "Bug fixes"},
		},
		{
			name: "name only",
			body: `{"resource":{"release":{"name":"v2"}}}`,
			want: entities.ReleaseMetadata{Name: "v2"},
		},
		{
			name: "wrong types",
			body: `{"resource":{"release":{"name":12,"description":{"x":1}}}}`,
			want: entities.ReleaseMetadata{},
		},
		{
			name: "other schema",
			body: `{"eventType":"ms.vss-release.release-created-event"}`,
			want: entities.ReleaseMetadata{},
		},
		{
			name: "malformed",
			body: `{"resource":`,
			want: entities.ReleaseMetadata{},
		},
		{
			name: "empty",
			want: entities.ReleaseMetadata{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, FromTriggerPayload([]byte(tt.body)))
		})
	}
}

func TestPublishHeaders(t *testing.T) {
	h := PublishHeaders(entities.PublishResult{
		LatestKey:     "releases/latest",
		NamedKey:      "releases/v1.md",
		LatestUpdated: true,
		Named:         entities.NamedSlotSkippedExists,
	})

	require.Equal(t, "releases/latest", h[HeaderLatestKey])
	require.Equal(t, "releases/v1.md", h[HeaderNamedKey])
	require.Equal(t, "skipped-exists", h[HeaderNamedSlot])
	require.Equal(t, "true", h[HeaderLatestUpdated])
}
