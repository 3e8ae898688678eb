package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		healthy bool
		status  string
	}{
		{"bare true", `true`, true, "ok"},
		{"bare false", `false`, false, "unhealthy"},
		{"status ok", `{"status":"ok"}`, true, "ok"},
		{"status degraded", `{"status":"degraded"}`, false, "degraded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var h Health
			require.NoError(t, json.Unmarshal([]byte(tt.input), &h))
			assert.Equal(t, tt.healthy, h.Healthy)
			assert.Equal(t, tt.status, h.Status)
		})
	}
}

func TestHealthUnmarshalRejectsOtherShapes(t *testing.T) {
	var h Health
	err := json.Unmarshal([]byte(`"up"`), &h)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"up"`)
}

func TestCreateCampaignRequestOmitsStatus(t *testing.T) {
	req := CreateCampaignRequest{
		Name:        "Spring",
		Subject:     "Hello",
		Lists:       []int{1},
		Status:      CampaignScheduled,
		ContentType: ContentRichtext,
		Messenger:   DefaultMessenger,
		Type:        CampaignRegular,
	}
	data, err := json.Marshal(req)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))
	assert.NotContains(t, fields, "status")
	assert.NotContains(t, fields, "template_id")
	assert.Equal(t, "richtext", fields["content_type"])
}
