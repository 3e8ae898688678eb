package domain

import (
	"encoding/json"
	"fmt"
)

// Media is an uploaded file in the listmonk media library.
type Media struct {
	ID          int    `json:"id,omitempty"`
	UUID        string `json:"uuid,omitempty"`
	Filename    string `json:"filename"`
	ContentType string `json:"content_type,omitempty"`
	URL         string `json:"url,omitempty"`
	ThumbURL    string `json:"thumb_url,omitempty"`
	Provider    string `json:"provider,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
}

// DashboardCounts is the aggregate returned by the dashboard counts endpoint.
type DashboardCounts struct {
	Subscribers struct {
		Total       int `json:"total"`
		Blocklisted int `json:"blocklisted"`
		Orphans     int `json:"orphans"`
	} `json:"subscribers"`
	Lists struct {
		Total       int `json:"total"`
		Private     int `json:"private"`
		Public      int `json:"public"`
		OptinSingle int `json:"optin_single"`
		OptinDouble int `json:"optin_double"`
	} `json:"lists"`
	Campaigns struct {
		Total    int            `json:"total"`
		ByStatus map[string]int `json:"by_status"`
	} `json:"campaigns"`
	Messages int `json:"messages"`
}

// Health reports whether the remote instance is up. listmonk answers with a
// bare boolean; some proxies answer with {"status": "..."}. Both decode.
type Health struct {
	Healthy bool   `json:"healthy"`
	Status  string `json:"status,omitempty"`
}

// UnmarshalJSON accepts either a JSON boolean or an object with a status field.
func (h *Health) UnmarshalJSON(data []byte) error {
	var ok bool
	if err := json.Unmarshal(data, &ok); err == nil {
		h.Healthy = ok
		h.Status = "ok"
		if !ok {
			h.Status = "unhealthy"
		}
		return nil
	}

	var obj struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("health: expected boolean or object, got %s", string(data))
	}
	h.Status = obj.Status
	switch obj.Status {
	case "ok", "healthy", "up":
		h.Healthy = true
	}
	return nil
}
