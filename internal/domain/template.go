package domain

// TemplateType enumerates the template kinds listmonk supports.
type TemplateType string

const (
	TemplateCampaign       TemplateType = "campaign"
	TemplateCampaignVisual TemplateType = "campaign_visual"
	TemplateTx             TemplateType = "tx"
)

// TemplateTypeValues lists the accepted TemplateType values.
var TemplateTypeValues = []string{
	string(TemplateCampaign),
	string(TemplateCampaignVisual),
	string(TemplateTx),
}

// Template is a listmonk template. Subject is only meaningful for tx templates.
type Template struct {
	ID        int          `json:"id,omitempty"`
	Name      string       `json:"name"`
	Type      TemplateType `json:"type"`
	Subject   string       `json:"subject,omitempty"`
	Body      string       `json:"body"`
	IsDefault bool         `json:"is_default"`
	CreatedAt string       `json:"created_at,omitempty"`
	UpdatedAt string       `json:"updated_at,omitempty"`
}

// CreateTemplateRequest is the body of POST /api/templates.
type CreateTemplateRequest struct {
	Name    string       `json:"name"`
	Type    TemplateType `json:"type"`
	Body    string       `json:"body"`
	Subject *string      `json:"subject,omitempty"`
}

// UpdateTemplateRequest is the body of PUT /api/templates/:id.
type UpdateTemplateRequest struct {
	Name    *string      `json:"name,omitempty"`
	Type    TemplateType `json:"type,omitempty"`
	Body    *string      `json:"body,omitempty"`
	Subject *string      `json:"subject,omitempty"`
}
