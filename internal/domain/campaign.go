package domain

// CampaignStatus enumerates the lifecycle states of a campaign. Transitions
// go through PUT /api/campaigns/:id/status; the remote API decides which
// transitions are legal.
type CampaignStatus string

const (
	CampaignDraft     CampaignStatus = "draft"
	CampaignScheduled CampaignStatus = "scheduled"
	CampaignRunning   CampaignStatus = "running"
	CampaignPaused    CampaignStatus = "paused"
	CampaignFinished  CampaignStatus = "finished"
	CampaignCancelled CampaignStatus = "cancelled"
)

// CampaignStatusValues lists the accepted CampaignStatus values.
var CampaignStatusValues = []string{
	string(CampaignDraft),
	string(CampaignScheduled),
	string(CampaignRunning),
	string(CampaignPaused),
	string(CampaignFinished),
	string(CampaignCancelled),
}

// CampaignType distinguishes regular sends from opt-in confirmation campaigns.
type CampaignType string

const (
	CampaignRegular CampaignType = "regular"
	CampaignOptin   CampaignType = "optin"
)

// CampaignTypeValues lists the accepted CampaignType values.
var CampaignTypeValues = []string{string(CampaignRegular), string(CampaignOptin)}

// ContentType is the body format of a campaign or transactional message.
type ContentType string

const (
	ContentRichtext ContentType = "richtext"
	ContentHTML     ContentType = "html"
	ContentMarkdown ContentType = "markdown"
	ContentPlain    ContentType = "plain"
)

// ContentTypeValues lists the accepted ContentType values.
var ContentTypeValues = []string{
	string(ContentRichtext),
	string(ContentHTML),
	string(ContentMarkdown),
	string(ContentPlain),
}

// DefaultMessenger is the messenger used when none is given.
const DefaultMessenger = "email"

// Campaign is a listmonk campaign. The counters are derived by the server.
type Campaign struct {
	ID          int            `json:"id,omitempty"`
	UUID        string         `json:"uuid,omitempty"`
	Name        string         `json:"name"`
	Subject     string         `json:"subject"`
	FromEmail   string         `json:"from_email,omitempty"`
	Body        string         `json:"body,omitempty"`
	AltBody     string         `json:"altbody,omitempty"`
	Status      CampaignStatus `json:"status,omitempty"`
	Type        CampaignType   `json:"type,omitempty"`
	ContentType ContentType    `json:"content_type,omitempty"`
	Messenger   string         `json:"messenger,omitempty"`
	Lists       []CampaignList `json:"lists,omitempty"`
	Tags        []string       `json:"tags,omitempty"`
	TemplateID  int            `json:"template_id,omitempty"`
	SendAt      string         `json:"send_at,omitempty"`
	StartedAt   string         `json:"started_at,omitempty"`

	Views   int `json:"views,omitempty"`
	Clicks  int `json:"clicks,omitempty"`
	Bounces int `json:"bounces,omitempty"`
	Sent    int `json:"sent,omitempty"`
	ToSend  int `json:"to_send,omitempty"`

	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// CampaignList is a target list reference embedded in a Campaign.
type CampaignList struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// CampaignQuery filters GET /api/campaigns.
type CampaignQuery struct {
	PageQuery
	Status CampaignStatus
}

// CreateCampaignRequest is the body of POST /api/campaigns. Status is not
// sent: listmonk always creates drafts, so a requested initial status is
// applied afterwards through the status endpoint.
type CreateCampaignRequest struct {
	Name        string         `json:"name"`
	Subject     string         `json:"subject"`
	Lists       []int          `json:"lists"`
	Status      CampaignStatus `json:"-"`
	Body        *string        `json:"body,omitempty"`
	FromEmail   *string        `json:"from_email,omitempty"`
	ContentType ContentType    `json:"content_type"`
	Messenger   string         `json:"messenger"`
	Type        CampaignType   `json:"type"`
	Tags        []string       `json:"tags,omitempty"`
	TemplateID  *int           `json:"template_id,omitempty"`
	SendAt      *string        `json:"send_at,omitempty"`
}

// UpdateCampaignRequest is the body of PUT /api/campaigns/:id. Status is
// carried alongside for the follow-up transition and never serialized.
type UpdateCampaignRequest struct {
	Name        *string        `json:"name,omitempty"`
	Subject     *string        `json:"subject,omitempty"`
	Lists       []int          `json:"lists,omitempty"`
	Status      CampaignStatus `json:"-"`
	Body        *string        `json:"body,omitempty"`
	AltBody     *string        `json:"altbody,omitempty"`
	FromEmail   *string        `json:"from_email,omitempty"`
	ContentType ContentType    `json:"content_type,omitempty"`
	Tags        []string       `json:"tags,omitempty"`
	TemplateID  *int           `json:"template_id,omitempty"`
	SendAt      *string        `json:"send_at,omitempty"`
}

// CampaignStatusRequest is the body of PUT /api/campaigns/:id/status.
type CampaignStatusRequest struct {
	Status CampaignStatus `json:"status"`
}

// AnalyticsType selects the series returned by the campaign analytics endpoint.
type AnalyticsType string

const (
	AnalyticsViews   AnalyticsType = "views"
	AnalyticsClicks  AnalyticsType = "clicks"
	AnalyticsBounces AnalyticsType = "bounces"
	AnalyticsLinks   AnalyticsType = "links"
)

// AnalyticsTypeValues lists the accepted AnalyticsType values.
var AnalyticsTypeValues = []string{
	string(AnalyticsViews),
	string(AnalyticsClicks),
	string(AnalyticsBounces),
	string(AnalyticsLinks),
}

// AnalyticsQuery selects one analytics series for a campaign.
type AnalyticsQuery struct {
	CampaignID int
	Type       AnalyticsType
	From       string
	To         string
}

// AnalyticsPoint is one entry of an analytics series. Link analytics carry a
// URL instead of a timestamp.
type AnalyticsPoint struct {
	CampaignID int    `json:"campaign_id,omitempty"`
	Count      int    `json:"count"`
	Timestamp  string `json:"timestamp,omitempty"`
	URL        string `json:"url,omitempty"`
}
