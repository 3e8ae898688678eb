package domain

// ListType controls whether a list is visible on public subscription forms.
type ListType string

const (
	ListPublic  ListType = "public"
	ListPrivate ListType = "private"
)

// ListTypeValues lists the accepted ListType values.
var ListTypeValues = []string{string(ListPublic), string(ListPrivate)}

// OptinType is the subscription confirmation mode of a list.
type OptinType string

const (
	OptinSingle OptinType = "single"
	OptinDouble OptinType = "double"
)

// OptinTypeValues lists the accepted OptinType values.
var OptinTypeValues = []string{string(OptinSingle), string(OptinDouble)}

// MailingList is a listmonk subscriber list. SubscriberCount is derived by
// the server and never sent.
type MailingList struct {
	ID              int       `json:"id,omitempty"`
	UUID            string    `json:"uuid,omitempty"`
	Name            string    `json:"name"`
	Type            ListType  `json:"type,omitempty"`
	Optin           OptinType `json:"optin,omitempty"`
	Tags            []string  `json:"tags,omitempty"`
	Description     string    `json:"description,omitempty"`
	SubscriberCount int       `json:"subscriber_count,omitempty"`
	CreatedAt       string    `json:"created_at,omitempty"`
	UpdatedAt       string    `json:"updated_at,omitempty"`
}

// ListQuery filters GET /api/lists.
type ListQuery struct {
	PageQuery
	Tag string
}

// CreateListRequest is the body of POST /api/lists.
type CreateListRequest struct {
	Name        string    `json:"name"`
	Type        ListType  `json:"type"`
	Optin       OptinType `json:"optin"`
	Tags        []string  `json:"tags,omitempty"`
	Description *string   `json:"description,omitempty"`
}

// UpdateListRequest is the body of PUT /api/lists/:id.
type UpdateListRequest struct {
	Name        *string   `json:"name,omitempty"`
	Type        ListType  `json:"type,omitempty"`
	Optin       OptinType `json:"optin,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
	Description *string   `json:"description,omitempty"`
}
