package domain

// SubscriberStatus enumerates the account states of a subscriber.
type SubscriberStatus string

const (
	SubscriberEnabled     SubscriberStatus = "enabled"
	SubscriberBlocklisted SubscriberStatus = "blocklisted"
)

// SubscriberStatusValues lists the accepted SubscriberStatus values.
var SubscriberStatusValues = []string{string(SubscriberEnabled), string(SubscriberBlocklisted)}

// SubscriptionStatus is the state of one subscriber's membership in a list.
type SubscriptionStatus string

const (
	SubscriptionConfirmed    SubscriptionStatus = "confirmed"
	SubscriptionUnconfirmed  SubscriptionStatus = "unconfirmed"
	SubscriptionUnsubscribed SubscriptionStatus = "unsubscribed"
)

// Subscriber is a single recipient known to listmonk.
type Subscriber struct {
	ID        int              `json:"id,omitempty"`
	UUID      string           `json:"uuid,omitempty"`
	Email     string           `json:"email"`
	Name      string           `json:"name"`
	Status    SubscriberStatus `json:"status"`
	Attribs   map[string]any   `json:"attribs,omitempty"`
	Lists     []SubscriberList `json:"lists,omitempty"`
	CreatedAt string           `json:"created_at,omitempty"`
	UpdatedAt string           `json:"updated_at,omitempty"`
}

// SubscriberList is a list membership as embedded in a Subscriber.
type SubscriberList struct {
	ID                 int                `json:"id"`
	UUID               string             `json:"uuid,omitempty"`
	Name               string             `json:"name"`
	Type               ListType           `json:"type,omitempty"`
	Tags               []string           `json:"tags,omitempty"`
	SubscriptionStatus SubscriptionStatus `json:"subscription_status"`
	CreatedAt          string             `json:"created_at,omitempty"`
	UpdatedAt          string             `json:"updated_at,omitempty"`
}

// SubscriberQuery filters GET /api/subscribers.
type SubscriberQuery struct {
	PageQuery
	ListID *int
	Status SubscriberStatus
}

// CreateSubscriberRequest is the body of POST /api/subscribers.
// Email, name and status are required.
type CreateSubscriberRequest struct {
	Email                   string           `json:"email"`
	Name                    string           `json:"name"`
	Status                  SubscriberStatus `json:"status"`
	Lists                   []int            `json:"lists,omitempty"`
	Attribs                 map[string]any   `json:"attribs,omitempty"`
	PreconfirmSubscriptions *bool            `json:"preconfirm_subscriptions,omitempty"`
}

// UpdateSubscriberRequest is the body of PUT /api/subscribers/:id. Nil fields
// are omitted.
type UpdateSubscriberRequest struct {
	Email   *string          `json:"email,omitempty"`
	Name    *string          `json:"name,omitempty"`
	Status  SubscriberStatus `json:"status,omitempty"`
	Lists   []int            `json:"lists,omitempty"`
	Attribs map[string]any   `json:"attribs,omitempty"`
}
