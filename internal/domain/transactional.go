package domain

// TransactionalMessageRequest is the body of POST /api/tx. Exactly one of
// SubscriberEmail/SubscriberID and exactly one of TemplateID/TemplateName is
// set; Data is passed through to the template without validation.
type TransactionalMessageRequest struct {
	SubscriberEmail string              `json:"subscriber_email,omitempty"`
	SubscriberID    int                 `json:"subscriber_id,omitempty"`
	TemplateID      int                 `json:"template_id,omitempty"`
	TemplateName    string              `json:"template_name,omitempty"`
	Data            map[string]any      `json:"data,omitempty"`
	Headers         []map[string]string `json:"headers,omitempty"`
	Messenger       string              `json:"messenger"`
	ContentType     ContentType         `json:"content_type,omitempty"`
}
