package tools

import (
	"context"
	"encoding/json"

	"github.com/ignite/listmonk-mcp/internal/domain"
)

// API is the listmonk surface the tools use. *listmonk.Client satisfies it.
type API interface {
	GetSubscribers(ctx context.Context, q domain.SubscriberQuery) (domain.Page[domain.Subscriber], error)
	GetSubscriber(ctx context.Context, id int) (domain.Subscriber, error)
	CreateSubscriber(ctx context.Context, req domain.CreateSubscriberRequest) (domain.Subscriber, error)
	UpdateSubscriber(ctx context.Context, id int, req domain.UpdateSubscriberRequest) (domain.Subscriber, error)
	DeleteSubscriber(ctx context.Context, id int) error

	GetLists(ctx context.Context, q domain.ListQuery) (domain.Page[domain.MailingList], error)
	GetList(ctx context.Context, id int) (domain.MailingList, error)
	CreateList(ctx context.Context, req domain.CreateListRequest) (domain.MailingList, error)
	UpdateList(ctx context.Context, id int, req domain.UpdateListRequest) (domain.MailingList, error)
	DeleteList(ctx context.Context, id int) error

	GetCampaigns(ctx context.Context, q domain.CampaignQuery) (domain.Page[domain.Campaign], error)
	GetCampaign(ctx context.Context, id int) (domain.Campaign, error)
	CreateCampaign(ctx context.Context, req domain.CreateCampaignRequest) (domain.Campaign, error)
	UpdateCampaign(ctx context.Context, id int, req domain.UpdateCampaignRequest) (domain.Campaign, error)
	UpdateCampaignStatus(ctx context.Context, id int, status domain.CampaignStatus) (domain.Campaign, error)
	DeleteCampaign(ctx context.Context, id int) error
	GetCampaignAnalytics(ctx context.Context, q domain.AnalyticsQuery) ([]domain.AnalyticsPoint, error)

	GetTemplates(ctx context.Context) ([]domain.Template, error)
	GetTemplate(ctx context.Context, id int) (domain.Template, error)
	GetTemplatePreview(ctx context.Context, id int) (string, error)
	CreateTemplate(ctx context.Context, req domain.CreateTemplateRequest) (domain.Template, error)
	UpdateTemplate(ctx context.Context, id int, req domain.UpdateTemplateRequest) (domain.Template, error)
	SetDefaultTemplate(ctx context.Context, id int) (json.RawMessage, error)
	DeleteTemplate(ctx context.Context, id int) error

	GetHealth(ctx context.Context) (domain.Health, error)
	GetDashboardCounts(ctx context.Context) (domain.DashboardCounts, error)
	SendTransactional(ctx context.Context, req domain.TransactionalMessageRequest) (bool, error)
	GetMedia(ctx context.Context, q domain.PageQuery) (domain.Page[domain.Media], error)
}
