package campaign_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignite/listmonk-mcp/internal/domain"
	"github.com/ignite/listmonk-mcp/internal/schedule"
	"github.com/ignite/listmonk-mcp/internal/service/campaign"
)

// memGateway is an in-memory listmonk stand-in that records every call.
type memGateway struct {
	mu        sync.Mutex
	nextID    int
	campaigns map[int]*domain.Campaign
	calls     []string

	omitID        bool
	createErr     error
	updateErr     error
	transitionErr error
	lastCreate    domain.CreateCampaignRequest
	lastUpdate    domain.UpdateCampaignRequest
}

func newMemGateway() *memGateway {
	return &memGateway{nextID: 1, campaigns: make(map[int]*domain.Campaign)}
}

func (m *memGateway) CreateCampaign(_ context.Context, req domain.CreateCampaignRequest) (domain.Campaign, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, "create")
	m.lastCreate = req
	if m.createErr != nil {
		return domain.Campaign{}, m.createErr
	}
	c := domain.Campaign{Name: req.Name, Subject: req.Subject, Status: domain.CampaignDraft}
	if !m.omitID {
		c.ID = m.nextID
		m.nextID++
		cp := c
		m.campaigns[c.ID] = &cp
	}
	return c, nil
}

func (m *memGateway) UpdateCampaign(_ context.Context, id int, req domain.UpdateCampaignRequest) (domain.Campaign, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, "update")
	m.lastUpdate = req
	if m.updateErr != nil {
		return domain.Campaign{}, m.updateErr
	}
	c, ok := m.campaigns[id]
	if !ok {
		return domain.Campaign{}, errors.New("not found")
	}
	if req.Name != nil {
		c.Name = *req.Name
	}
	return *c, nil
}

func (m *memGateway) UpdateCampaignStatus(_ context.Context, id int, status domain.CampaignStatus) (domain.Campaign, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, "status")
	if m.transitionErr != nil {
		return domain.Campaign{}, m.transitionErr
	}
	c, ok := m.campaigns[id]
	if !ok {
		return domain.Campaign{}, errors.New("not found")
	}
	c.Status = status
	return *c, nil
}

func (m *memGateway) callLog() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

func strPtr(s string) *string { return &s }

func TestCreateDraftIsSingleCall(t *testing.T) {
	gw := newMemGateway()
	svc := campaign.NewService(gw)

	c, err := svc.Create(context.Background(), domain.CreateCampaignRequest{Name: "n", Subject: "s", Lists: []int{1}})
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignDraft, c.Status)
	assert.Equal(t, []string{"create"}, gw.callLog())

	_, err = svc.Create(context.Background(), domain.CreateCampaignRequest{Name: "n", Subject: "s", Lists: []int{1}, Status: domain.CampaignDraft})
	require.NoError(t, err)
	assert.Equal(t, []string{"create", "create"}, gw.callLog())
}

func TestCreateWithStatusTransitions(t *testing.T) {
	gw := newMemGateway()
	svc := campaign.NewService(gw)

	c, err := svc.Create(context.Background(), domain.CreateCampaignRequest{
		Name:    "n",
		Subject: "s",
		Lists:   []int{1},
		Status:  domain.CampaignScheduled,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignScheduled, c.Status)
	assert.Equal(t, []string{"create", "status"}, gw.callLog())
}

func TestCreateFailureSkipsTransition(t *testing.T) {
	gw := newMemGateway()
	gw.createErr = errors.New("boom")
	svc := campaign.NewService(gw)

	_, err := svc.Create(context.Background(), domain.CreateCampaignRequest{Name: "n", Status: domain.CampaignRunning})
	require.EqualError(t, err, "boom")
	assert.Equal(t, []string{"create"}, gw.callLog())
}

func TestCreateWithoutIDReportsMissingID(t *testing.T) {
	gw := newMemGateway()
	gw.omitID = true
	svc := campaign.NewService(gw)

	_, err := svc.Create(context.Background(), domain.CreateCampaignRequest{Name: "n", Status: domain.CampaignScheduled})
	assert.ErrorIs(t, err, campaign.ErrMissingID)
	assert.Equal(t, []string{"create"}, gw.callLog())
}

func TestCreateTransitionFailureKeepsDraft(t *testing.T) {
	gw := newMemGateway()
	remote := errors.New("API error (status 400): invalid status")
	gw.transitionErr = remote
	svc := campaign.NewService(gw)

	c, err := svc.Create(context.Background(), domain.CreateCampaignRequest{Name: "n", Status: domain.CampaignScheduled})
	require.Error(t, err)
	assert.ErrorIs(t, err, campaign.ErrTransitionFailed)
	assert.ErrorIs(t, err, remote)
	assert.Equal(t, 1, c.ID)
	assert.Equal(t, domain.CampaignDraft, c.Status)
	assert.Equal(t, []string{"create", "status"}, gw.callLog())
}

func TestUpdate(t *testing.T) {
	gw := newMemGateway()
	svc := campaign.NewService(gw)
	created, err := svc.Create(context.Background(), domain.CreateCampaignRequest{Name: "old"})
	require.NoError(t, err)

	c, err := svc.Update(context.Background(), created.ID, domain.UpdateCampaignRequest{Name: strPtr("new")})
	require.NoError(t, err)
	assert.Equal(t, "new", c.Name)
	assert.Equal(t, []string{"create", "update"}, gw.callLog())

	c, err = svc.Update(context.Background(), created.ID, domain.UpdateCampaignRequest{Status: domain.CampaignPaused})
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignPaused, c.Status)
	assert.Equal(t, []string{"create", "update", "update", "status"}, gw.callLog())
}

func TestUpdateFailureSkipsTransition(t *testing.T) {
	gw := newMemGateway()
	gw.updateErr = errors.New("API error (status 404): not found")
	svc := campaign.NewService(gw)

	_, err := svc.Update(context.Background(), 9, domain.UpdateCampaignRequest{Status: domain.CampaignRunning})
	require.Error(t, err)
	assert.NotErrorIs(t, err, campaign.ErrTransitionFailed)
	assert.Equal(t, []string{"update"}, gw.callLog())
}

func TestSendAtIsConvertedToUTC(t *testing.T) {
	gw := newMemGateway()
	svc := campaign.NewService(gw)
	loc := time.FixedZone("UTC+2", 2*60*60)
	svc.SetScheduler(schedule.Converter{
		Now:      func() time.Time { return time.Date(2024, 7, 24, 8, 0, 0, 0, loc) },
		Location: loc,
	})

	_, err := svc.Create(context.Background(), domain.CreateCampaignRequest{Name: "n", SendAt: strPtr("2024-07-25 10:00:00")})
	require.NoError(t, err)
	require.NotNil(t, gw.lastCreate.SendAt)
	assert.Equal(t, "2024-07-25T08:00:00Z", *gw.lastCreate.SendAt)

	_, err = svc.Update(context.Background(), 1, domain.UpdateCampaignRequest{SendAt: strPtr("garbage")})
	require.NoError(t, err)
	assert.Equal(t, "garbage", *gw.lastUpdate.SendAt)
}
