package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	adapterreporting "github.com/thermovote/thermovote/internal/adapters/reporting"
	"github.com/thermovote/thermovote/internal/adapters/storage"
	"github.com/thermovote/thermovote/internal/adapters/web/middleware"
	"github.com/thermovote/thermovote/internal/core/domain"
	"github.com/thermovote/thermovote/internal/core/services/history"
	"github.com/thermovote/thermovote/internal/core/services/presence"
	"github.com/thermovote/thermovote/internal/core/services/reporting"
	"github.com/thermovote/thermovote/internal/core/services/votes"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	store := storage.NewMemoryAdapter()
	require.NoError(t, store.SeedZones(context.Background(), domain.SeedZones()))

	tracker := presence.NewTracker(store, presence.DefaultTTL)
	voteService := votes.NewService(store, store, store, tracker, votes.DefaultWindow)
	seriesBuilder := history.NewSeriesBuilder(store)
	reportGenerator := reporting.NewComfortReportGenerator(voteService)

	srv := NewServer(":0", t.TempDir(), voteService, seriesBuilder, tracker, reportGenerator, adapterreporting.NewPDFExporter())

	ts := httptest.NewServer(SetupRoutes(srv))
	t.Cleanup(ts.Close)
	return ts
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func TestListZones(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/zones")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	// The middleware mints a session token when the client sends none
	assert.NotEmpty(t, resp.Header.Get(middleware.SessionHeader))

	var views []domain.ZoneView
	decodeBody(t, resp, &views)
	require.Len(t, views, 5)

	byID := make(map[string]domain.ZoneView)
	for _, v := range views {
		byID[v.ID] = v
	}
	assert.Equal(t, "Standing Desks", byID["standing"].Name)
	assert.Equal(t, 22.3, byID["standing"].Temperature)
	assert.Zero(t, byID["standing"].HotVotes)
}

func TestSessionHeaderEchoedBack(t *testing.T) {
	ts := newTestServer(t)

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/api/zones", nil)
	require.NoError(t, err)
	req.Header.Set(middleware.SessionHeader, "my-session-token")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "my-session-token", resp.Header.Get(middleware.SessionHeader))
}

func TestGetZone(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/zones/recharge")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var zone domain.Zone
	decodeBody(t, resp, &zone)
	assert.Equal(t, "Recharge Room", zone.Name)
	assert.Equal(t, 23.1, zone.Temperature)
}

func TestGetZone_NotFound(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/zones/basement")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestVote(t *testing.T) {
	ts := newTestServer(t)

	body := bytes.NewBufferString(`{"zoneId":"zone-a","voteType":"hot"}`)
	resp, err := http.Post(ts.URL+"/api/vote", "application/json", body)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var view domain.ZoneView
	decodeBody(t, resp, &view)
	assert.Equal(t, 1, view.HotVotes)
	assert.Equal(t, 0, view.ColdVotes)
	assert.Equal(t, 22.1, view.Temperature)
}

func TestVote_InvalidType(t *testing.T) {
	ts := newTestServer(t)

	body := bytes.NewBufferString(`{"zoneId":"zone-a","voteType":"warm"}`)
	resp, err := http.Post(ts.URL+"/api/vote", "application/json", body)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestVote_MalformedBody(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Post(ts.URL+"/api/vote", "application/json", bytes.NewBufferString("{"))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestVote_UnknownZone(t *testing.T) {
	ts := newTestServer(t)

	body := bytes.NewBufferString(`{"zoneId":"basement","voteType":"cold"}`)
	resp, err := http.Post(ts.URL+"/api/vote", "application/json", body)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestVoteHistory(t *testing.T) {
	ts := newTestServer(t)

	// One fresh vote must land in the newest bucket
	body := bytes.NewBufferString(`{"zoneId":"zone-b","voteType":"cold"}`)
	resp, err := http.Post(ts.URL+"/api/vote", "application/json", body)
	require.NoError(t, err)
	resp.Body.Close()

	resp, err = http.Get(ts.URL + "/api/zones/zone-b/vote-history?hours=1")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var series []domain.HistoryBucket
	decodeBody(t, resp, &series)
	require.Len(t, series, 6)

	last := series[len(series)-1]
	assert.Equal(t, 1, last.ColdVotes)
	assert.True(t, last.Timestamp.After(series[0].Timestamp))
	for i := 1; i < len(series); i++ {
		assert.Equal(t, 10*time.Minute, series[i].Timestamp.Sub(series[i-1].Timestamp))
	}
}

func TestVoteHistory_DefaultsToSixHours(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/zones/zone-a/vote-history")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var series []domain.HistoryBucket
	decodeBody(t, resp, &series)
	assert.Len(t, series, 36)
}

func TestVoteHistory_BadHours(t *testing.T) {
	ts := newTestServer(t)

	for _, hours := range []string{"0", "-3", "200", "abc"} {
		resp, err := http.Get(fmt.Sprintf("%s/api/zones/zone-a/vote-history?hours=%s", ts.URL, hours))
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "hours=%s", hours)
	}
}

func TestVoteHistory_UnknownZone(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/zones/basement/vote-history")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestStats(t *testing.T) {
	ts := newTestServer(t)

	body := bytes.NewBufferString(`{"zoneId":"zone-a","voteType":"hot"}`)
	resp, err := http.Post(ts.URL+"/api/vote", "application/json", body)
	require.NoError(t, err)
	resp.Body.Close()

	resp, err = http.Get(ts.URL + "/api/stats")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var stats domain.SystemStats
	decodeBody(t, resp, &stats)
	assert.Equal(t, 1, stats.TotalVotes)
	assert.Equal(t, 1, stats.HotVotes)
	assert.Len(t, stats.Zones, 5)
	// Both requests ran through the session middleware
	assert.GreaterOrEqual(t, stats.ConnectedUsers, 1)
}

func TestComfortReport(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/reports/comfort")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))

	buf := make([]byte, 4)
	_, err = resp.Body.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(buf))
}

func TestMethodNotAllowed(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/vote")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)

	resp, err = http.Post(ts.URL+"/api/zones", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestMetricsEndpoint(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
