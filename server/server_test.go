package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ar0000n/learning-planner/planner"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	orc, err := planner.NewOrchestrator(planner.MockLLM{})
	require.NoError(t, err)
	srv, err := New(orc)
	require.NoError(t, err)
	ts := httptest.NewServer(srv.Routes())
	t.Cleanup(ts.Close)
	return ts
}

func createPlan(t *testing.T, ts *httptest.Server, body string) (*http.Response, planResp) {
	t.Helper()
	resp, err := http.Post(ts.URL+"/api/plans", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	var out planResp
	if resp.StatusCode == http.StatusOK {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	}
	return resp, out
}

func TestPlanCreateAndFetch(t *testing.T) {
	ts := newTestServer(t)

	resp, created := createPlan(t, ts, `{"topic":"Docker","familiarity":2}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, created.PlanID)
	require.Equal(t, "Docker", created.Record.Topic)
	require.Equal(t, "A little familiar", created.Record.Familiarity.Label)
	require.NotEmpty(t, created.Record.DraftPlan)
	require.NotEmpty(t, created.Record.RefinedPlan)

	getResp, err := http.Get(ts.URL + "/api/plans/" + created.PlanID)
	require.NoError(t, err)
	defer getResp.Body.Close()
	require.Equal(t, http.StatusOK, getResp.StatusCode)

	var fetched planResp
	require.NoError(t, json.NewDecoder(getResp.Body).Decode(&fetched))
	require.Equal(t, created.PlanID, fetched.PlanID)
	require.Equal(t, created.Record.RefinedPlan, fetched.Record.RefinedPlan)
}

func TestPlanCreateRejectsBadFamiliarity(t *testing.T) {
	ts := newTestServer(t)
	resp, _ := createPlan(t, ts, `{"topic":"Docker","familiarity":9}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestPlanCreateRejectsEmptyTopic(t *testing.T) {
	ts := newTestServer(t)
	resp, _ := createPlan(t, ts, `{"topic":"  ","familiarity":1}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestPlanCreateRejectsBadJSON(t *testing.T) {
	ts := newTestServer(t)
	resp, _ := createPlan(t, ts, `{not json`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestPlanFetchUnknownID(t *testing.T) {
	ts := newTestServer(t)
	resp, err := http.Get(ts.URL + "/api/plans/no-such-id")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPlanEndpointsRejectWrongMethods(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/plans")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)

	req, err := http.NewRequest(http.MethodDelete, ts.URL+"/api/plans/some-id", nil)
	require.NoError(t, err)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}
