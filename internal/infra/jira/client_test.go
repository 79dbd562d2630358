package jira

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vijay4057/task-tracker/internal/domain"
)

func testConfig(baseURL string) domain.JiraConfig {
	return domain.JiraConfig{
		BaseURL:  baseURL,
		Email:    "dev@example.com",
		APIToken: "token123",
	}
}

// recordedRequest captures one request seen by the fake server.
type recordedRequest struct {
	Method string
	Path   string
	Query  string
	Body   map[string]any
}

func recordRequest(t *testing.T, r *http.Request) recordedRequest {
	t.Helper()
	rec := recordedRequest{Method: r.Method, Path: r.URL.Path, Query: r.URL.RawQuery}
	if r.Body != nil && r.ContentLength != 0 {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&rec.Body))
	}
	return rec
}

func TestClient_NotConfiguredFailsFast(t *testing.T) {
	client := NewClient(domain.JiraConfig{})

	_, err := client.GetIssue(context.Background(), "PROJ-1")
	assert.ErrorIs(t, err, domain.ErrTrackerNotConfigured)

	_, err = client.CreateSubtask(context.Background(), "PROJ-1", "s", "d")
	assert.ErrorIs(t, err, domain.ErrTrackerNotConfigured)

	_, err = client.LogWork(context.Background(), "PROJ-1", 600, "", nil)
	assert.ErrorIs(t, err, domain.ErrTrackerNotConfigured)

	assert.False(t, client.Configured())
}

func TestClient_GetIssue(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		assert.Equal(t, "/rest/api/3/issue/PROJ-1", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"key": "PROJ-1",
			"fields": {
				"summary": "Fix login",
				"status": {"name": "In Progress"},
				"project": {"key": "PROJ"}
			}
		}`))
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))
	issue, err := client.GetIssue(context.Background(), "PROJ-1")
	require.NoError(t, err)

	assert.Equal(t, "PROJ-1", issue.Key)
	assert.Equal(t, "Fix login", issue.Summary)
	assert.Equal(t, "In Progress", issue.Status)
	assert.Equal(t, "PROJ", issue.ProjectKey)
	assert.Contains(t, gotAuth, "Basic ")
}

func TestClient_BearerAuth(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"key":"PROJ-1","fields":{}}`))
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.Auth = domain.AuthBearer
	client := NewClient(cfg)

	_, err := client.GetIssue(context.Background(), "PROJ-1")
	require.NoError(t, err)
	assert.Equal(t, "Bearer token123", gotAuth)
}

func TestClient_CreateSubtask(t *testing.T) {
	var requests []recordedRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests = append(requests, recordRequest(t, r))
		switch r.URL.Path {
		case "/rest/api/3/issue/PROJ-1":
			_, _ = w.Write([]byte(`{"key":"PROJ-1","fields":{"summary":"Parent","project":{"key":"PROJ"}}}`))
		case "/rest/api/3/project/PROJ":
			_, _ = w.Write([]byte(`{"issueTypes":[
				{"id":"10001","name":"Story","subtask":false},
				{"id":"10003","name":"Sub-task","subtask":true}
			]}`))
		case "/rest/api/3/issue":
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"id":"20001","key":"PROJ-2"}`))
		default:
			t.Errorf("unexpected request to %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))
	created, err := client.CreateSubtask(context.Background(), "PROJ-1", "Write docs", "Document the API")
	require.NoError(t, err)

	assert.Equal(t, "PROJ-2", created.Key)
	assert.Equal(t, "20001", created.ID)
	assert.Equal(t, srv.URL+"/browse/PROJ-2", created.URL)

	// Three round trips, each feeding the next.
	require.Len(t, requests, 3)
	assert.Equal(t, "/rest/api/3/issue/PROJ-1", requests[0].Path)
	assert.Equal(t, "/rest/api/3/project/PROJ", requests[1].Path)
	assert.Equal(t, "expand=issueTypes", requests[1].Query)
	assert.Equal(t, http.MethodPost, requests[2].Method)

	fields, ok := requests[2].Body["fields"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Write docs", fields["summary"])
	assert.Equal(t, map[string]any{"key": "PROJ"}, fields["project"])
	assert.Equal(t, map[string]any{"key": "PROJ-1"}, fields["parent"])
	assert.Equal(t, map[string]any{"id": "10003"}, fields["issuetype"])

	// Description is wrapped in a single-paragraph ADF document.
	desc, ok := fields["description"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "doc", desc["type"])
	assert.Equal(t, float64(1), desc["version"])
}

func TestClient_CreateSubtask_NoSubtaskType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/rest/api/3/issue/PROJ-1":
			_, _ = w.Write([]byte(`{"key":"PROJ-1","fields":{"project":{"key":"PROJ"}}}`))
		case "/rest/api/3/project/PROJ":
			_, _ = w.Write([]byte(`{"issueTypes":[{"id":"10001","name":"Story","subtask":false}]}`))
		default:
			t.Errorf("creation attempted despite missing subtask type: %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))
	_, err := client.CreateSubtask(context.Background(), "PROJ-1", "s", "d")
	assert.ErrorIs(t, err, domain.ErrNoSubtaskType)
}

func TestClient_LogWork(t *testing.T) {
	var requests []recordedRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests = append(requests, recordRequest(t, r))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"30001"}`))
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))

	t.Run("explicit comment and start time", func(t *testing.T) {
		requests = nil
		started := time.Date(2024, 1, 10, 9, 30, 0, 0, time.UTC)
		id, err := client.LogWork(context.Background(), "PROJ-1", 1800, "pairing", &started)
		require.NoError(t, err)
		assert.Equal(t, "30001", id)

		require.Len(t, requests, 1)
		assert.Equal(t, http.MethodPost, requests[0].Method)
		assert.Equal(t, "/rest/api/3/issue/PROJ-1/worklog", requests[0].Path)
		assert.Equal(t, float64(1800), requests[0].Body["timeSpentSeconds"])
		assert.Equal(t, "pairing", requests[0].Body["comment"])
		assert.Equal(t, "2024-01-10T09:30:00.000+0000", requests[0].Body["started"])
	})

	t.Run("empty comment gets placeholder, nil start omitted", func(t *testing.T) {
		requests = nil
		_, err := client.LogWork(context.Background(), "PROJ-1", 600, "", nil)
		require.NoError(t, err)

		require.Len(t, requests, 1)
		assert.Equal(t, "Time logged from Task Tracker", requests[0].Body["comment"])
		_, hasStarted := requests[0].Body["started"]
		assert.False(t, hasStarted)
	})
}

func TestClient_UpdateWorklog(t *testing.T) {
	var requests []recordedRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests = append(requests, recordRequest(t, r))
		_, _ = w.Write([]byte(`{"id":"30001"}`))
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))
	id, err := client.UpdateWorklog(context.Background(), "PROJ-1", "30001", 900, "")
	require.NoError(t, err)
	assert.Equal(t, "30001", id)

	require.Len(t, requests, 1)
	assert.Equal(t, http.MethodPut, requests[0].Method)
	assert.Equal(t, "/rest/api/3/issue/PROJ-1/worklog/30001", requests[0].Path)
	assert.Equal(t, "Time updated from Task Tracker", requests[0].Body["comment"])
}

func TestClient_ErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
		wantMsg string
	}{
		{
			name:    "401 maps to auth",
			status:  http.StatusUnauthorized,
			body:    `{"errorMessages":["Authentication failed"]}`,
			wantErr: domain.ErrRemoteAuth,
			wantMsg: "Authentication failed",
		},
		{
			name:    "403 maps to auth",
			status:  http.StatusForbidden,
			body:    `{}`,
			wantErr: domain.ErrRemoteAuth,
		},
		{
			name:    "404 maps to not found",
			status:  http.StatusNotFound,
			body:    `{"errorMessages":["Issue does not exist or you do not have permission to see it."]}`,
			wantErr: domain.ErrRemoteNotFound,
			wantMsg: "Issue does not exist",
		},
		{
			name:    "400 maps to validation with joined field errors",
			status:  http.StatusBadRequest,
			body:    `{"errorMessages":[],"errors":{"summary":"Summary is required"}}`,
			wantErr: domain.ErrRemoteValidation,
			wantMsg: "Summary is required",
		},
		{
			name:    "504 maps to timeout",
			status:  http.StatusGatewayTimeout,
			body:    ``,
			wantErr: domain.ErrRemoteTimeout,
		},
		{
			name:    "500 maps to generic remote error",
			status:  http.StatusInternalServerError,
			body:    `unexpected`,
			wantErr: domain.ErrRemote,
			wantMsg: "unexpected",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := NewClient(testConfig(srv.URL))
			_, err := client.GetIssue(context.Background(), "PROJ-1")
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}
