// Package jira provides the issue-tracker gateway over the Jira REST v3 API.
package jira

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"github.com/vijay4057/task-tracker/internal/domain"
)

const (
	apiPrefix = "/rest/api/3"

	// Placeholder comments applied when the caller supplies none.
	defaultWorklogComment = "Time logged from Task Tracker"
	defaultUpdateComment  = "Time updated from Task Tracker"

	// startedLayout matches the ISO timestamp the worklog endpoint accepts.
	startedLayout = "2006-01-02T15:04:05.000-0700"
)

// Client is an authenticated Jira API client. A zero-configured client is
// valid to construct; every remote operation fails fast with
// domain.ErrTrackerNotConfigured until all credentials are present.
type Client struct {
	httpClient *http.Client
	cfg        domain.JiraConfig
	baseURL    string
}

// NewClient creates a Client from tracker configuration. In bearer mode
// the HTTP client carries an oauth2 static token source; in basic mode
// each request is signed with the email/token pair.
func NewClient(cfg domain.JiraConfig) *Client {
	var httpClient *http.Client
	if cfg.Auth == domain.AuthBearer && cfg.APIToken != "" {
		src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.APIToken, TokenType: "Bearer"})
		httpClient = oauth2.NewClient(context.Background(), src)
	} else {
		httpClient = &http.Client{}
	}
	httpClient.Timeout = cfg.Timeout()

	return &Client{
		httpClient: httpClient,
		cfg:        cfg,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
	}
}

// Configured reports whether all required credentials are present.
func (c *Client) Configured() bool {
	return c.cfg.Configured()
}

// ready fails fast before any network call when credentials are missing.
func (c *Client) ready() error {
	if !c.Configured() {
		return domain.ErrTrackerNotConfigured
	}
	return nil
}

// issueResponse is the Jira issue payload, reduced to the fields used here.
type issueResponse struct {
	Key    string `json:"key"`
	Fields struct {
		Summary string `json:"summary"`
		Status  struct {
			Name string `json:"name"`
		} `json:"status"`
		Project struct {
			Key string `json:"key"`
		} `json:"project"`
	} `json:"fields"`
}

// GetIssue fetches metadata for a remote issue.
func (c *Client) GetIssue(ctx context.Context, key string) (*domain.RemoteIssue, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}

	var issue issueResponse
	if err := c.do(ctx, http.MethodGet, apiPrefix+"/issue/"+url.PathEscape(key), nil, nil, &issue); err != nil {
		return nil, fmt.Errorf("get issue %s: %w", key, err)
	}

	return &domain.RemoteIssue{
		Key:        issue.Key,
		Summary:    issue.Fields.Summary,
		Status:     issue.Fields.Status.Name,
		ProjectKey: issue.Fields.Project.Key,
	}, nil
}

// projectResponse is the project payload with expanded issue types.
type projectResponse struct {
	IssueTypes []struct {
		ID      string `json:"id"`
		Name    string `json:"name"`
		Subtask bool   `json:"subtask"`
	} `json:"issueTypes"`
}

// GetIssueTypes fetches the issue-type definitions of a project.
func (c *Client) GetIssueTypes(ctx context.Context, projectKey string) ([]domain.IssueType, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}

	query := url.Values{"expand": {"issueTypes"}}
	var project projectResponse
	if err := c.do(ctx, http.MethodGet, apiPrefix+"/project/"+url.PathEscape(projectKey), query, nil, &project); err != nil {
		return nil, fmt.Errorf("get issue types for %s: %w", projectKey, err)
	}

	types := make([]domain.IssueType, 0, len(project.IssueTypes))
	for _, t := range project.IssueTypes {
		types = append(types, domain.IssueType{ID: t.ID, Name: t.Name, Subtask: t.Subtask})
	}
	return types, nil
}

// adfDoc is an Atlassian Document Format wrapper for plain text.
type adfDoc struct {
	Type    string    `json:"type"`
	Version int       `json:"version"`
	Content []adfNode `json:"content"`
}

type adfNode struct {
	Type    string    `json:"type"`
	Text    string    `json:"text,omitempty"`
	Content []adfNode `json:"content,omitempty"`
}

// paragraphDoc wraps text in a single-paragraph ADF document.
func paragraphDoc(text string) adfDoc {
	return adfDoc{
		Type:    "doc",
		Version: 1,
		Content: []adfNode{{
			Type:    "paragraph",
			Content: []adfNode{{Type: "text", Text: text}},
		}},
	}
}

// createIssueRequest is the issue-creation payload.
type createIssueRequest struct {
	Fields createIssueFields `json:"fields"`
}

type createIssueFields struct {
	Project     keyRef `json:"project"`
	Parent      keyRef `json:"parent"`
	Summary     string `json:"summary"`
	Description adfDoc `json:"description"`
	IssueType   idRef  `json:"issuetype"`
}

type keyRef struct {
	Key string `json:"key"`
}

type idRef struct {
	ID string `json:"id"`
}

type createIssueResponse struct {
	ID  string `json:"id"`
	Key string `json:"key"`
}

// CreateSubtask creates a subtask under the parent issue. Three sequential
// round trips: resolve the parent's project, resolve that project's
// subtask-capable issue type, then create. Each step's output parametrizes
// the next, so none can be skipped or reordered.
func (c *Client) CreateSubtask(ctx context.Context, parentKey, summary, description string) (*domain.CreatedIssue, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}

	parent, err := c.GetIssue(ctx, parentKey)
	if err != nil {
		return nil, err
	}

	types, err := c.GetIssueTypes(ctx, parent.ProjectKey)
	if err != nil {
		return nil, err
	}

	var subtaskType *domain.IssueType
	for i := range types {
		if types[i].Subtask {
			subtaskType = &types[i]
			break
		}
	}
	if subtaskType == nil {
		return nil, fmt.Errorf("project %s: %w", parent.ProjectKey, domain.ErrNoSubtaskType)
	}

	req := createIssueRequest{
		Fields: createIssueFields{
			Project:     keyRef{Key: parent.ProjectKey},
			Parent:      keyRef{Key: parentKey},
			Summary:     summary,
			Description: paragraphDoc(description),
			IssueType:   idRef{ID: subtaskType.ID},
		},
	}
	var created createIssueResponse
	if err := c.do(ctx, http.MethodPost, apiPrefix+"/issue", nil, req, &created); err != nil {
		return nil, fmt.Errorf("create subtask under %s: %w", parentKey, err)
	}

	return &domain.CreatedIssue{
		Key: created.Key,
		ID:  created.ID,
		URL: c.cfg.BrowseURL(created.Key),
	}, nil
}

// worklogRequest is the work-log payload. Started is omitted entirely
// when unset so the remote system applies its own default.
type worklogRequest struct {
	TimeSpentSeconds int    `json:"timeSpentSeconds"`
	Comment          string `json:"comment"`
	Started          string `json:"started,omitempty"`
}

type worklogResponse struct {
	ID string `json:"id"`
}

// LogWork posts a work log against an issue and returns the remote
// work-log ID.
func (c *Client) LogWork(ctx context.Context, issueKey string, timeSpentSeconds int, comment string, started *time.Time) (string, error) {
	if err := c.ready(); err != nil {
		return "", err
	}

	if comment == "" {
		comment = defaultWorklogComment
	}
	req := worklogRequest{
		TimeSpentSeconds: timeSpentSeconds,
		Comment:          comment,
	}
	if started != nil {
		req.Started = started.Format(startedLayout)
	}

	var wl worklogResponse
	path := apiPrefix + "/issue/" + url.PathEscape(issueKey) + "/worklog"
	if err := c.do(ctx, http.MethodPost, path, nil, req, &wl); err != nil {
		return "", fmt.Errorf("log work on %s: %w", issueKey, err)
	}
	return wl.ID, nil
}

// UpdateWorklog updates an existing work log.
func (c *Client) UpdateWorklog(ctx context.Context, issueKey, worklogID string, timeSpentSeconds int, comment string) (string, error) {
	if err := c.ready(); err != nil {
		return "", err
	}

	if comment == "" {
		comment = defaultUpdateComment
	}
	req := worklogRequest{
		TimeSpentSeconds: timeSpentSeconds,
		Comment:          comment,
	}

	var wl worklogResponse
	path := apiPrefix + "/issue/" + url.PathEscape(issueKey) + "/worklog/" + url.PathEscape(worklogID)
	if err := c.do(ctx, http.MethodPut, path, nil, req, &wl); err != nil {
		return "", fmt.Errorf("update worklog %s on %s: %w", worklogID, issueKey, err)
	}
	return wl.ID, nil
}

// errorResponse is Jira's structured error payload.
type errorResponse struct {
	ErrorMessages []string          `json:"errorMessages"`
	Errors        map[string]string `json:"errors"`
}

// do performs one authenticated request and decodes the response into out.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.cfg.Auth != domain.AuthBearer {
		req.SetBasicAuth(c.cfg.Email, c.cfg.APIToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return fmt.Errorf("%v: %w", err, domain.ErrRemoteTimeout)
		}
		return fmt.Errorf("%v: %w", err, domain.ErrRemote)
	}
	respBody, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return remoteError(resp.StatusCode, respBody)
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}

// remoteError maps an HTTP failure onto the domain error taxonomy,
// preferring the server's joined error messages over raw transport text.
func remoteError(status int, body []byte) error {
	msg := remoteMessage(body)
	if msg == "" {
		msg = fmt.Sprintf("status %d", status)
	}

	var sentinel error
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		sentinel = domain.ErrRemoteAuth
	case status == http.StatusNotFound:
		sentinel = domain.ErrRemoteNotFound
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		sentinel = domain.ErrRemoteValidation
	case status == http.StatusRequestTimeout || status == http.StatusGatewayTimeout:
		sentinel = domain.ErrRemoteTimeout
	default:
		sentinel = domain.ErrRemote
	}
	return fmt.Errorf("%s: %w", msg, sentinel)
}

// remoteMessage extracts Jira's reported messages from an error payload.
func remoteMessage(body []byte) string {
	var payload errorResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return strings.TrimSpace(string(body))
	}
	msgs := payload.ErrorMessages
	for _, v := range payload.Errors {
		msgs = append(msgs, v)
	}
	if len(msgs) == 0 {
		return strings.TrimSpace(string(body))
	}
	return strings.Join(msgs, ", ")
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// Ensure Client implements the gateway port.
var _ domain.IssueTracker = (*Client)(nil)
