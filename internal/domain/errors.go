package domain

import "errors"

// Domain errors.
var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrEmptyTitle       = errors.New("title cannot be empty")
	ErrInvalidStatus    = errors.New("invalid status")
	ErrInvalidPriority  = errors.New("invalid priority")
	ErrInvalidDate      = errors.New("invalid date (expected YYYY-MM-DD)")
	ErrNoFieldsToUpdate = errors.New("no fields to update")
	ErrNotInitialized   = errors.New("data store not initialized (run 'task-tracker init' first)")

	// Issue tracker errors. Remote failures wrap one of these sentinels
	// with the server-reported messages so errors.Is works through layers.
	ErrTrackerNotConfigured = errors.New("issue tracker not configured (set JIRA_BASE_URL, JIRA_EMAIL, and JIRA_API_TOKEN)")
	ErrNoSubtaskType        = errors.New("subtask issue type not found for this project")
	ErrRemoteAuth           = errors.New("issue tracker authentication failed")
	ErrRemoteNotFound       = errors.New("remote issue not found")
	ErrRemoteValidation     = errors.New("issue tracker rejected the request")
	ErrRemoteTimeout        = errors.New("issue tracker request timed out")
	ErrRemote               = errors.New("issue tracker request failed")
)
