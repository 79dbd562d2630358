package usecase

import (
	"context"

	"github.com/vijay4057/task-tracker/internal/domain"
)

// TrackerStatusOutput reports the tracker configuration state with the
// account identifier masked for display.
type TrackerStatusOutput struct {
	BaseURL    string
	Account    string // Masked, e.g. "vij***"
	AuthMode   string
	Configured bool
}

// TrackerStatus is the use case for reporting whether tracker features
// are available.
type TrackerStatus struct {
	cfg domain.JiraConfig
}

// NewTrackerStatus creates a new TrackerStatus use case.
func NewTrackerStatus(cfg domain.JiraConfig) *TrackerStatus {
	return &TrackerStatus{cfg: cfg}
}

// Execute reports the configuration state. Missing credentials are not
// an error; tracker features simply stay disabled.
func (uc *TrackerStatus) Execute(_ context.Context) (*TrackerStatusOutput, error) {
	return &TrackerStatusOutput{
		Configured: uc.cfg.Configured(),
		BaseURL:    uc.cfg.BaseURL,
		Account:    uc.cfg.MaskedEmail(),
		AuthMode:   uc.cfg.Auth,
	}, nil
}
