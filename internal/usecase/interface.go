package usecase

import (
	"context"

	"underwriting-risk/internal/domain"
)

// ApplicationRepository defines the interface for fetching the inputs of an
// underwriting run. The usecase layer depends on this interface, not on a
// concrete implementation.
//
//go:generate mockgen -destination=mocks/mock_repository.go -source=interface.go
type ApplicationRepository interface {
	GetApplication(ctx context.Context, path string) (domain.ApplicationData, error)
	// GetSOSVerification returns nil when no verification is available.
	GetSOSVerification(ctx context.Context, path string) (*domain.SOSVerificationResult, error)
	GetStatement(ctx context.Context, path string) ([]domain.Transaction, error)
}

// Recorder receives the outcome of each run, e.g. for metrics.
type Recorder interface {
	RecordAccount(analysis domain.AccountAnalysis)
	RecordAlerts(alerts []domain.Alert)
}
