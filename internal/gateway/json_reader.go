package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"underwriting-risk/internal/domain"
)

// GetApplication reads the applicant's self-reported data from a JSON file.
func (r *FileRepository) GetApplication(ctx context.Context, path string) (domain.ApplicationData, error) {
	var app domain.ApplicationData
	if err := r.decodeJSON(ctx, path, &app); err != nil {
		return domain.ApplicationData{}, err
	}
	return app, nil
}

// GetSOSVerification reads a business-registry result from a JSON file. An
// empty path means no verification was run and yields nil.
func (r *FileRepository) GetSOSVerification(ctx context.Context, path string) (*domain.SOSVerificationResult, error) {
	if path == "" {
		r.logger.Debug("no registry verification supplied")
		return nil, nil
	}

	var sos domain.SOSVerificationResult
	if err := r.decodeJSON(ctx, path, &sos); err != nil {
		return nil, err
	}
	if !sos.Known() {
		r.logger.Warn("registry verification is empty, registry checks will be skipped", zap.String("path", path))
	}
	return &sos, nil
}

func (r *FileRepository) decodeJSON(ctx context.Context, path string, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	if err := json.NewDecoder(file).Decode(v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return nil
}
