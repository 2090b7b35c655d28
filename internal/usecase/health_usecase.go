package usecase

import (
	"context"
	"os"
)

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}

type healthUsecase struct {
	transport string
	uploadDir string
}

func NewHealthUsecase(transport, uploadDir string) HealthUsecase {
	return &healthUsecase{transport: transport, uploadDir: uploadDir}
}

// Check reports the active transport and whether the staging directory is present.
func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	uploads := "ok"
	if info, err := os.Stat(u.uploadDir); err != nil || !info.IsDir() {
		uploads = "unavailable"
	}

	return map[string]string{
		"status":    "ok",
		"transport": u.transport,
		"uploads":   uploads,
	}
}
