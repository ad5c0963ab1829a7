package service

import (
	"context"

	"github.com/osavchuk/todostack/models"
)

// appInfoService serves the build metadata injected at link time.
type appInfoService struct {
	buildInfo models.AppBuildInfo
}

// NewAppInfoService constructs an AppInfoService for the given build info.
func NewAppInfoService(buildInfo models.AppBuildInfo) AppInfoService {
	return &appInfoService{buildInfo: buildInfo}
}

func (a *appInfoService) GetBuildInfo(_ context.Context) models.AppBuildInfo {
	return a.buildInfo
}
