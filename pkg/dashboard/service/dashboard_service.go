package service

import (
	"context"

	"github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/dashboard"
)

type DashboardService interface {
	Build(ctx context.Context, location string) (*dashboard.Dashboard, error)
}
