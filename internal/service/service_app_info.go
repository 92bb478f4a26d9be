package service

import (
	"context"
	"time"

	"github.com/carlmjohnson/versioninfo"

	"github.com/MKhiriev/fin360/internal/config"
	"github.com/MKhiriev/fin360/internal/logger"
	"github.com/MKhiriev/fin360/models"
)

const notAvailable = "N/A"

type appInfoService struct {
	info models.AppInfo

	logger *logger.Logger
}

// NewAppInfoService resolves the reported version once. The configured
// version wins, then the linker-injected build version, then the VCS
// stamp Go embeds into the binary.
func NewAppInfoService(cfg config.App, build models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	info := models.AppInfo{
		Version:   firstKnown(cfg.Version, build.BuildVersion()),
		Commit:    firstKnown(build.BuildCommit()),
		BuildDate: firstKnown(build.BuildDate()),
	}

	if info.Version == "" {
		if short := versioninfo.Short(); short != "devel" {
			info.Version = short
		}
	}
	if info.Commit == "" && versioninfo.Revision != "unknown" {
		info.Commit = versioninfo.Revision
	}
	if info.BuildDate == "" && !versioninfo.LastCommit.IsZero() {
		info.BuildDate = versioninfo.LastCommit.UTC().Format(time.RFC3339)
	}

	if info.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		info:   info,
		logger: logger,
	}, nil
}

func firstKnown(values ...string) string {
	for _, v := range values {
		if v != "" && v != notAvailable {
			return v
		}
	}
	return ""
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.info.Version
}

func (s *appInfoService) GetAppInfo(ctx context.Context) models.AppInfo {
	return s.info
}
