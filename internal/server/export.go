package server

import (
	"context"
	"fmt"
	"log/slog"

	importpb "github.com/careerdock/resume-import/gen/proto/resumeimport/v1"
	"github.com/careerdock/resume-import/internal/common"
	"github.com/careerdock/resume-import/internal/export"
)

type ExportServer struct {
	importpb.UnimplementedExportServiceServer
	svc    *export.Service
	logger *slog.Logger
}

func NewExportServer(svc *export.Service, logger *slog.Logger) *ExportServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportServer{svc: svc, logger: logger}
}

func (s *ExportServer) ExportProfile(ctx context.Context, req *importpb.ExportProfileRequest) (*importpb.ExportProfileResponse, error) {
	profileID, err := parseUUID(req.GetProfileId(), "profile_id")
	if err != nil {
		return nil, err
	}

	data, err := s.svc.ExportProfileXLSX(ctx, profileID)
	if err != nil {
		s.logger.Error("export.failed", "profile_id", profileID, "error", err)
		return nil, common.StatusFromError(err)
	}
	return &importpb.ExportProfileResponse{
		Xlsx:     data,
		FileName: fmt.Sprintf("profile-%s.xlsx", profileID),
	}, nil
}
