package services

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/maitriparekhcs2848/GearGuard/internal/repositories"
)

const reportPageSize = 500

type ReportServiceInterface interface {
	ExportRequests(ctx context.Context, filter repositories.RequestFilter) (*excelize.File, error)
}

// ReportService builds the .xlsx export of the requests collection. Read-only.
type ReportService struct {
	requestRepo repositories.RequestRepositoryInterface
	logger      *zap.Logger
}

func NewReportService(requestRepo repositories.RequestRepositoryInterface, logger *zap.Logger) *ReportService {
	return &ReportService{requestRepo: requestRepo, logger: logger}
}

func (s *ReportService) ExportRequests(ctx context.Context, filter repositories.RequestFilter) (*excelize.File, error) {
	f := excelize.NewFile()
	const sheet = "Requests"
	f.SetSheetName(f.GetSheetName(0), sheet)

	headers := []string{"ID", "Subject", "Status", "Equipment", "Team", "Type", "Priority", "Scheduled", "Assigned To", "Created", "Updated"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	row := 2
	var offset uint64
	for {
		page, total, err := s.requestRepo.GetRequests(ctx, filter, reportPageSize, offset)
		if err != nil {
			return nil, err
		}
		for _, req := range page {
			values := []interface{}{
				req.ID, req.Subject, req.Status, req.EquipmentID, req.TeamID,
				req.Type, req.Priority, req.ScheduledDate.Format("2006-01-02 15:04:05"),
				req.AssignedTo,
				req.CreatedAt.Format("2006-01-02 15:04:05"),
				req.UpdatedAt.Format("2006-01-02 15:04:05"),
			}
			for i, v := range values {
				cell, err := excelize.CoordinatesToCellName(i+1, row)
				if err != nil {
					return nil, err
				}
				if err := f.SetCellValue(sheet, cell, v); err != nil {
					return nil, err
				}
			}
			row++
		}
		offset += uint64(len(page))
		if offset >= total || len(page) == 0 {
			break
		}
	}

	s.logger.Debug(fmt.Sprintf("request report built with %d rows", row-2))
	return f, nil
}
