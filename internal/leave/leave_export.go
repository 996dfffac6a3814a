package leave

import (
	"context"
	"time"

	leaveerrors "github.com/saxena100parth/codriva-hrms-sub002/internal/leave/errors"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const exportSheet = "Leaves"

var exportHeaders = []string{
	"No", "Employee", "Email", "Leave Type", "Start Date", "End Date",
	"Days", "Status", "Reason", "Rejection Reason", "Decided At",
}

func (s *service) Export(ctx context.Context, filter Filter) ([]byte, error) {
	leaves, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		s.logger.Error("export leaves find failed", zap.Error(err))
		return nil, err
	}

	ids := make([]string, 0, len(leaves))
	seen := make(map[string]struct{}, len(leaves))
	for _, l := range leaves {
		id := l.UserID.String()
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	owners, err := s.repo.FindOwners(ctx, ids)
	if err != nil {
		s.logger.Error("export leaves find owners failed", zap.Error(err))
		return nil, err
	}
	byID := make(map[string]Owner, len(owners))
	for _, o := range owners {
		byID[o.ID.String()] = o
	}

	buf, err := buildLeaveReport(leaves, byID)
	if err != nil {
		s.logger.Error("export leaves build report failed", zap.Error(err))
		return nil, leaveerrors.ErrExportFailed
	}
	s.logger.Info("export leaves success", zap.Int("rows", len(leaves)))
	return buf, nil
}

func buildLeaveReport(leaves []Leave, owners map[string]Owner) ([]byte, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			zap.L().Named("leave.export").Warn("close xlsx file failed", zap.Error(err))
		}
	}()

	sheet := "Sheet1"
	row, err := writeHeader(f, sheet, 0, exportHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "write xlsx header")
	}
	if len(leaves) > 0 {
		if err := applyDataCellStyle(f, sheet, 1, row+1, len(exportHeaders), row+len(leaves)); err != nil {
			return nil, errors.Wrap(err, "apply xlsx data style")
		}
	}

	for i, l := range leaves {
		row++
		owner := owners[l.UserID.String()]
		values := []interface{}{
			i + 1,
			owner.Name,
			owner.Email(),
			l.LeaveType,
			l.StartDate.Format(DateLayout),
			l.EndDate.Format(DateLayout),
			l.NumberOfDays,
			l.Status,
			l.Reason,
			"",
			"",
		}
		if l.RejectionReason != nil {
			values[9] = *l.RejectionReason
		}
		if l.ApprovedAt != nil {
			values[10] = l.ApprovedAt.Format(time.DateTime)
		}
		for col, v := range values {
			if err := writeColumn(f, sheet, col+1, row, v); err != nil {
				return nil, errors.Wrapf(err, "write xlsx row %d", row)
			}
		}
	}

	f.SetSheetName(sheet, exportSheet)
	out, err := f.WriteToBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "write xlsx buffer")
	}
	return out.Bytes(), nil
}

func writeColumn(f *excelize.File, sheet string, col, row int, value interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(sheet, cell, value)
}

func writeHeader(f *excelize.File, sheet string, row int, headers []string) (int, error) {
	row++
	style, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DDEBF7"}},
	})
	if err != nil {
		return row, err
	}
	first, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return row, err
	}
	last, err := excelize.CoordinatesToCellName(len(headers), row)
	if err != nil {
		return row, err
	}
	if err := f.SetCellStyle(sheet, first, last, style); err != nil {
		return row, err
	}
	lastCol, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return row, err
	}
	if err := f.SetColWidth(sheet, "A", lastCol, 20); err != nil {
		return row, err
	}

	for idx, value := range headers {
		if err := writeColumn(f, sheet, idx+1, row, value); err != nil {
			return row, err
		}
	}
	return row, nil
}

func applyDataCellStyle(f *excelize.File, sheet string, colFrom, rowFrom, colTo, rowTo int) error {
	style, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
		Font:      &excelize.Font{Size: 11},
	})
	if err != nil {
		return err
	}
	first, err := excelize.CoordinatesToCellName(colFrom, rowFrom)
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(colTo, rowTo)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, first, last, style)
}
