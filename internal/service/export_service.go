package service

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/mmw1984/timetable/internal/dto"
	"github.com/mmw1984/timetable/pkg/export"
	appErrors "github.com/mmw1984/timetable/pkg/errors"
)

// ExportFormat selects the rendered output type.
type ExportFormat string

const (
	FormatCSV ExportFormat = "csv"
	FormatPDF ExportFormat = "pdf"
)

// ExportService renders the week schedule as a downloadable document.
type ExportService struct {
	schedule *ScheduleService
	csv      *export.CSVExporter
	pdf      *export.PDFExporter
	logger   *zap.Logger
}

// NewExportService constructs the service.
func NewExportService(schedule *ScheduleService, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		schedule: schedule,
		csv:      export.NewCSVExporter(),
		pdf:      export.NewPDFExporter(),
		logger:   logger,
	}
}

// ExportResult carries rendered bytes with download metadata.
type ExportResult struct {
	Content     []byte
	ContentType string
	Filename    string
}

// Week renders the Monday-start week containing today.
func (s *ExportService) Week(format ExportFormat) (*ExportResult, error) {
	records := s.schedule.Week()
	table := weekTable(records)

	switch format {
	case FormatCSV:
		content, err := s.csv.Render(table)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv")
		}
		return &ExportResult{Content: content, ContentType: "text/csv", Filename: exportFilename(records, "csv")}, nil
	case FormatPDF:
		content, err := s.pdf.Render(table)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf")
		}
		return &ExportResult{Content: content, ContentType: "application/pdf", Filename: exportFilename(records, "pdf")}, nil
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format %q", format))
	}
}

func weekTable(records []dto.DayRecord) export.Table {
	table := export.Table{
		Columns: []string{"日期", "星期", "時段", "開始", "結束", "科目"},
	}
	if len(records) > 0 {
		table.Title = fmt.Sprintf("週時間表 %s", records[0].Date)
	}

	for _, record := range records {
		if len(record.Schedule) == 0 {
			table.Rows = append(table.Rows, []string{record.Date, record.DayOfWeek, record.Message, "", "", ""})
			continue
		}
		for _, slot := range record.Schedule {
			table.Rows = append(table.Rows, []string{
				record.Date,
				record.DayOfWeek,
				slot.DisplayName,
				slot.Start,
				slot.End,
				slot.Subject,
			})
		}
	}
	return table
}

func exportFilename(records []dto.DayRecord, ext string) string {
	if len(records) == 0 {
		return "week-schedule." + ext
	}
	return fmt.Sprintf("week-schedule-%s.%s", records[0].Date, ext)
}
