package handler

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v2"

	"github.com/MajjK/ToDoAppReact/internal/auth"
	"github.com/MajjK/ToDoAppReact/internal/logger"
	"github.com/MajjK/ToDoAppReact/internal/service"
	"github.com/MajjK/ToDoAppReact/internal/service/serviceutils"
)

type ExportHandler struct {
	svc service.TaskService
}

func NewExportHandler(svc service.TaskService) *ExportHandler {
	return &ExportHandler{svc: svc}
}

// reportConfig is the optional YAML layout for the task report. The
// defaults below are used when report_config.yaml is absent.
type reportConfig struct {
	SheetName string         `yaml:"sheet_name"`
	Title     string         `yaml:"title"`
	Columns   []reportColumn `yaml:"columns"`
}

type reportColumn struct {
	Header string  `yaml:"header"`
	Width  float64 `yaml:"width"`
}

func defaultReportConfig() reportConfig {
	return reportConfig{
		SheetName: "Tasks",
		Title:     "Task report",
		Columns: []reportColumn{
			{Header: "Objective", Width: 40},
			{Header: "Description", Width: 30},
			{Header: "Added", Width: 15},
			{Header: "Closing date", Width: 15},
			{Header: "Finished", Width: 10},
		},
	}
}

func loadReportConfig() reportConfig {
	data, err := os.ReadFile("report_config.yaml")
	if err != nil {
		return defaultReportConfig()
	}
	var cfg reportConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return defaultReportConfig()
	}
	if cfg.SheetName == "" || len(cfg.Columns) != 5 {
		return defaultReportConfig()
	}
	return cfg
}

// ExportTasksHandler serves GET /export/tasks: every task the caller may
// see, in default order, as an xlsx download.
func (h *ExportHandler) ExportTasksHandler(c echo.Context) error {
	ctx := c.Request().Context()
	caller, err := auth.CallerFromContext(c)
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusUnauthorized, "Unauthorized", err)
	}

	tasks, err := h.svc.Export(ctx, caller)
	if err != nil {
		return writeServiceError(c, err)
	}

	cfg := loadReportConfig()
	f := excelize.NewFile()
	defer f.Close()

	sheet := cfg.SheetName
	f.SetSheetName("Sheet1", sheet)

	if err := f.SetCellValue(sheet, "A1", cfg.Title); err != nil {
		return serviceutils.ResponseError(c, http.StatusInternalServerError, "Failed to build report", err)
	}
	for i, col := range cfg.Columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 2)
		f.SetCellValue(sheet, cell, col.Header)
		name, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheet, name, name, col.Width)
	}

	for row, t := range tasks {
		values := []interface{}{
			t.Objective,
			t.Description,
			t.AdditionDate.Format("2006-01-02"),
			formatClosingDate(t.ClosingDate),
			t.Finished,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+3)
			f.SetCellValue(sheet, cell, v)
		}
	}

	c.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="tasks_%s.xlsx"`, time.Now().Format("2006-01-02")))

	logger.InfoLog(ctx, "Exporting %d tasks for caller %d", len(tasks), caller.ID)
	return f.Write(c.Response().Writer)
}

func formatClosingDate(d *time.Time) string {
	if d == nil {
		return ""
	}
	return d.Format("2006-01-02")
}
