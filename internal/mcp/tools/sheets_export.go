package tools

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/jobshop/internal/domain"
	"github.com/honeycarbs/jobshop/internal/domain/job"
	"github.com/honeycarbs/jobshop/internal/export"
	"github.com/honeycarbs/jobshop/pkg/logging"
)

// SheetsExportParams selects postings either by id or by criteria
type SheetsExportParams struct {
	JobIDs   []string      `json:"job_ids,omitempty" jsonschema:"Postings to export; criteria are ignored when set"`
	Criteria Criteria      `json:"criteria,omitempty" jsonschema:"Listing filters used when job_ids is empty"`
	Sheet    export.Target `json:"sheet" jsonschema:"Destination sheet information"`
}

type sheetsExportTool struct {
	service  job.Service
	exporter export.Exporter
	logger   *logging.Logger
}

// WithSheetsExport registers the sheets_export tool
func WithSheetsExport(service job.Service, exporter export.Exporter) Option {
	return func(reg *registry) {
		t := sheetsExportTool{service: service, exporter: exporter, logger: reg.logger}
		// untyped output: Result carries a timestamp the inferred schema cannot describe
		addTool(reg, &sdkmcp.Tool{
			Name:        "sheets_export",
			Description: "Export job postings to a Google Sheets tab",
		}, func(ctx context.Context, req *sdkmcp.CallToolRequest, params *SheetsExportParams) (*sdkmcp.CallToolResult, any, error) {
			res, out, err := t.handle(ctx, req, params)
			if err != nil {
				return nil, nil, err
			}
			return res, out, nil
		})
	}
}

func (t sheetsExportTool) handle(ctx context.Context, _ *sdkmcp.CallToolRequest, params *SheetsExportParams) (*sdkmcp.CallToolResult, export.Result, error) {
	if t.service == nil || t.exporter == nil {
		return nil, export.Result{}, fmt.Errorf("sheets export not configured")
	}
	if params == nil {
		params = &SheetsExportParams{}
	}

	jobs, err := t.selection(ctx, params)
	if err != nil {
		return nil, export.Result{}, err
	}

	result, err := t.exporter.Export(ctx, jobs, params.Sheet)
	if err != nil {
		t.logger.Warn("sheets_export failed", "err", err, "spreadsheet_id", params.Sheet.SpreadsheetID)
		return nil, result, err
	}

	t.logger.Info("sheets_export completed",
		"spreadsheet_id", result.SpreadsheetID,
		"tab", result.Tab,
		"rows", result.WrittenRows)
	return textResult("[sheets_export] %s", result.Message), result, nil
}

func (t sheetsExportTool) selection(ctx context.Context, params *SheetsExportParams) ([]domain.JobPosting, error) {
	if len(params.JobIDs) == 0 {
		res, err := t.service.Search(ctx, params.Criteria.query())
		if err != nil {
			return nil, err
		}
		return res.Jobs, nil
	}

	jobs := make([]domain.JobPosting, 0, len(params.JobIDs))
	for _, id := range params.JobIDs {
		posting, err := t.service.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, posting)
	}
	return jobs, nil
}
