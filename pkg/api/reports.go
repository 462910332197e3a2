package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/modaboutique/storefront/pkg/models"
)

const defaultReportName = "reporte.xlsx"

// Report is a generated file ready to be saved. Filename comes from
// the Content-Disposition header the service attaches.
type Report struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ProductReport asks the reporting service to build a product report
// from a free-text instruction.
func (c *Client) ProductReport(ctx context.Context, text string) (*Report, error) {
	return c.report(ctx, "/ia/reportes/productos/", text)
}

// SalesReport asks the reporting service to build a sales report from
// a free-text instruction.
func (c *Client) SalesReport(ctx context.Context, text string) (*Report, error) {
	return c.report(ctx, "/ia/reportes/ventas/", text)
}

func (c *Client) report(ctx context.Context, path, text string) (*Report, error) {
	raw, err := json.Marshal(models.ReportRequest{Text: text})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(path, nil), bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, decodeError(resp)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read report payload: %w", err)
	}
	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return &Report{
		Filename:    filenameFromDisposition(resp.Header.Get("Content-Disposition")),
		ContentType: contentType,
		Data:        data,
	}, nil
}

// filenameFromDisposition recovers the suggested filename from a
// Content-Disposition header, falling back to a default when the
// header is missing or unparseable.
func filenameFromDisposition(header string) string {
	if header == "" {
		return defaultReportName
	}
	_, params, err := mime.ParseMediaType(header)
	if err != nil {
		return defaultReportName
	}
	if name := params["filename"]; name != "" {
		return name
	}
	return defaultReportName
}
