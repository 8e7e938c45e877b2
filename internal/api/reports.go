package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strconv"

	"github.com/thenoetrevino/plantel/internal/models"
)

// ErrInvalidFilter is returned for a report filter that cannot match anything
var ErrInvalidFilter = errors.New("invalid report filter")

// DefaultReportFilename is used when the server does not name the file
const DefaultReportFilename = "appointments-report.pdf"

// Stats returns appointment counts aggregated by the backend
func (c *Client) Stats(ctx context.Context, by models.StatDimension) ([]models.StatCount, error) {
	if !by.Valid() {
		return nil, fmt.Errorf("%w: unknown dimension %q", ErrInvalidFilter, by)
	}
	var out []models.StatCount
	path := "/reports/appointments?by=" + url.QueryEscape(string(by))
	if err := c.getJSON(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Report is a generated document
type Report struct {
	Filename    string
	ContentType string
	Data        []byte
}

// DownloadPDF asks the report service for a PDF of the filtered appointments
func (c *Client) DownloadPDF(ctx context.Context, filter models.ReportFilter) (*Report, error) {
	if !filter.From.IsZero() && !filter.To.IsZero() && filter.To.Before(filter.From) {
		return nil, fmt.Errorf("%w: end date is before start date", ErrInvalidFilter)
	}

	q := url.Values{}
	if !filter.From.IsZero() {
		q.Set("from", filter.From.Format("2006-01-02"))
	}
	if !filter.To.IsZero() {
		q.Set("to", filter.To.Format("2006-01-02"))
	}
	for _, id := range filter.AthleteIDs {
		q.Add("athlete_id", strconv.Itoa(id.ToInt()))
	}
	target := c.BaseURL + "/reports/appointments/pdf"
	if len(q) > 0 {
		target += "?" + q.Encode()
	}

	resp, requestID, err := c.send(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, readError(resp, requestID)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read report: %w", err)
	}
	return &Report{
		Filename:    reportFilename(resp.Header.Get("Content-Disposition")),
		ContentType: resp.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

func reportFilename(disposition string) string {
	if disposition == "" {
		return DefaultReportFilename
	}
	_, params, err := mime.ParseMediaType(disposition)
	if err != nil || params["filename"] == "" {
		return DefaultReportFilename
	}
	return params["filename"]
}
