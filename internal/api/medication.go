package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/thenoetrevino/plantel/internal/models"
	"github.com/thenoetrevino/plantel/internal/validation"
)

// MedicationLimit caps the number of labels fetched per lookup
const MedicationLimit = 5

// drug label search response of the openFDA API
type drugLabelResponse struct {
	Results []struct {
		OpenFDA struct {
			BrandName   []string `json:"brand_name"`
			GenericName []string `json:"generic_name"`
		} `json:"openfda"`
		Purpose  []string `json:"purpose"`
		Warnings []string `json:"warnings"`
	} `json:"results"`
}

type translateRequest struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
}

type translateResponse struct {
	TranslatedText string `json:"translatedText"`
}

// LookupMedication searches drug labels by brand name and translates the
// free-text fields to Spanish. A failed translation keeps the original text.
func (c *Client) LookupMedication(ctx context.Context, name string) ([]models.Medication, error) {
	if err := validation.Required("name", name); err != nil {
		return nil, err
	}
	if c.MedicationURL == "" {
		return nil, fmt.Errorf("medication: %w", ErrServiceNotConfigured)
	}

	q := url.Values{}
	q.Set("search", fmt.Sprintf("openfda.brand_name:%q", strings.TrimSpace(name)))
	q.Set("limit", fmt.Sprint(MedicationLimit))

	var resp drugLabelResponse
	err := c.doJSON(ctx, http.MethodGet, c.MedicationURL+"/drug/label.json?"+q.Encode(), nil, &resp)
	if IsNotFound(err) {
		// openFDA answers 404 when nothing matches
		return []models.Medication{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up medication: %w", err)
	}

	out := make([]models.Medication, 0, len(resp.Results))
	for _, r := range resp.Results {
		med := models.Medication{
			BrandName:   first(r.OpenFDA.BrandName),
			GenericName: first(r.OpenFDA.GenericName),
			Purpose:     first(r.Purpose),
			Warnings:    first(r.Warnings),
		}
		c.translateMedication(ctx, &med)
		out = append(out, med)
	}
	return out, nil
}

func (c *Client) translateMedication(ctx context.Context, med *models.Medication) {
	if c.TranslationURL == "" {
		return
	}
	translated := true
	for _, field := range []*string{&med.Purpose, &med.Warnings} {
		if *field == "" {
			continue
		}
		text, err := c.translate(ctx, *field)
		if err != nil {
			slog.Warn("translation failed, keeping original text", "error", err)
			translated = false
			continue
		}
		*field = text
	}
	med.Translated = translated
}

func (c *Client) translate(ctx context.Context, text string) (string, error) {
	req := translateRequest{Q: text, Source: "en", Target: "es", Format: "text"}
	var resp translateResponse
	if err := c.doJSON(ctx, http.MethodPost, c.TranslationURL+"/translate", req, &resp); err != nil {
		return "", err
	}
	return resp.TranslatedText, nil
}

func first(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return strings.TrimSpace(values[0])
}
