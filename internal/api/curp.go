package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/thenoetrevino/plantel/internal/models"
	"github.com/thenoetrevino/plantel/internal/validation"
)

// ValidateCURP checks the key locally and then asks the registry service.
// A key that fails the local check never reaches the network.
func (c *Client) ValidateCURP(ctx context.Context, curp string) (*models.CURPResult, error) {
	if err := validation.CURP(curp); err != nil {
		return nil, err
	}
	if c.CURPURL == "" {
		return nil, fmt.Errorf("curp: %w", ErrServiceNotConfigured)
	}

	body := map[string]string{"curp": validation.NormalizeCURP(curp)}
	var out models.CURPResult
	if err := c.doJSON(ctx, http.MethodPost, c.CURPURL+"/validate", body, &out); err != nil {
		return nil, fmt.Errorf("failed to validate curp: %w", err)
	}
	return &out, nil
}
