package models

import (
	"strings"

	"github.com/thenoetrevino/plantel/internal/types"
)

// Athlete is a person enrolled at the clinic. The board never edits athletes,
// it only moves their ids between programs.
type Athlete struct {
	ID             types.AthleteID `json:"id"`
	FirstName      string          `json:"first_name"`
	LastName       string          `json:"last_name"`
	SecondLastName string          `json:"second_last_name"`
	PhotoURL       *string         `json:"photo_url,omitempty"`
	Age            int             `json:"age"`
	Category       string          `json:"category"`
	Sport          string          `json:"sport"`
	CURP           string          `json:"curp"`
}

// FullName joins the name parts, skipping empty ones
func (a *Athlete) FullName() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{a.FirstName, a.LastName, a.SecondLastName} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// Initials returns up to two upper-case letters for avatar placeholders
func (a *Athlete) Initials() string {
	var b strings.Builder
	for _, p := range []string{a.FirstName, a.LastName} {
		for _, r := range strings.TrimSpace(p) {
			b.WriteString(strings.ToUpper(string(r)))
			break
		}
	}
	return b.String()
}

// Matches reports whether query is a case-insensitive substring of any name
// field or of the full name. An empty query matches every athlete.
func (a *Athlete) Matches(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	for _, field := range []string{a.FirstName, a.LastName, a.SecondLastName, a.FullName()} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}
