// internal/sheets/client.go
// Append-only Google Sheets sink for the ops team. Profiles and match
// results get mirrored into a spreadsheet so non-engineers can eyeball the
// funnel without database access.

package sheets

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/flatmatchau/flatmatch-backend/internal/quiz"
)

const (
	profilesRange = "Profiles!A:J"
	matchesRange  = "Matches!A:G"
)

// Client wraps the Sheets API for the two tabs we write to. Credentials
// are supplied at construction; there is no package-level state.
type Client struct {
	service       *sheets.Service
	spreadsheetID string
}

// NewClient builds a sheets client from a service-account credentials file.
func NewClient(ctx context.Context, spreadsheetID, credentialsFile string) (*Client, error) {
	service, err := sheets.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &Client{
		service:       service,
		spreadsheetID: spreadsheetID,
	}, nil
}

// AppendProfile mirrors a freshly submitted profile onto the Profiles tab.
func (c *Client) AppendProfile(ctx context.Context, profile *quiz.FlatmateProfile) error {
	answers := profile.Answers
	if answers == nil {
		answers = &quiz.QuizAnswers{}
	}
	traits := profile.Traits
	if traits == nil {
		traits = &quiz.PersonalityTraits{}
	}

	row := []interface{}{
		time.Now().Format(time.RFC3339),
		profile.UserID,
		profile.DisplayName,
		answers.Age,
		answers.State,
		answers.Occupation,
		answers.Budget,
		strings.Join(answers.PreferredLocations, ", "),
		strings.Join(answers.Interests, ", "),
		traits.Lifestyle,
	}

	return c.appendRow(ctx, profilesRange, row)
}

// AppendMatchResult records a scored pair on the Matches tab.
func (c *Client) AppendMatchResult(ctx context.Context, userID, otherID string, overall int, reasons []string) error {
	row := []interface{}{
		time.Now().Format(time.RFC3339),
		userID,
		otherID,
		overall,
		strings.Join(reasons, "; "),
	}
	return c.appendRow(ctx, matchesRange, row)
}

func (c *Client) appendRow(ctx context.Context, writeRange string, row []interface{}) error {
	valueRange := &sheets.ValueRange{
		Values: [][]interface{}{row},
	}

	_, err := c.service.Spreadsheets.Values.
		Append(c.spreadsheetID, writeRange, valueRange).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to append to sheet: %w", err)
	}
	return nil
}
