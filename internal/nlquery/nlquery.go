// Package nlquery translates natural-language calendar questions into
// whenami CLI arguments using a Gemini model.
//
// The model is asked for a single JSON object naming date selection and
// filter options; the result is converted into the argv of the slots
// command. The feature is opt-in via the llm config section.
package nlquery

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/whenami/whenami/internal/config"
)

// ErrDisabled is returned when the llm config section is absent or disabled.
var ErrDisabled = errors.New("natural language queries are disabled; enable the llm section in config")

// Result is the JSON shape the model must answer with.
type Result struct {
	Date          string `json:"date,omitempty"`
	DateRange     string `json:"date_range,omitempty"`
	Free          bool   `json:"free,omitempty"`
	Busy          bool   `json:"busy,omitempty"`
	WorkHours     bool   `json:"work_hours,omitempty"`
	PersonalHours bool   `json:"personal_hours,omitempty"`
	AllHours      bool   `json:"all_hours,omitempty"`
	WorkDays      bool   `json:"work_days,omitempty"`
	Split         bool   `json:"split,omitempty"`
	EventNames    bool   `json:"event_name,omitempty"`
	ConvertTZ     string `json:"convert_tz,omitempty"`
	Error         string `json:"error,omitempty"`
}

// Args converts the result into slots-command arguments. When the model
// names no date, the query defaults to today.
func (r *Result) Args(now time.Time) []string {
	var args []string

	switch {
	case r.Date != "":
		args = append(args, "--date", r.Date)
	case r.DateRange != "":
		args = append(args, "--date-range", r.DateRange)
	default:
		args = append(args, "--date", now.Format("02/01/2006"))
	}

	if r.Free {
		args = append(args, "--free")
	} else if r.Busy {
		args = append(args, "--busy")
	}

	if r.WorkDays {
		args = append(args, "--work-days")
	}
	if r.WorkHours {
		args = append(args, "--work-hours")
	}
	if r.PersonalHours {
		args = append(args, "--personal-hours")
	}
	if r.AllHours {
		args = append(args, "--all-hours")
	}
	if r.Split {
		args = append(args, "--split")
	}
	if r.EventNames {
		args = append(args, "--event-names")
	}
	if r.ConvertTZ != "" {
		args = append(args, "--convert-tz", r.ConvertTZ)
	}

	return args
}

// Client asks a Gemini model to translate queries.
type Client struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewClient creates a translation client from the llm config section.
// The API key falls back to $GEMINI_API_KEY when not configured.
func NewClient(ctx context.Context, cfg config.LLM) (*Client, error) {
	if !cfg.Enabled {
		return nil, ErrDisabled
	}

	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("no Gemini API key: set llm.api_key in config or GEMINI_API_KEY")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(cfg.Model)
	model.SetTemperature(0)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemPrompt(time.Now()))},
	}

	return &Client{client: client, model: model}, nil
}

// Close releases the underlying API client.
func (c *Client) Close() error {
	return c.client.Close()
}

// Translate asks the model to convert the query into a Result.
func (c *Client) Translate(ctx context.Context, query string) (*Result, error) {
	prompt := fmt.Sprintf("Query: %q\n\nJSON Response:", query)

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("gemini generate error: %w", err)
	}

	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				sb.WriteString(string(text))
			}
		}
		break
	}

	return parseResponse(sb.String())
}

// parseResponse decodes the model output, tolerating markdown fences.
func parseResponse(text string) (*Result, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	var result Result
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		return nil, fmt.Errorf("invalid JSON response from model: %q", text)
	}
	if result.Error != "" {
		return nil, fmt.Errorf("model could not parse query: %s", result.Error)
	}

	return &result, nil
}

func systemPrompt(now time.Time) string {
	today := now.Format("2006-01-02")
	return fmt.Sprintf(`You are a JSON generator. Convert calendar queries to JSON objects only.

Today: %s

Rules:
- Calculate actual dates in DD/MM/YYYY format (today=%s)
- "next week" = Monday-Sunday of next week
- Default to today if no date mentioned
- Use boolean true/false, not strings

Options: date, date_range, free, busy, work_hours, personal_hours, all_hours, work_days, split, event_name, convert_tz

Examples:
"free tomorrow" -> {"date": "12/07/2026", "free": true}
"busy next week" -> {"date_range": "14/09/2026,20/09/2026", "busy": true}
"work hours today" -> {"date": "%s", "work_hours": true}
"next week nytime" -> {"date_range": "14/09/2026,20/09/2026", "convert_tz": "America/New_York"}

ONLY return JSON, no explanations.`, today, today, now.Format("02/01/2006"))
}
