package service

import (
	"context"
	"strings"
	"time"

	"github.com/akarpin/tracklog/internal/aggregate"
	"github.com/akarpin/tracklog/internal/api"
	"github.com/akarpin/tracklog/internal/domain"
	"github.com/akarpin/tracklog/internal/timeparse"
)

type timeTrackingService struct {
	gateway TrackerGateway
	creds   CredentialSource
}

// NewTimeTrackingService wires the time-tracking core to its collaborators.
func NewTimeTrackingService(gateway TrackerGateway, creds CredentialSource) TimeTrackingService {
	return &timeTrackingService{gateway: gateway, creds: creds}
}

// LogWork validates and submits one time record. Validation happens in a
// fixed order: credentials, then duration, then date. A parse failure
// means the collaborator is never invoked.
func (s *timeTrackingService) LogWork(ctx context.Context, in LogWorkInput) LogWorkResult {
	if _, err := s.creds.Current(); err != nil {
		return LogWorkResult{Outcome: unauthenticated()}
	}

	minutes, ok := timeparse.ParseDuration(in.Duration)
	if !ok {
		return LogWorkResult{Outcome: invalid("Invalid duration format. Use formats like '2h', '30m', '1h 30m', or '90'.")}
	}

	date := time.Now().UnixMilli()
	if strings.TrimSpace(in.Date) != "" {
		date, ok = timeparse.ParseDate(in.Date)
		if !ok {
			return LogWorkResult{Outcome: invalid("Invalid date format. Use YYYY-MM-DD, MM/DD/YYYY, DD.MM.YYYY, 'today', or 'yesterday'.")}
		}
	}

	entry, err := s.gateway.SubmitWorkItem(ctx, in.IssueID, api.WorkItemRecord{
		Minutes: minutes,
		Date:    date,
		Text:    in.Text,
		Type:    in.Type,
	})
	if err != nil {
		return LogWorkResult{Outcome: outcomeFromErr(err)}
	}
	return LogWorkResult{Outcome: success(), Entry: entry}
}

// ListWork fetches raw entries matching the filters. An empty or null
// tracker response is normalized to an empty list with count zero.
func (s *timeTrackingService) ListWork(ctx context.Context, f WorkFilters) ListWorkResult {
	if _, err := s.creds.Current(); err != nil {
		return ListWorkResult{Outcome: unauthenticated()}
	}

	entries, err := s.gateway.FetchWorkItems(ctx, normalizeFilters(f))
	if err != nil {
		return ListWorkResult{Outcome: outcomeFromErr(err)}
	}
	if entries == nil {
		entries = []domain.TimeEntry{}
	}
	return ListWorkResult{Outcome: success(), Entries: entries, Count: len(entries)}
}

// Summarize lists matching entries and folds them into grouped totals.
func (s *timeTrackingService) Summarize(ctx context.Context, f WorkFilters, groupBy domain.GroupBy) SummaryResult {
	listed := s.ListWork(ctx, f)
	if !listed.OK() {
		return SummaryResult{Outcome: listed.Outcome}
	}
	return SummaryResult{
		Outcome: success(),
		Totals:  aggregate.Aggregate(listed.Entries, groupBy),
		Count:   listed.Count,
	}
}

// normalizeFilters converts free-form date expressions into the tracker's
// YYYY-MM-DD wire format. Unparseable dates become the current date here,
// unlike the log path where they are rejected outright.
func normalizeFilters(f WorkFilters) api.WorkItemFilters {
	out := api.WorkItemFilters{
		IssueID: strings.TrimSpace(f.IssueID),
		Author:  strings.TrimSpace(f.Author),
	}
	if strings.TrimSpace(f.Start) != "" {
		out.StartDate = time.UnixMilli(timeparse.ParseDateOrNow(f.Start)).Format("2006-01-02")
	}
	if strings.TrimSpace(f.End) != "" {
		out.EndDate = time.UnixMilli(timeparse.ParseDateOrNow(f.End)).Format("2006-01-02")
	}
	return out
}
