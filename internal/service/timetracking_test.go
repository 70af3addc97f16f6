package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/akarpin/tracklog/internal/api"
	"github.com/akarpin/tracklog/internal/auth"
	"github.com/akarpin/tracklog/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGateway records calls and returns canned responses.
type fakeGateway struct {
	submitCalls   int
	lastIssueID   string
	lastRecord    api.WorkItemRecord
	submitErr     error
	fetchCalls    int
	lastFilters   api.WorkItemFilters
	fetchEntries  []domain.TimeEntry
	fetchErr      error
	submitEchoes  *domain.TimeEntry
}

func (f *fakeGateway) SubmitWorkItem(_ context.Context, issueID string, rec api.WorkItemRecord) (*domain.TimeEntry, error) {
	f.submitCalls++
	f.lastIssueID = issueID
	f.lastRecord = rec
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	if f.submitEchoes != nil {
		return f.submitEchoes, nil
	}
	return &domain.TimeEntry{ID: "wi-1", Minutes: rec.Minutes, Date: time.UnixMilli(rec.Date)}, nil
}

func (f *fakeGateway) FetchWorkItems(_ context.Context, filters api.WorkItemFilters) ([]domain.TimeEntry, error) {
	f.fetchCalls++
	f.lastFilters = filters
	return f.fetchEntries, f.fetchErr
}

type fakeCreds struct {
	sess *auth.Session
}

func (f *fakeCreds) Current() (*auth.Session, error) {
	if f.sess == nil {
		return nil, auth.ErrNotAuthenticated
	}
	return f.sess, nil
}

func loggedIn() *fakeCreds {
	return &fakeCreds{sess: &auth.Session{BaseURL: "https://x", Token: "t", Login: "jane"}}
}

func TestLogWork_Success(t *testing.T) {
	gw := &fakeGateway{}
	svc := NewTimeTrackingService(gw, loggedIn())

	res := svc.LogWork(context.Background(), LogWorkInput{
		IssueID:  "PRJ-7",
		Duration: "1h 30m",
		Date:     "2024-01-15",
		Text:     "pairing",
		Type:     "Development",
	})

	require.True(t, res.OK(), "outcome: %+v", res.Outcome)
	assert.Equal(t, 1, gw.submitCalls)
	assert.Equal(t, "PRJ-7", gw.lastIssueID)
	assert.Equal(t, 90, gw.lastRecord.Minutes)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.Local).UnixMilli(), gw.lastRecord.Date)
	assert.Equal(t, "Development", gw.lastRecord.Type)
	require.NotNil(t, res.Entry)
}

func TestLogWork_InvalidDurationShortCircuits(t *testing.T) {
	gw := &fakeGateway{}
	svc := NewTimeTrackingService(gw, loggedIn())

	res := svc.LogWork(context.Background(), LogWorkInput{IssueID: "PRJ-7", Duration: "invalid"})

	assert.Equal(t, StatusInvalid, res.Status)
	assert.Contains(t, res.Message, "duration")
	assert.Zero(t, gw.submitCalls, "collaborator must never be invoked on a parse failure")
}

func TestLogWork_ZeroDurationRejected(t *testing.T) {
	gw := &fakeGateway{}
	svc := NewTimeTrackingService(gw, loggedIn())

	res := svc.LogWork(context.Background(), LogWorkInput{IssueID: "PRJ-7", Duration: "0h"})

	assert.Equal(t, StatusInvalid, res.Status)
	assert.Zero(t, gw.submitCalls)
}

func TestLogWork_BadDateIsHardRejection(t *testing.T) {
	gw := &fakeGateway{}
	svc := NewTimeTrackingService(gw, loggedIn())

	res := svc.LogWork(context.Background(), LogWorkInput{IssueID: "PRJ-7", Duration: "30m", Date: "not-a-date"})

	assert.Equal(t, StatusInvalid, res.Status)
	assert.Contains(t, res.Message, "date")
	assert.Zero(t, gw.submitCalls)
}

func TestLogWork_EmptyDateUsesNow(t *testing.T) {
	gw := &fakeGateway{}
	svc := NewTimeTrackingService(gw, loggedIn())

	before := time.Now().UnixMilli()
	res := svc.LogWork(context.Background(), LogWorkInput{IssueID: "PRJ-7", Duration: "45m"})
	after := time.Now().UnixMilli()

	require.True(t, res.OK())
	assert.GreaterOrEqual(t, gw.lastRecord.Date, before)
	assert.LessOrEqual(t, gw.lastRecord.Date, after)
}

func TestLogWork_NotAuthenticatedBeforeParsing(t *testing.T) {
	gw := &fakeGateway{}
	svc := NewTimeTrackingService(gw, &fakeCreds{})

	// Duration is garbage, but the auth check comes first.
	res := svc.LogWork(context.Background(), LogWorkInput{IssueID: "PRJ-7", Duration: "garbage"})

	assert.Equal(t, StatusUnauthenticated, res.Status)
	assert.Zero(t, gw.submitCalls)
}

func TestLogWork_CollaboratorErrorCarriesText(t *testing.T) {
	gw := &fakeGateway{submitErr: &api.StatusError{Code: 400, Body: "issue is read-only"}}
	svc := NewTimeTrackingService(gw, loggedIn())

	res := svc.LogWork(context.Background(), LogWorkInput{IssueID: "PRJ-7", Duration: "1h"})

	assert.Equal(t, StatusFailed, res.Status)
	assert.Contains(t, res.Message, "read-only")
}

func TestLogWork_RejectedTokenSurfacesAsUnauthenticated(t *testing.T) {
	gw := &fakeGateway{submitErr: api.ErrUnauthorized}
	svc := NewTimeTrackingService(gw, loggedIn())

	res := svc.LogWork(context.Background(), LogWorkInput{IssueID: "PRJ-7", Duration: "1h"})
	assert.Equal(t, StatusUnauthenticated, res.Status)
}

func TestListWork_EmptyResponse(t *testing.T) {
	gw := &fakeGateway{fetchEntries: nil}
	svc := NewTimeTrackingService(gw, loggedIn())

	res := svc.ListWork(context.Background(), WorkFilters{})

	require.True(t, res.OK())
	assert.NotNil(t, res.Entries)
	assert.Empty(t, res.Entries)
	assert.Zero(t, res.Count)
}

func TestListWork_FilterDatesNormalized(t *testing.T) {
	gw := &fakeGateway{}
	svc := NewTimeTrackingService(gw, loggedIn())

	res := svc.ListWork(context.Background(), WorkFilters{
		IssueID: " PRJ-7 ",
		Author:  "jane",
		Start:   "01/15/2024",
		End:     "2024-01-31",
	})

	require.True(t, res.OK())
	assert.Equal(t, "PRJ-7", gw.lastFilters.IssueID)
	assert.Equal(t, "jane", gw.lastFilters.Author)
	assert.Equal(t, "2024-01-15", gw.lastFilters.StartDate)
	assert.Equal(t, "2024-01-31", gw.lastFilters.EndDate)
}

func TestListWork_BadFilterDateFallsBackToToday(t *testing.T) {
	gw := &fakeGateway{}
	svc := NewTimeTrackingService(gw, loggedIn())

	res := svc.ListWork(context.Background(), WorkFilters{Start: "garbage"})

	require.True(t, res.OK(), "a bad filter date must not abort the listing")
	assert.Equal(t, time.Now().Format("2006-01-02"), gw.lastFilters.StartDate)
}

func TestListWork_NotAuthenticated(t *testing.T) {
	gw := &fakeGateway{}
	svc := NewTimeTrackingService(gw, &fakeCreds{})

	res := svc.ListWork(context.Background(), WorkFilters{})

	assert.Equal(t, StatusUnauthenticated, res.Status)
	assert.Zero(t, gw.fetchCalls)
}

func TestSummarize_GroupsByUser(t *testing.T) {
	gw := &fakeGateway{fetchEntries: []domain.TimeEntry{
		{Minutes: 120, Author: "User A", Issue: domain.IssueRef{ID: "PRJ-1", Summary: "x"}, Type: "Dev"},
		{Minutes: 60, Author: "User A", Issue: domain.IssueRef{ID: "PRJ-2", Summary: "y"}, Type: "Test"},
		{Minutes: 90, Author: "User B", Issue: domain.IssueRef{ID: "PRJ-1", Summary: "x"}, Type: "Dev"},
	}}
	svc := NewTimeTrackingService(gw, loggedIn())

	res := svc.Summarize(context.Background(), WorkFilters{}, domain.GroupByUser)

	require.True(t, res.OK())
	assert.Equal(t, 3, res.Count)
	assert.Equal(t, 270, res.Totals.TotalMinutes)
	assert.Equal(t, 4.5, res.Totals.TotalHours)
	assert.Equal(t, 180, res.Totals.Groups["User A"].Minutes)
	assert.Equal(t, 2, res.Totals.Groups["User A"].Entries)
	assert.Equal(t, 1.5, res.Totals.Groups["User B"].Hours)
}

func TestSummarize_EmptyIsNotAnError(t *testing.T) {
	gw := &fakeGateway{}
	svc := NewTimeTrackingService(gw, loggedIn())

	res := svc.Summarize(context.Background(), WorkFilters{}, domain.GroupByType)

	require.True(t, res.OK())
	assert.Zero(t, res.Count)
	assert.Empty(t, res.Totals.Groups)
	assert.Zero(t, res.Totals.TotalMinutes)
}

func TestSummarize_PropagatesFetchFailure(t *testing.T) {
	gw := &fakeGateway{fetchErr: errors.New("boom")}
	svc := NewTimeTrackingService(gw, loggedIn())

	res := svc.Summarize(context.Background(), WorkFilters{}, domain.GroupByUser)

	assert.Equal(t, StatusFailed, res.Status)
	assert.Contains(t, res.Message, "boom")
}
