package export

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honeycarbs/jobshop/internal/domain"
	apperr "github.com/honeycarbs/jobshop/internal/errors"
)

type call struct {
	op     string
	rng    string
	values [][]any
}

type recordingWriter struct {
	calls []call
	err   error
}

func (w *recordingWriter) AppendValues(_ context.Context, _ string, rng string, values [][]any) error {
	w.calls = append(w.calls, call{op: "append", rng: rng, values: values})
	return w.err
}

func (w *recordingWriter) UpdateValues(_ context.Context, _ string, rng string, values [][]any) error {
	w.calls = append(w.calls, call{op: "update", rng: rng, values: values})
	return w.err
}

func (w *recordingWriter) ClearValues(_ context.Context, _ string, rng string) error {
	w.calls = append(w.calls, call{op: "clear", rng: rng})
	return w.err
}

func testJobs() []domain.JobPosting {
	return []domain.JobPosting{
		{
			ID:         "1",
			Title:      "UI Designer",
			Company:    "Acme Ads",
			Location:   "Pune",
			Type:       domain.JobTypeFullTime,
			Category:   "Design",
			Salary:     "₹6-9 LPA",
			Experience: "2-4 years",
			PostedDate: "3 days ago",
			Skills:     []string{"Figma", "Sketch"},
		},
		{ID: "2", Title: "Intern", Company: "Beta", Type: domain.JobTypeInternship, Skills: []string{}},
	}
}

func newTestExporter(w Writer) *SheetsExporter {
	e := NewSheetsExporter(w)
	e.now = func() time.Time { return time.Date(2026, 7, 1, 9, 0, 0, 0, time.FixedZone("IST", 19800)) }
	return e
}

func TestRows(t *testing.T) {
	rows := Rows(testJobs())

	require.Len(t, rows, 2)
	assert.Equal(t, []any{"UI Designer", "Acme Ads", "Pune", "Full-time", "Design", "₹6-9 LPA", "2-4 years", "3 days ago", "Figma, Sketch"}, rows[0])
	assert.Equal(t, "", rows[1][8])
	assert.Len(t, rows[0], len(Header))
}

func TestExportAppend(t *testing.T) {
	w := &recordingWriter{}

	res, err := newTestExporter(w).Export(context.Background(), testJobs(), Target{SpreadsheetID: "sheet-1"})
	require.NoError(t, err)

	require.Len(t, w.calls, 1)
	assert.Equal(t, "append", w.calls[0].op)
	assert.Equal(t, "Sheet1!A1", w.calls[0].rng)
	assert.Len(t, w.calls[0].values, 2)
	assert.Equal(t, 2, res.WrittenRows)
	assert.Equal(t, "Sheet1", res.Tab)
	assert.Equal(t, time.UTC, res.CompletedAt.Location())
}

func TestExportClearTabWritesHeader(t *testing.T) {
	w := &recordingWriter{}

	_, err := newTestExporter(w).Export(context.Background(), testJobs(), Target{SpreadsheetID: "sheet-1", Tab: "Open Roles", ClearTab: true})
	require.NoError(t, err)

	require.Len(t, w.calls, 2)
	assert.Equal(t, call{op: "clear", rng: "'Open Roles'!A:Z"}, w.calls[0])
	assert.Equal(t, "update", w.calls[1].op)
	assert.Equal(t, "'Open Roles'!A1", w.calls[1].rng)
	require.Len(t, w.calls[1].values, 3)
	assert.Equal(t, Header, w.calls[1].values[0])
}

func TestExportUpsert(t *testing.T) {
	w := &recordingWriter{}

	_, err := newTestExporter(w).Export(context.Background(), testJobs(), Target{SpreadsheetID: "sheet-1", Tab: "Jobs", Upsert: true})
	require.NoError(t, err)

	require.Len(t, w.calls, 1)
	assert.Equal(t, "update", w.calls[0].op)
	assert.Equal(t, "Jobs!A1", w.calls[0].rng)
	assert.Equal(t, Header, w.calls[0].values[0])
}

func TestExportNoJobs(t *testing.T) {
	w := &recordingWriter{}

	res, err := newTestExporter(w).Export(context.Background(), nil, Target{SpreadsheetID: "sheet-1"})
	require.NoError(t, err)

	assert.Empty(t, w.calls)
	assert.Equal(t, "no rows to export", res.Message)
}

func TestExportErrors(t *testing.T) {
	_, err := newTestExporter(nil).Export(context.Background(), testJobs(), Target{SpreadsheetID: "sheet-1"})
	assert.True(t, apperr.Is(err, apperr.ErrTypeUnavailable))

	_, err = newTestExporter(&recordingWriter{}).Export(context.Background(), testJobs(), Target{})
	assert.True(t, apperr.Is(err, apperr.ErrTypeInvalidInput))

	boom := errors.New("quota exceeded")
	_, err = newTestExporter(&recordingWriter{err: boom}).Export(context.Background(), testJobs(), Target{SpreadsheetID: "s"})
	assert.ErrorIs(t, err, boom)
	assert.True(t, apperr.Is(err, apperr.ErrTypeUnavailable))
}

func TestAvailable(t *testing.T) {
	var nilExporter *SheetsExporter
	assert.False(t, nilExporter.Available())
	assert.False(t, NewSheetsExporter(nil).Available())
	assert.True(t, NewSheetsExporter(&recordingWriter{}).Available())
}
