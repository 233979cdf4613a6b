package attendance_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/attendance"
	inmemdb "github.com/trezcool/darasa/storage/database/inmem"
	testutil "github.com/trezcool/darasa/tests"
)

func newService(t *testing.T) *attendance.Service {
	t.Helper()
	db := inmemdb.NewSeeded()
	return attendance.NewService(
		inmemdb.NewAttendanceRepository(db),
		inmemdb.NewStudentRepository(db),
		testutil.Config(),
	)
}

// errField returns the field of the single field error err carries.
func errField(t *testing.T, err error) string {
	t.Helper()
	var verr *core.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Fields, 1)
	return verr.Fields[0].Field
}

func TestNewService_hoursPerSession(t *testing.T) {
	db := inmemdb.New()
	conf := testutil.Config()

	conf.Attendance.HoursPerSession = 0
	svc := attendance.NewService(inmemdb.NewAttendanceRepository(db), inmemdb.NewStudentRepository(db), conf)
	assert.Equal(t, attendance.DefaultHoursPerSession, svc.HoursPerSession())

	conf.Attendance.HoursPerSession = 2
	svc = attendance.NewService(inmemdb.NewAttendanceRepository(db), inmemdb.NewStudentRepository(db), conf)
	assert.Equal(t, 2.0, svc.HoursPerSession())
}

func TestService_Submit(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	ledger, err := svc.Submit(ctx, attendance.Submission{SessionID: "SES1", Date: "2024-01-01"})
	require.NoError(t, err)
	assert.Empty(t, ledger, "empty submission is a no-op")

	ledger, err = svc.Submit(ctx, attendance.Submission{
		ClassroomID: "C1", SessionID: "SES1", Date: "2024-01-01",
		Marks: []attendance.Mark{
			{StudentID: "S1", Status: attendance.StatusPresent},
			{StudentID: "S2", Status: attendance.StatusAbsent},
		},
	})
	require.NoError(t, err)
	assert.Len(t, ledger, 2)

	ledger, err = svc.Submit(ctx, attendance.Submission{
		SessionID: "SES1", Date: "2024-01-01",
		Marks:     []attendance.Mark{{StudentID: "S2", Status: attendance.StatusPresent}},
	})
	require.NoError(t, err)
	require.Len(t, ledger, 2)
	assert.Equal(t, attendance.StatusPresent, ledger[1].Status)

	tests := []struct {
		name      string
		sub       attendance.Submission
		wantField string
	}{
		{
			name:      "unknown session",
			sub:       attendance.Submission{SessionID: "SES99", Date: "2024-01-01", Marks: []attendance.Mark{{StudentID: "S1", Status: attendance.StatusPresent}}},
			wantField: "session_id",
		},
		{
			name:      "unknown classroom",
			sub:       attendance.Submission{ClassroomID: "C9", SessionID: "SES1", Date: "2024-01-01", Marks: []attendance.Mark{{StudentID: "S1", Status: attendance.StatusPresent}}},
			wantField: "classroom_id",
		},
		{
			name: "unknown student",
			sub: attendance.Submission{SessionID: "SES1", Date: "2024-01-01", Marks: []attendance.Mark{
				{StudentID: "S1", Status: attendance.StatusPresent},
				{StudentID: "S99", Status: attendance.StatusPresent},
			}},
			wantField: "marks[1].student_id",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Submit(ctx, tt.sub)
			require.Error(t, err)
			assert.Equal(t, tt.wantField, errField(t, err))

			ledger, err := svc.Query(ctx, attendance.QueryFilter{})
			require.NoError(t, err)
			assert.Len(t, ledger, 2, "rejected submission leaves the ledger untouched")
		})
	}
}

func TestService_Submit_concurrent(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	var wg sync.WaitGroup
	for _, id := range []string{"S1", "S2", "S3", "S4", "S5", "S6", "S7", "S8"} {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			_, err := svc.Submit(ctx, attendance.Submission{
				SessionID: "SES1", Date: "2024-01-01",
				Marks:     []attendance.Mark{{StudentID: id, Status: attendance.StatusPresent}},
			})
			assert.NoError(t, err)
		}(id)
	}
	wg.Wait()

	ledger, err := svc.Query(ctx, attendance.QueryFilter{})
	require.NoError(t, err)
	assert.Len(t, ledger, 8, "no write is lost")
}

func TestService_MarkAll_and_Summary(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	ledger, err := svc.MarkAll(ctx, attendance.MarkAll{ClassroomID: "C2", SessionID: "SES1", Date: "2024-01-01", Status: attendance.StatusPresent})
	require.NoError(t, err)
	assert.Len(t, ledger, 10)

	_, err = svc.MarkAll(ctx, attendance.MarkAll{ClassroomID: "C2", SessionID: "SES2", Date: "2024-01-01", Status: attendance.StatusAbsent})
	require.NoError(t, err)

	summary, err := svc.Summary(ctx, "S12", " S1 ")
	require.NoError(t, err)
	assert.Equal(t, attendance.Summary{
		"S12": {Present: 1, Absent: 1, Hours: 1.5},
		"S1":  {},
	}, summary)

	summary, err = svc.Summary(ctx)
	require.NoError(t, err)
	assert.Len(t, summary, 36, "every student is summarized")

	hours, err := svc.StudentHours(ctx, "S12")
	require.NoError(t, err)
	assert.Equal(t, 1.5, hours)

	_, err = svc.StudentHours(ctx, "S99")
	assert.Error(t, err)

	_, err = svc.MarkAll(ctx, attendance.MarkAll{ClassroomID: "C9", SessionID: "SES1", Date: "2024-01-01", Status: attendance.StatusPresent})
	assert.Equal(t, "classroom_id", errField(t, err))
}

func TestService_Query_and_Register(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	_, err := svc.Submit(ctx, attendance.Submission{
		SessionID: "SES1", Date: "2024-01-01",
		Marks: []attendance.Mark{
			{StudentID: "S1", Status: attendance.StatusPresent},
			{StudentID: "S2", Status: attendance.StatusAbsent},
		},
	})
	require.NoError(t, err)
	_, err = svc.Submit(ctx, attendance.Submission{
		SessionID: "SES2", Date: "2024-01-02",
		Marks:     []attendance.Mark{{StudentID: "S1", Status: attendance.StatusAbsent}},
	})
	require.NoError(t, err)

	tests := []struct {
		name   string
		filter attendance.QueryFilter
		want   int
	}{
		{"no filter", attendance.QueryFilter{}, 3},
		{"by date", attendance.QueryFilter{Date: "2024-01-01"}, 2},
		{"by session", attendance.QueryFilter{SessionID: " SES2 "}, 1},
		{"by student", attendance.QueryFilter{StudentID: "S1"}, 2},
		{"no match", attendance.QueryFilter{StudentID: "S2", SessionID: "SES2"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := svc.Query(ctx, tt.filter)
			require.NoError(t, err)
			assert.Len(t, records, tt.want)
		})
	}

	entries, err := svc.Register(ctx, attendance.RegisterQuery{ClassroomID: "C1", SessionID: "SES1", Date: "2024-01-01"})
	require.NoError(t, err)
	require.Len(t, entries, 11)
	assert.Equal(t, attendance.RegisterEntry{StudentID: "S1", Name: "Student 1", Status: attendance.StatusPresent}, entries[0])
	assert.Equal(t, attendance.StatusAbsent, entries[1].Status)
	assert.Empty(t, entries[2].Status)
}

func TestService_ReportAbsence(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	attendance.NowFunc = func() time.Time { return time.Date(2024, 1, 2, 8, 0, 0, 0, time.Local) }
	defer func() { attendance.NowFunc = time.Now }()

	report, err := svc.ReportAbsence(ctx, attendance.NewAbsenceReport{StudentID: "S3", Date: "2024-01-03", Reason: "Sick"})
	require.NoError(t, err)
	assert.NotEmpty(t, report.ID)
	assert.Equal(t, time.UTC, report.ReportedAt.Location())

	_, err = svc.ReportAbsence(ctx, attendance.NewAbsenceReport{StudentID: "S99", Date: "2024-01-03", Reason: "Sick"})
	assert.Equal(t, "student_id", errField(t, err))

	reports, err := svc.AbsenceReports(ctx)
	require.NoError(t, err)
	assert.Equal(t, []attendance.AbsenceReport{report}, reports)

	ledger, err := svc.Query(ctx, attendance.QueryFilter{})
	require.NoError(t, err)
	assert.Empty(t, ledger, "reports do not touch the ledger")
}
