package tests

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	echoapi "github.com/trezcool/darasa/apps/api/echo"
	"github.com/trezcool/darasa/core/attendance"
)

func submission(t *testing.T, classroomID, sessionID, date string, marks ...attendance.Mark) []byte {
	return marshalObj(t, attendance.Submission{ClassroomID: classroomID, SessionID: sessionID, Date: date, Marks: marks})
}

func Test_attendanceApi_submit(t *testing.T) {
	resetDB()
	token := staffToken(t)

	const day = "2024-01-15"
	present := func(id string) attendance.Mark { return attendance.Mark{StudentID: id, Status: attendance.StatusPresent} }
	absent := func(id string) attendance.Mark { return attendance.Mark{StudentID: id, Status: attendance.StatusAbsent} }
	rec := func(id string, status attendance.Status) attendance.Record {
		return attendance.Record{StudentID: id, SessionID: "SES1", Date: day, Status: status}
	}

	tests := []httpTest{
		{name: "Auth required", body: submission(t, "C1", "SES1", day, present("S1")), wantCode: http.StatusUnauthorized, wantData: marshalObj(t, errMissingToken)},
		{
			name: "Invalid submission", token: token, body: []byte(`{"date": "15/01/2024", "marks": [{"student_id": "S1", "status": "late"}]}`),
			wantCode: http.StatusBadRequest,
			wantData: marshalObj(t, map[string]string{
				"session_id":      "this field is required",
				"date":            "date must be a valid date (YYYY-MM-DD)",
				"marks[0].status": "status must be one of: present, absent",
			}),
		},
		{
			name: "Unknown session", token: token, body: submission(t, "", "SES99", day, present("S1")),
			wantCode: http.StatusBadRequest, wantData: marshalObj(t, map[string]string{"session_id": "session not found"}),
		},
		{
			name: "Unknown student", token: token, body: submission(t, "C1", "SES1", day, present("S1"), present("S99")),
			wantCode: http.StatusBadRequest, wantData: marshalObj(t, map[string]string{"marks[1].student_id": "student not found"}),
		},
		{name: "Empty batch", token: token, body: submission(t, "C1", "SES1", day), wantCode: http.StatusOK, wantData: []byte(`[]`)},
		{
			name: "First batch", token: token, body: submission(t, "C1", "SES1", day, present("S1"), absent("S2")),
			wantCode: http.StatusOK,
			wantData: marshalObj(t, []attendance.Record{rec("S1", attendance.StatusPresent), rec("S2", attendance.StatusAbsent)}),
		},
		{
			name: "Correction replaces in place", token: token, body: submission(t, "C1", "SES1", day, present("S3"), absent("S1")),
			wantCode: http.StatusOK,
			wantData: marshalObj(t, []attendance.Record{
				rec("S1", attendance.StatusAbsent), rec("S2", attendance.StatusAbsent), rec("S3", attendance.StatusPresent),
			}),
		},
		{
			name: "Status is case insensitive", token: token, body: []byte(`{"session_id": "SES1", "date": "` + day + `", "marks": [{"student_id": "S2", "status": " PRESENT "}]}`),
			wantCode: http.StatusOK,
			wantData: marshalObj(t, []attendance.Record{
				rec("S1", attendance.StatusAbsent), rec("S2", attendance.StatusPresent), rec("S3", attendance.StatusPresent),
			}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(http.MethodPost, "/v1/attendance", tt.token, tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_attendanceApi_queryAndRegister(t *testing.T) {
	resetDB()
	token := staffToken(t)

	for _, body := range [][]byte{
		submission(t, "C1", "SES1", "2024-01-15",
			attendance.Mark{StudentID: "S1", Status: attendance.StatusPresent},
			attendance.Mark{StudentID: "S2", Status: attendance.StatusAbsent},
		),
		submission(t, "C1", "SES2", "2024-01-15", attendance.Mark{StudentID: "S1", Status: attendance.StatusPresent}),
		submission(t, "C1", "SES1", "2024-01-16", attendance.Mark{StudentID: "S1", Status: attendance.StatusAbsent}),
	} {
		req, rec := newAuthRequest(http.MethodPost, "/v1/attendance", token, body)
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	}

	queries := []struct {
		name    string
		path    string
		wantLen int
	}{
		{name: "All", path: "/v1/attendance", wantLen: 4},
		{name: "By date", path: "/v1/attendance?date=2024-01-15", wantLen: 3},
		{name: "By session", path: "/v1/attendance?session=SES1", wantLen: 3},
		{name: "By student", path: "/v1/attendance?student=S1", wantLen: 3},
		{name: "Combined", path: "/v1/attendance?date=2024-01-15&session=SES1&student=S2", wantLen: 1},
		{name: "No match", path: "/v1/attendance?date=2023-01-01", wantLen: 0},
	}
	for _, tt := range queries {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(http.MethodGet, tt.path, token)
			app.ServeHTTP(rec, req)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

			var records []attendance.Record
			decode(t, rec, &records)
			assert.Len(t, records, tt.wantLen)
		})
	}

	t.Run("Invalid date filter", func(t *testing.T) {
		tt := httpTest{wantCode: http.StatusBadRequest, wantData: marshalObj(t, map[string]string{"date": "date must be a valid date (YYYY-MM-DD)"})}
		req, rec := newAuthRequest(http.MethodGet, "/v1/attendance?date=yesterday", token)
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, tt, rec)
	})

	t.Run("Register", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/attendance/register?classroom=C1&session=SES1&date=2024-01-15", token)
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var entries []attendance.RegisterEntry
		decode(t, rec, &entries)
		require.Len(t, entries, 11)
		assert.Equal(t, attendance.RegisterEntry{StudentID: "S1", Name: "Student 1", Status: attendance.StatusPresent}, entries[0])
		assert.Equal(t, attendance.StatusAbsent, entries[1].Status)
		assert.Empty(t, entries[2].Status)
	})

	t.Run("Register of unknown classroom", func(t *testing.T) {
		tt := httpTest{wantCode: http.StatusNotFound, wantData: marshalObj(t, httpErr{Error: "classroom not found"})}
		req, rec := newAuthRequest(http.MethodGet, "/v1/attendance/register?classroom=C9&session=SES1&date=2024-01-15", token)
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, tt, rec)
	})
}

func Test_attendanceApi_markAllAndSummary(t *testing.T) {
	resetDB()
	token := staffToken(t)

	body := marshalObj(t, attendance.MarkAll{ClassroomID: "C2", SessionID: "SES1", Date: "2024-02-01", Status: attendance.StatusPresent})
	req, rec := newAuthRequest(http.MethodPost, "/v1/attendance/mark-all", token, body)
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var ledger []attendance.Record
	decode(t, rec, &ledger)
	assert.Len(t, ledger, 10)

	body = submission(t, "C2", "SES2", "2024-02-01",
		attendance.Mark{StudentID: "S12", Status: attendance.StatusPresent},
		attendance.Mark{StudentID: "S13", Status: attendance.StatusAbsent},
	)
	req, rec = newAuthRequest(http.MethodPost, "/v1/attendance", token, body)
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	t.Run("Selected students", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/attendance/summary?student=S12&student=S13&student=S1", token)
		app.ServeHTTP(rec, req)
		tt := httpTest{
			wantCode: http.StatusOK,
			wantData: marshalObj(t, echoapi.SummaryResponse{
				HoursPerSession: 1.5,
				Students: attendance.Summary{
					"S12": {Present: 2, Absent: 0, Hours: 3},
					"S13": {Present: 1, Absent: 1, Hours: 1.5},
					"S1":  {},
				},
			}),
		}
		checkCodeAndData(t, tt, rec)
	})

	t.Run("All students", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/attendance/summary", token)
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp echoapi.SummaryResponse
		decode(t, rec, &resp)
		assert.Len(t, resp.Students, 36)
		assert.Equal(t, attendance.Tally{Present: 1, Hours: 1.5}, resp.Students["S20"])
	})

	t.Run("Mark all of unknown classroom", func(t *testing.T) {
		body := marshalObj(t, attendance.MarkAll{ClassroomID: "C9", SessionID: "SES1", Date: "2024-02-01", Status: attendance.StatusAbsent})
		req, rec := newAuthRequest(http.MethodPost, "/v1/attendance/mark-all", token, body)
		app.ServeHTTP(rec, req)
		tt := httpTest{wantCode: http.StatusBadRequest, wantData: marshalObj(t, map[string]string{"classroom_id": "classroom not found"})}
		checkCodeAndData(t, tt, rec)
	})
}

func Test_attendanceApi_absenceReports(t *testing.T) {
	resetDB()
	token := staffToken(t)

	tests := []httpTest{
		{
			name: "Invalid report", token: token, body: []byte(`{"date": "2024-13-01"}`), wantCode: http.StatusBadRequest,
			wantData: marshalObj(t, map[string]string{
				"student_id": "this field is required",
				"date":       "date must be a valid date (YYYY-MM-DD)",
			}),
		},
		{
			name: "Unknown student", token: token, body: []byte(`{"student_id": "S99", "date": "2024-01-15"}`),
			wantCode: http.StatusBadRequest, wantData: marshalObj(t, map[string]string{"student_id": "student not found"}),
		},
		{name: "Reported", token: token, body: []byte(`{"student_id": "S5", "date": "2024-01-15", "reason": " Flu "}`), wantCode: http.StatusCreated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(http.MethodPost, "/v1/attendance/absence-reports", tt.token, tt.body)
			app.ServeHTTP(rec, req)
			if tt.wantCode == http.StatusCreated {
				require.Equal(t, tt.wantCode, rec.Code, rec.Body.String())
				var report attendance.AbsenceReport
				decode(t, rec, &report)
				assert.NotEmpty(t, report.ID)
				assert.Equal(t, "Flu", report.Reason)
				return
			}
			checkCodeAndData(t, tt, rec)
		})
	}

	t.Run("Ledger untouched", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/attendance", token)
		app.ServeHTTP(rec, req)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("List", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/attendance/absence-reports", token)
		app.ServeHTTP(rec, req)
		var reports []json.RawMessage
		decode(t, rec, &reports)
		assert.Len(t, reports, 1)
	})
}
