package tests

import (
	"bytes"
	"image"
	_ "image/png"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/darasa/core/certificate"
)

func Test_certificateApi_preview(t *testing.T) {
	resetDB()
	token := staffToken(t)

	certificate.NowFunc = func() time.Time { return time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC) }
	defer func() { certificate.NowFunc = time.Now }()

	tests := []httpTest{
		{
			name: "Defaults", path: "/v1/certificates/S1/preview", wantCode: http.StatusOK,
			wantData: marshalObj(t, certificate.Certificate{
				StudentName: "Student 1", StudentID: "S1", ShowStudentID: true, Level: 1, CompletionDate: "2024-06-30",
			}),
		},
		{
			name: "Options", path: "/v1/certificates/S22/preview?level=3&date=2024-07-01&show_id=false", wantCode: http.StatusOK,
			wantData: marshalObj(t, certificate.Certificate{
				StudentName: "Student 22", StudentID: "S22", Level: 3, CompletionDate: "2024-07-01",
			}),
		},
		{
			name: "Unknown student", path: "/v1/certificates/S99/preview", wantCode: http.StatusNotFound,
			wantData: marshalObj(t, httpErr{Error: "student not found"}),
		},
		{
			name: "Bad level", path: "/v1/certificates/S1/preview?level=one", wantCode: http.StatusBadRequest,
			wantData: marshalObj(t, map[string]string{"level": "level must be a number"}),
		},
		{
			name: "Bad show_id", path: "/v1/certificates/S1/preview?show_id=maybe", wantCode: http.StatusBadRequest,
			wantData: marshalObj(t, map[string]string{"show_id": "show_id must be a boolean"}),
		},
		{
			name: "Bad date", path: "/v1/certificates/S1/preview?date=30-06-2024", wantCode: http.StatusBadRequest,
			wantData: marshalObj(t, map[string]string{"date": "date must be a valid date (YYYY-MM-DD)"}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(http.MethodGet, tt.path, token)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}

	t.Run("Attendance hours", func(t *testing.T) {
		body := []byte(`{"classroom_id": "C1", "session_id": "SES1", "date": "2024-03-01", "status": "present"}`)
		req, rec := newAuthRequest(http.MethodPost, "/v1/attendance/mark-all", token, body)
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		req, rec = newAuthRequest(http.MethodGet, "/v1/certificates/S1/preview", token)
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		var cert certificate.Certificate
		decode(t, rec, &cert)
		assert.Equal(t, 1.5, cert.AttendanceHours)
	})
}

func Test_certificateApi_download(t *testing.T) {
	resetDB()
	token := staffToken(t)

	t.Run("Auth required", func(t *testing.T) {
		req, rec := newRequest(http.MethodGet, "/v1/certificates/S1")
		app.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("PDF by default", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/certificates/S1", token)
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
		assert.Equal(t, `attachment; filename="Certificate-Student_1.pdf"`, rec.Header().Get("Content-Disposition"))
		assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")))
	})

	t.Run("PNG", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/certificates/S1?format=PNG", token)
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
		assert.Equal(t, `attachment; filename="Certificate-Student_1.png"`, rec.Header().Get("Content-Disposition"))

		cfg, format, err := image.DecodeConfig(rec.Body)
		require.NoError(t, err)
		assert.Equal(t, "png", format)
		assert.Equal(t, 1600, cfg.Width)
		assert.Equal(t, 1130, cfg.Height)
	})

	t.Run("Unsupported format", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/certificates/S1?format=docx", token)
		app.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		var errs map[string]string
		decode(t, rec, &errs)
		assert.Contains(t, errs, "format")
	})
}
