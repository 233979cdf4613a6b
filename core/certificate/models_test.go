package certificate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCertificate_Filename(t *testing.T) {
	tests := []struct {
		name   string
		format string
		want   string
	}{
		{name: "Student 1", format: FormatPDF, want: "Certificate-Student_1.pdf"},
		{name: "Mary  Jane Doe", format: FormatPNG, want: "Certificate-Mary__Jane_Doe.png"},
		{name: "Solo", format: FormatPDF, want: "Certificate-Solo.pdf"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Certificate{StudentName: tt.name}.Filename(tt.format))
		})
	}
}

func TestCertificate_DisplayDate(t *testing.T) {
	assert.Equal(t, "March 4, 2024", Certificate{CompletionDate: "2024-03-04"}.DisplayDate())
	assert.Equal(t, "____________", Certificate{CompletionDate: "04/03/2024"}.DisplayDate())
}

func TestCertificate_lines(t *testing.T) {
	cert := Certificate{StudentName: "Student 1", StudentID: "S1", Level: 2, CompletionDate: "2024-03-04", AttendanceHours: 4.5}

	texts := func(c Certificate) []string {
		var out []string
		for _, ln := range c.lines() {
			out = append(out, ln.text)
		}
		return out
	}
	assert.NotContains(t, texts(cert), "Student ID: S1")

	cert.ShowStudentID = true
	got := texts(cert)
	assert.Contains(t, got, "Student ID: S1")
	assert.Contains(t, got, "with a total attendance of 4.5 hours, for Level 2.")
	assert.Contains(t, got, "Awarded on this day, March 4, 2024")
}
