package certificate

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/trezcool/darasa/core"
)

// Supported formats.
const (
	FormatPDF = "pdf"
	FormatPNG = "png"
)

// Request holds the options of a certificate download.
type Request struct {
	StudentID      string `json:"student_id" validate:"required"`
	Level          int    `json:"level" validate:"omitempty,min=1"`
	CompletionDate string `json:"date" validate:"omitempty,isodate"`
	ShowStudentID  *bool  `json:"show_id"`
	Format         string `json:"format" validate:"omitempty,oneof=pdf png"`
}

func (req *Request) Validate(validate *validator.Validate) error {
	req.StudentID = core.CleanString(req.StudentID)
	req.CompletionDate = core.CleanString(req.CompletionDate)
	req.Format = core.CleanString(req.Format, true /* lower */)
	return validate.Struct(req)
}

// Certificate is the content of a certificate of completion.
type Certificate struct {
	StudentName     string  `json:"student_name"`
	StudentID       string  `json:"student_id"`
	ShowStudentID   bool    `json:"show_student_id"`
	Level           int     `json:"level"`
	CompletionDate  string  `json:"completion_date"` // YYYY-MM-DD
	AttendanceHours float64 `json:"attendance_hours"`
}

// Filename returns the download name of the certificate, eg. "Certificate-Student_1.pdf".
func (c Certificate) Filename(format string) string {
	return fmt.Sprintf("Certificate-%s.%s", strings.ReplaceAll(c.StudentName, " ", "_"), format)
}

// DisplayDate formats the completion date like "January 2, 2006".
func (c Certificate) DisplayDate() string {
	d, err := time.Parse(core.DateLayout, c.CompletionDate)
	if err != nil {
		return "____________"
	}
	return d.Format("January 2, 2006")
}

type textLine struct {
	text string
	size float64 // pt
	y    float64 // baseline, from the top
	bold bool
}

// lines lays out the certificate text on the page.
func (c Certificate) lines() []textLine {
	ls := []textLine{
		{text: "Certificate of Completion", size: 36, y: 95, bold: true},
		{text: "This certificate is proudly presented to", size: 16, y: 140},
		{text: c.StudentName, size: 40, y: 225, bold: true},
	}
	if c.ShowStudentID {
		ls = append(ls, textLine{text: "Student ID: " + c.StudentID, size: 12, y: 262})
	}
	hours := strconv.FormatFloat(c.AttendanceHours, 'f', -1, 64)
	ls = append(ls,
		textLine{text: "for successfully completing all required coursework,", size: 14, y: 320},
		textLine{text: fmt.Sprintf("with a total attendance of %s hours, for Level %d.", hours, c.Level), size: 14, y: 342},
		textLine{text: "Awarded on this day, " + c.DisplayDate(), size: 12, y: 385},
	)
	return ls
}

// Page geometry, in pt.
const (
	pageWidth  = 800
	pageHeight = 565
	margin     = 20
	footerY    = 500
)
