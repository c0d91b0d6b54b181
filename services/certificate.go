package services

import (
	"bytes"
	"context"
	"fmt"

	"github.com/CPU-commits/Intranet_BLearning/models"
	"github.com/CPU-commits/Intranet_BLearning/res"
	"github.com/jung-kurt/gofpdf"
)

// Certificate renders the completion certificate of a completed enrollment
func (e *EnrollmentService) Certificate(ctx context.Context, idEnrollment string, claims *Claims) (*bytes.Buffer, string, *res.ErrorRes) {
	enrollment, errRes := e.ownEnrollment(ctx, idEnrollment, claims)
	if errRes != nil {
		return nil, "", errRes
	}
	if enrollment.Status != models.ENROLLMENT_COMPLETED || enrollment.CompletedAt == nil {
		return nil, "", res.BadRequest(fmt.Errorf("the course is not completed yet"))
	}
	course, errRes := e.findCourse(ctx, enrollment.Course)
	if errRes != nil {
		return nil, "", errRes
	}
	student, errRes := e.findUser(ctx, enrollment.User)
	if errRes != nil {
		return nil, "", errRes
	}
	instructorName := ""
	if instructor, err := e.Users.FindByID(ctx, course.Instructor); err == nil && instructor != nil {
		instructorName = instructor.Name
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(fmt.Sprintf("Certificate - %s", course.Title), true)
	pdf.AddPage()
	pdf.SetDrawColor(40, 70, 140)
	pdf.SetLineWidth(2)
	pdf.Rect(10, 10, 277, 190, "D")

	pdf.SetFont("Helvetica", "B", 32)
	pdf.SetY(40)
	pdf.CellFormat(0, 15, tr("Certificate of Completion"), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 16)
	pdf.CellFormat(0, 20, tr(fmt.Sprintf("%s certifies that", e.AppName)), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "B", 26)
	pdf.CellFormat(0, 15, tr(student.Name), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 16)
	pdf.CellFormat(0, 15, tr("has successfully completed the course"), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 15, tr(course.Title), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(
		0,
		15,
		tr(fmt.Sprintf("Completed on %s", enrollment.CompletedAt.UTC().Format("January 2, 2006"))),
		"",
		1,
		"C",
		false,
		0,
		"",
	)
	if instructorName != "" {
		pdf.CellFormat(0, 10, tr(fmt.Sprintf("Instructor: %s", instructorName)), "", 1, "C", false, 0, "")
	}
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetY(185)
	pdf.CellFormat(0, 5, fmt.Sprintf("ID %s", enrollment.ID.Hex()), "", 1, "C", false, 0, "")

	buf := new(bytes.Buffer)
	if err := pdf.Output(buf); err != nil {
		return nil, "", e.internal(err)
	}
	return buf, fmt.Sprintf("certificate-%s.pdf", enrollment.ID.Hex()), nil
}
