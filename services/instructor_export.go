package services

import (
	"bytes"
	"context"
	"fmt"

	"github.com/CPU-commits/Intranet_BLearning/funct"
	"github.com/CPU-commits/Intranet_BLearning/models"
	"github.com/CPU-commits/Intranet_BLearning/res"
	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const DATE_LAYOUT = "2006-01-02 15:04"

var exportHeaders = []string{
	"Student",
	"Email",
	"Status",
	"Progress (%)",
	"Enrolled at",
	"Completed at",
}

// ExportEnrollments writes a xlsx with the enrollments of a course
func (i *InstructorService) ExportEnrollments(ctx context.Context, idCourse string, claims *Claims) (*bytes.Buffer, string, *res.ErrorRes) {
	idObjCourse, errRes := parseID(idCourse, "course")
	if errRes != nil {
		return nil, "", errRes
	}
	course, errRes := i.managedCourse(ctx, idObjCourse, claims)
	if errRes != nil {
		return nil, "", errRes
	}
	enrollments, err := i.Enrollments.FindByCourse(ctx, course.ID)
	if err != nil {
		return nil, "", i.unavailable(err)
	}
	idUsers, _ := funct.Map(enrollments, func(enrollment models.Enrollment) (primitive.ObjectID, error) {
		return enrollment.User, nil
	})
	users, err := i.Users.FindByIDs(ctx, idUsers)
	if err != nil {
		return nil, "", i.unavailable(err)
	}
	names := make(map[primitive.ObjectID][2]string, len(users))
	for _, user := range users {
		names[user.ID] = [2]string{user.Name, user.Email}
	}

	file := excelize.NewFile()
	sheetName := "Enrollments"
	file.SetSheetName("Sheet1", sheetName)
	for j, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(j+1, 1)
		file.SetCellValue(sheetName, cell, header)
	}
	for row, enrollment := range enrollments {
		completedAt := ""
		if enrollment.CompletedAt != nil {
			completedAt = enrollment.CompletedAt.UTC().Format(DATE_LAYOUT)
		}
		student := names[enrollment.User]
		values := []interface{}{
			student[0],
			student[1],
			enrollment.Status,
			enrollment.Progress,
			enrollment.EnrolledAt.UTC().Format(DATE_LAYOUT),
			completedAt,
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			file.SetCellValue(sheetName, cell, value)
		}
	}

	buf := new(bytes.Buffer)
	if err := file.Write(buf); err != nil {
		return nil, "", i.internal(err)
	}
	return buf, fmt.Sprintf("enrollments-%s.xlsx", course.ID.Hex()), nil
}
