package directory

import (
	"fmt"
	"log"
	"strings"

	"github.com/brightwood-pta/directorybackend/models"
)

// columnMap maps the CSV export's column names to student fields. Columns not
// listed here are ignored.
var columnMap = map[string]string{
	"First Name":           "firstName",
	"Last Name":            "lastName",
	"Nickname":             "nickname",
	"Gr":                   "grade",
	"Gender":               "gender",
	"Student School Email": "studentEmail",
	"Phone":                "phone",
	"Teacher First Name":   "teacherFirstName",
	"Teacher Last Name":    "teacherLastName",
	"Teacher Room":         "teacherRoom",
	"F1 Address Line 1":    "f1AddressLine1",
	"F1 City":              "f1City",
	"F1 State":             "f1State",
	"F1 Zip":               "f1Zip",
	"F1/G1 First Name":     "f1g1FirstName",
	"F1/G1 Last Name":      "f1g1LastName",
	"F1/G1 Phone":          "f1g1Phone",
	"F1/G1 2nd Phone":      "f1g1SecondPhone",
	"F1/G1 E-Mail":         "f1g1Email",
	"F1/G2 First Name":     "f1g2FirstName",
	"F1/G2 Last Name":      "f1g2LastName",
	"F1/G2 Phone":          "f1g2Phone",
	"F1/G2 2nd Phone":      "f1g2SecondPhone",
	"F1/G2 E-Mail":         "f1g2Email",
	"F2 Address Line 1":    "f2AddressLine1",
	"F2 City":              "f2City",
	"F2 State":             "f2State",
	"F2 Zip":               "f2Zip",
	"F2/G1 First Name":     "f2g1FirstName",
	"F2/G1 Last Name":      "f2g1LastName",
	"F2/G1 Phone":          "f2g1Phone",
	"F2/G1 2nd Phone":      "f2g1SecondPhone",
	"F2/G1 E-Mail":         "f2g1Email",
	"F2/G2 First Name":     "f2g2FirstName",
	"F2/G2 Last Name":      "f2g2LastName",
	"F2/G2 Phone":          "f2g2Phone",
	"F2/G2 2nd Phone":      "f2g2SecondPhone",
	"F2/G2 E-Mail":         "f2g2Email",
}

// ParseCSV turns the raw directory export into an ordered sequence of student
// records. Rows whose field count does not match the header are skipped with
// a logged warning rather than failing the whole document. Student ids are
// the 1-based line index at parse time, so a skipped row still consumes an
// id; ids are only stable within one load.
func ParseCSV(csvText string) []models.Student {
	lines := strings.Split(csvText, "\n")
	if len(lines) == 0 {
		return []models.Student{}
	}

	rawHeaders := strings.Split(lines[0], ",")
	headers := make([]string, len(rawHeaders))
	for i, h := range rawHeaders {
		headers[i] = stripOuterQuotes(strings.TrimSpace(h))
	}

	students := make([]models.Student, 0, len(lines)-1)
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "" {
			continue
		}

		values := parseLine(lines[i])
		if len(values) != len(headers) {
			log.Printf("Warning: line %d has %d values, expected %d; skipping row", i, len(values), len(headers))
			continue
		}

		student := models.Student{ID: fmt.Sprintf("student-%d", i)}
		for idx, header := range headers {
			field, ok := columnMap[header]
			if !ok {
				continue
			}
			setField(&student, field, cellValue(values[idx]))
		}
		students = append(students, student)
	}

	return students
}

// parseLine splits one data row on commas, honoring double quotes. A quote
// char toggles in-quote state and is never emitted, so the doubled-quote
// escape convention is not supported.
func parseLine(line string) []string {
	var values []string
	var current strings.Builder
	inQuotes := false

	for _, ch := range line {
		switch {
		case ch == '"':
			inQuotes = !inQuotes
		case ch == ',' && !inQuotes:
			values = append(values, current.String())
			current.Reset()
		default:
			current.WriteRune(ch)
		}
	}
	values = append(values, current.String())

	return values
}

// cellValue trims a raw cell, strips one outer quote pair, and maps the empty
// string to a null field.
func cellValue(raw string) *string {
	v := stripOuterQuotes(strings.TrimSpace(raw))
	if v == "" {
		return nil
	}
	return &v
}

func stripOuterQuotes(s string) string {
	s = strings.TrimPrefix(s, `"`)
	s = strings.TrimSuffix(s, `"`)
	return s
}

func stringValue(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func setField(s *models.Student, field string, value *string) {
	switch field {
	case "firstName":
		s.FirstName = stringValue(value)
	case "lastName":
		s.LastName = stringValue(value)
	case "nickname":
		s.Nickname = value
	case "grade":
		s.Grade = stringValue(value)
	case "gender":
		s.Gender = stringValue(value)
	case "studentEmail":
		s.StudentEmail = value
	case "phone":
		s.Phone = value
	case "teacherFirstName":
		s.TeacherFirstName = stringValue(value)
	case "teacherLastName":
		s.TeacherLastName = stringValue(value)
	case "teacherRoom":
		s.TeacherRoom = stringValue(value)
	case "f1AddressLine1":
		s.F1AddressLine1 = stringValue(value)
	case "f1City":
		s.F1City = stringValue(value)
	case "f1State":
		s.F1State = stringValue(value)
	case "f1Zip":
		s.F1Zip = stringValue(value)
	case "f1g1FirstName":
		s.F1G1FirstName = value
	case "f1g1LastName":
		s.F1G1LastName = value
	case "f1g1Phone":
		s.F1G1Phone = value
	case "f1g1SecondPhone":
		s.F1G1SecondPhone = value
	case "f1g1Email":
		s.F1G1Email = value
	case "f1g2FirstName":
		s.F1G2FirstName = value
	case "f1g2LastName":
		s.F1G2LastName = value
	case "f1g2Phone":
		s.F1G2Phone = value
	case "f1g2SecondPhone":
		s.F1G2SecondPhone = value
	case "f1g2Email":
		s.F1G2Email = value
	case "f2AddressLine1":
		s.F2AddressLine1 = value
	case "f2City":
		s.F2City = value
	case "f2State":
		s.F2State = value
	case "f2Zip":
		s.F2Zip = value
	case "f2g1FirstName":
		s.F2G1FirstName = value
	case "f2g1LastName":
		s.F2G1LastName = value
	case "f2g1Phone":
		s.F2G1Phone = value
	case "f2g1SecondPhone":
		s.F2G1SecondPhone = value
	case "f2g1Email":
		s.F2G1Email = value
	case "f2g2FirstName":
		s.F2G2FirstName = value
	case "f2g2LastName":
		s.F2G2LastName = value
	case "f2g2Phone":
		s.F2G2Phone = value
	case "f2g2SecondPhone":
		s.F2G2SecondPhone = value
	case "f2g2Email":
		s.F2G2Email = value
	}
}
