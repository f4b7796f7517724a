package service

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

type EmployeeRow struct {
	Name        string
	Email       string
	Department  string
	Designation string
	Phone       string
	Role        string
	Active      bool
}

// EmployeesExcel renders the employee roster as an xlsx workbook.
func EmployeesExcel(rows []EmployeeRow) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	sheet := "Sheet1"

	headers := []string{"Name", "Email", "Department", "Designation", "Phone", "Role", "Active"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, errors.Wrap(err, "writing header")
		}
	}

	for i, row := range rows {
		rowNum := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", rowNum), row.Name)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", rowNum), row.Email)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", rowNum), row.Department)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", rowNum), row.Designation)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", rowNum), row.Phone)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", rowNum), row.Role)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", rowNum), row.Active)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "writing workbook")
	}

	return buf, nil
}
