package enum

import "strings"

// ReportFormat is the file type of a downloadable report
type ReportFormat string

const (
	ReportFormatPDF  ReportFormat = "pdf"
	ReportFormatXLSX ReportFormat = "xlsx"
)

// ParseReportFormat defaults to PDF for empty or unknown values.
func ParseReportFormat(s string) ReportFormat {
	if strings.EqualFold(strings.TrimSpace(s), string(ReportFormatXLSX)) {
		return ReportFormatXLSX
	}
	return ReportFormatPDF
}

func (f ReportFormat) ContentType() string {
	if f == ReportFormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "application/pdf"
}

func (f ReportFormat) Extension() string {
	return string(f)
}
