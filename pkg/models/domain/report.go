package domain

// Report represents a rendered analysis for terminal output
type Report struct {
	Title       string
	Sections    []ReportSection
	TotalAmount string
	Currency    string
}

// ReportSection represents a logical section in the report
type ReportSection struct {
	Title   string
	Summary map[string]interface{}
	Details []ReportDetail
}

// ReportDetail represents a single row within a section
type ReportDetail struct {
	Name        string
	Value       interface{}
	Unit        string
	Description string
}
