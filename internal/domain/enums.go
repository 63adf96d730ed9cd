package domain

// CrimeType classifies an incident report.
type CrimeType string

const (
	CrimeTypeTheft     CrimeType = "theft"
	CrimeTypeAssault   CrimeType = "assault"
	CrimeTypeVandalism CrimeType = "vandalism"
	CrimeTypeBurglary  CrimeType = "burglary"
	CrimeTypeRobbery   CrimeType = "robbery"
	CrimeTypeEmergency CrimeType = "emergency"
	CrimeTypeOther     CrimeType = "other"
)

func (c CrimeType) String() string { return string(c) }

func (c CrimeType) IsValid() bool {
	switch c {
	case CrimeTypeTheft, CrimeTypeAssault, CrimeTypeVandalism, CrimeTypeBurglary,
		CrimeTypeRobbery, CrimeTypeEmergency, CrimeTypeOther:
		return true
	}
	return false
}

// ReportStatus is the lifecycle state of an incident report.
type ReportStatus string

const (
	ReportStatusPending    ReportStatus = "pending"
	ReportStatusInProgress ReportStatus = "in-progress"
	ReportStatusResolved   ReportStatus = "resolved"
)

func (s ReportStatus) String() string { return string(s) }

func (s ReportStatus) IsValid() bool {
	switch s {
	case ReportStatusPending, ReportStatusInProgress, ReportStatusResolved:
		return true
	}
	return false
}
