package domain

// ReportFilter narrows a report listing. Nil fields match everything.
type ReportFilter struct {
	ReporterID *string
	Status     *ReportStatus
	CrimeType  *CrimeType
}

// Match reports whether r satisfies every set criterion of f.
func (f ReportFilter) Match(r *Report) bool {
	if f.ReporterID != nil && r.ReporterID != *f.ReporterID {
		return false
	}
	if f.Status != nil && r.Status != *f.Status {
		return false
	}
	if f.CrimeType != nil && r.CrimeType != *f.CrimeType {
		return false
	}
	return true
}
