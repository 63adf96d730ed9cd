// Package api defines the JSON wire types of the CrimeWatch HTTP API.
// They are shared by the server handlers and the Go client.
package api

import "time"

// Location is a WGS84 point.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Actor is a signed-in or registered identity.
type Actor struct {
	ID          string    `json:"id"`
	DisplayName string    `json:"displayName"`
	Email       string    `json:"email"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Session describes who is currently signed in. Actor is nil when nobody is.
type Session struct {
	Actor *Actor `json:"actor"`
}

// RegisterRequest is the body of POST /api/v1/session/register.
type RegisterRequest struct {
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
}

// SignInRequest is the body of POST /api/v1/session/sign-in.
type SignInRequest struct {
	Email string `json:"email"`
}

// Report is a filed incident report.
type Report struct {
	ID            string     `json:"id"`
	ReporterID    string     `json:"reporterId"`
	ReporterEmail string     `json:"reporterEmail"`
	CrimeType     string     `json:"crimeType"`
	Description   *string    `json:"description,omitempty"`
	Location      Location   `json:"location"`
	Address       string     `json:"address"`
	OccurredAt    time.Time  `json:"occurredAt"`
	Images        []string   `json:"images"`
	Status        string     `json:"status"`
	AssignedTeam  *string    `json:"assignedTeam,omitempty"`
	ResolvedAt    *time.Time `json:"resolvedAt,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// ReportList wraps a list of reports.
type ReportList struct {
	Reports []Report `json:"reports"`
}

// SubmitReportRequest is the body of POST /api/v1/reports.
type SubmitReportRequest struct {
	ReporterID    string    `json:"reporterId,omitempty"`
	ReporterEmail string    `json:"reporterEmail"`
	CrimeType     string    `json:"crimeType"`
	Description   *string   `json:"description,omitempty"`
	Location      *Location `json:"location"`
	Address       string    `json:"address,omitempty"`
	OccurredAt    time.Time `json:"occurredAt"`
	Images        []string  `json:"images,omitempty"`
}

// EmergencyRequest is the body of POST /api/v1/reports/emergency.
type EmergencyRequest struct {
	Location *Location `json:"location"`
}

// UpdateStatusRequest is the body of POST /api/v1/reports/{id}/status.
type UpdateStatusRequest struct {
	Status string  `json:"status"`
	TeamID *string `json:"teamId,omitempty"`
}

// Team is a response team on the roster.
type Team struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Members   []string `json:"members"`
	Available bool     `json:"available"`
}

// TeamList wraps a list of teams.
type TeamList struct {
	Teams []Team `json:"teams"`
}

// SetAvailabilityRequest is the body of PUT /api/v1/teams/{id}/availability.
type SetAvailabilityRequest struct {
	Available *bool `json:"available"`
}

// Stats holds the dashboard counters.
type Stats struct {
	Total       int            `json:"total"`
	Pending     int            `json:"pending"`
	InProgress  int            `json:"inProgress"`
	Resolved    int            `json:"resolved"`
	Emergencies int            `json:"emergencies"`
	ByCrimeType map[string]int `json:"byCrimeType"`
}

// Error is the body of every non-2xx response.
type Error struct {
	Error     string       `json:"error"`
	Fields    []FieldError `json:"fields,omitempty"`
	RequestID string       `json:"requestId,omitempty"`
}

// FieldError is one entry of a validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
