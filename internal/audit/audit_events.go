package audit

import "fmt"

// Event is one auditable action. Each action has its own type carrying only
// the fields that action produces; the recorder serializes the whole value
// into the entry's attributes.
type Event interface {
	Action() string
	Details() string
}

type AttendanceAdded struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	ServiceName string `json:"service_name"`
	Date        string `json:"date"`
}

func (AttendanceAdded) Action() string { return "Attendance Added" }
func (e AttendanceAdded) Details() string {
	return fmt.Sprintf("Added %s (%s) to %s on %s", e.Name, e.Category, e.ServiceName, e.Date)
}

type NameChanged struct {
	OldName        string `json:"old_name"`
	NewName        string `json:"new_name"`
	AttendanceRows int64  `json:"attendance_rows"`
	MembershipRows int64  `json:"membership_rows"`
}

func (NameChanged) Action() string { return "Name Update" }
func (e NameChanged) Details() string {
	return fmt.Sprintf("Renamed %s to %s", e.OldName, e.NewName)
}

type CategoryChanged struct {
	Name        string `json:"name"`
	OldCategory string `json:"old_category"`
	NewCategory string `json:"new_category"`
}

func (CategoryChanged) Action() string { return "Category Update" }
func (e CategoryChanged) Details() string {
	return fmt.Sprintf("Changed %s from %s to %s", e.Name, e.OldCategory, e.NewCategory)
}

type MembersImported struct {
	Imported int    `json:"imported"`
	Skipped  int    `json:"skipped"`
	Source   string `json:"source"`
}

func (MembersImported) Action() string { return "Members Imported" }
func (e MembersImported) Details() string {
	return fmt.Sprintf("Imported %d members (%d skipped)", e.Imported, e.Skipped)
}

type ServiceDeleted struct {
	ServiceName string `json:"service_name"`
	Removed     int64  `json:"removed"`
}

func (ServiceDeleted) Action() string { return "Service Deleted" }
func (e ServiceDeleted) Details() string {
	return fmt.Sprintf("Deleted service %s (%d records)", e.ServiceName, e.Removed)
}

type UserAdded struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (UserAdded) Action() string { return "User Added" }
func (e UserAdded) Details() string {
	return fmt.Sprintf("Granted %s access as %s", e.Email, e.Role)
}

type UserRoleUpdated struct {
	Email   string `json:"email"`
	OldRole string `json:"old_role"`
	NewRole string `json:"new_role"`
}

func (UserRoleUpdated) Action() string { return "User Role Updated" }
func (e UserRoleUpdated) Details() string {
	return fmt.Sprintf("Changed %s from %s to %s", e.Email, e.OldRole, e.NewRole)
}

type UserRemoved struct {
	Email string `json:"email"`
}

func (UserRemoved) Action() string { return "User Removed" }
func (e UserRemoved) Details() string {
	return fmt.Sprintf("Revoked access for %s", e.Email)
}

type ReportExported struct {
	ServiceName string `json:"service_name"`
	Format      string `json:"format"`
}

func (ReportExported) Action() string { return "Data Export" }
func (e ReportExported) Details() string {
	return fmt.Sprintf("Exported %s report as %s", e.ServiceName, e.Format)
}
