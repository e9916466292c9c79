package membership

type ListMembersQuery struct {
	Search   string `form:"search"`
	Category string `form:"category"`
	SortBy   string `form:"sort_by" binding:"omitempty,oneof=name category recorded_at"`
	SortDir  string `form:"sort_dir" binding:"omitempty,oneof=asc desc"`
	Page     int    `form:"page"`
	Limit    int    `form:"limit"`
}

type MemberResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Category   string `json:"category"`
	RecordedAt string `json:"recorded_at,omitempty"`
}

type RenameRequest struct {
	OldName string `json:"old_name" binding:"required"`
	NewName string `json:"new_name" binding:"required"`
}

type RenameResponse struct {
	OldName        string `json:"old_name"`
	NewName        string `json:"new_name"`
	MembershipRows int64  `json:"membership_rows"`
	AttendanceRows int64  `json:"attendance_rows"`
}

type RecategorizeRequest struct {
	Name     string `json:"name" binding:"required"`
	Category string `json:"category" binding:"required"`
}

type RecategorizeResponse struct {
	Name        string `json:"name"`
	OldCategory string `json:"old_category"`
	NewCategory string `json:"new_category"`
	Changed     bool   `json:"changed"`
}

type BulkRecategorizeRequest struct {
	FromCategory string `json:"from_category" binding:"required"`
	ToCategory   string `json:"to_category" binding:"required"`
}

type BulkRecategorizeResponse struct {
	Matched int `json:"matched"`
	Updated int `json:"updated"`
	Skipped int `json:"skipped"`
}

type ImportEntry struct {
	Name     string `json:"name" binding:"required"`
	Category string `json:"category"`
}

type ImportRequest struct {
	Members []ImportEntry `json:"members" binding:"required,min=1,dive"`
	Source  string        `json:"source"`
}

type ImportResponse struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}
