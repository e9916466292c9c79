package attendance

type AddAttendanceRequest struct {
	Name        string `json:"name" binding:"required"`
	Category    string `json:"category"`
	ServiceName string `json:"service_name" binding:"required"`
	Date        string `json:"date" binding:"required,datetime=2006-01-02"`
}

type AttendanceResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	ServiceName string `json:"service_name"`
	Date        string `json:"date"`
	CreatedAt   string `json:"created_at"`
}

type DeleteServiceResponse struct {
	ServiceName string `json:"service_name"`
	Removed     int64  `json:"removed"`
}
