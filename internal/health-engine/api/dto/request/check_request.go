package request

type CheckRequest struct {
	Module string `json:"module"`
}

type ReportRequest struct {
	StartDate string `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" binding:"required,datetime=2006-01-02"`
	Email     string `json:"email" binding:"required,email"`
}

type IntervalsRequest struct {
	// Seconds per module, zero falls back to the default interval.
	Intervals map[string]int `json:"intervals" binding:"required,min=1"`
}

type ThresholdsRequest struct {
	CPUPercent     *float64 `json:"cpu_percent" binding:"omitempty,gte=0,lte=100"`
	MemoryPercent  *float64 `json:"memory_percent" binding:"omitempty,gte=0,lte=100"`
	ResponseTimeMs *float64 `json:"response_time_ms" binding:"omitempty,gte=0"`
	ErrorRate      *float64 `json:"error_rate" binding:"omitempty,gte=0,lte=100"`
}
