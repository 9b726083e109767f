package request

const (
	StatusPending = "Pending"
	TypeService   = "service"
)

// ServiceRequest is a typed view of a stored booking. Submitted fields are
// free-form; these are the ones the storefront form sends.
// swagger:model ServiceRequest
type ServiceRequest struct {
	ID             int64   `json:"id"              example:"1"`
	ServiceType    string  `json:"service_type"    example:"precision-pipe-drilling"`
	PipeMaterial   string  `json:"pipe_material"   example:"Stainless Steel"`
	PipeDiameter   float64 `json:"pipe_diameter"   example:"2"`
	EstimatedHours int     `json:"estimated_hours" example:"3"`
	Description    string  `json:"description"`
	ContactName    string  `json:"contact_name"    example:"A"`
	ContactEmail   string  `json:"contact_email"`
	ContactPhone   string  `json:"contact_phone"`
	Timestamp      string  `json:"timestamp"       example:"2024-03-09T14:05:06.123456"`
	Status         string  `json:"status"          example:"Pending"`
	Type           string  `json:"type"            example:"service"`
}

type SubmitResponse struct {
	Success   bool  `json:"success"`
	RequestID int64 `json:"request_id" example:"1"`
}

type ListResponse struct {
	Success  bool             `json:"success"`
	Requests []ServiceRequest `json:"requests"`
}
