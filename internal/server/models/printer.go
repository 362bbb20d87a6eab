package models

// Printer is a network printer managed by the service.
type Printer struct {
	ID           int64  `json:"printer_id"`
	Name         string `json:"printer_name"`
	Model        string `json:"model"`
	Location     string `json:"location"`
	Status       string `json:"status"`
	IPAddress    string `json:"ip_address"`
	SerialNumber string `json:"serial_number"`
}

// PrinterPatch is a partial printer update; nil fields are not changed.
type PrinterPatch struct {
	Name         *string `json:"printer_name,omitempty"`
	Model        *string `json:"model,omitempty"`
	Location     *string `json:"location,omitempty"`
	Status       *string `json:"status,omitempty"`
	IPAddress    *string `json:"ip_address,omitempty"`
	SerialNumber *string `json:"serial_number,omitempty"`
}
