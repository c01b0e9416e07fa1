package models

// ErrorResponse โครงสร้างมาตรฐานสำหรับการส่ง Error
type ErrorResponse struct {
	Status  int    `json:"status" example:"404"`                        // HTTP Status Code
	Message string `json:"message" example:"No form data available"` // รายละเอียดของ Error
}
