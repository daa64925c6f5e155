package dto

import "time"

// APIResponse is the standard envelope for successful responses
type APIResponse struct {
	Success   bool        `json:"success" example:"true"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp" example:"2025-04-23T12:01:05.123Z"`
}

// NewSuccessResponse creates a standard success response
func NewSuccessResponse(data interface{}) *APIResponse {
	return &APIResponse{
		Success:   true,
		Data:      data,
		Timestamp: time.Now(),
	}
}

// PaginationInfo describes the page window of a list response
type PaginationInfo struct {
	Total int `json:"total" example:"42"`
	Page  int `json:"page" example:"1"`
	Size  int `json:"size" example:"20"`
}

// ListResponse wraps a list payload together with pagination info
type ListResponse struct {
	Items      interface{}     `json:"items"`
	Pagination *PaginationInfo `json:"pagination,omitempty"`
}
