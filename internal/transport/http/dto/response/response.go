package response

type Pagination struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`
}

type Response struct {
	Success    bool        `json:"success"`
	Data       interface{} `json:"data,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
	Message    string      `json:"message,omitempty"`
}

type ErrorResponse struct {
	Success bool        `json:"success"`
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}

func SuccessResponse(data interface{}) Response {
	return Response{
		Success: true,
		Data:    data,
	}
}

func PagedResponse(data interface{}, p Pagination) Response {
	return Response{
		Success:    true,
		Data:       data,
		Pagination: &p,
	}
}

func MessageResponse(msg string) Response {
	return Response{
		Success: true,
		Message: msg,
	}
}

func Error(msg string) ErrorResponse {
	return ErrorResponse{Error: msg}
}

func ErrorResponseWithDetails(msg string, details interface{}) ErrorResponse {
	return ErrorResponse{
		Error:   msg,
		Details: details,
	}
}
