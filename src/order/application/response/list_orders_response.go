package response

// ListOrdersResponse representa la respuesta paginada de órdenes
type ListOrdersResponse struct {
	Items      []*OrderResponse `json:"items"`
	TotalCount int              `json:"total_count"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
	TotalPages int              `json:"total_pages"`
}
