package request

// ChangeQuantityRequest representa un cambio relativo de cantidad (+1 / -1)
type ChangeQuantityRequest struct {
	Delta int `json:"delta" binding:"required"`
}

// SetQuantityRequest fija la cantidad; 0 elimina la línea
type SetQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}
