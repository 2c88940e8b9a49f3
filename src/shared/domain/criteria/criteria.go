package criteria

import (
	"net/url"
	"strconv"
	"strings"
)

// Operator operador de comparación de un filtro
type Operator string

const (
	OpEqual              Operator = "="
	OpNotEqual           Operator = "!="
	OpGreaterThan        Operator = ">"
	OpGreaterThanOrEqual Operator = ">="
	OpLessThan           Operator = "<"
	OpLessThanOrEqual    Operator = "<="
	OpLike               Operator = "LIKE"
	OpIn                 Operator = "IN"
	OpIsNull             Operator = "NULL"
	OpIsNotNull          Operator = "NOT NULL"
)

// OrderType dirección del ordenamiento
type OrderType string

const (
	ASC  OrderType = "ASC"
	DESC OrderType = "DESC"
	NONE OrderType = ""
)

// Filter condición sobre un campo
type Filter struct {
	Field    string
	Operator Operator
	Value    interface{}
}

// NewFilter crea un filtro
func NewFilter(field string, operator Operator, value interface{}) Filter {
	return Filter{Field: field, Operator: operator, Value: value}
}

// Filters conjunto de filtros combinados con AND
type Filters struct {
	Items []Filter
}

// NewFilters crea un conjunto de filtros
func NewFilters(items ...Filter) Filters {
	return Filters{Items: items}
}

// Add agrega un filtro
func (f *Filters) Add(filter Filter) {
	f.Items = append(f.Items, filter)
}

// IsEmpty indica si no hay filtros
func (f Filters) IsEmpty() bool {
	return len(f.Items) == 0
}

// Order ordenamiento por un campo
type Order struct {
	Field     string
	OrderType OrderType
}

// NewOrder crea un ordenamiento
func NewOrder(field string, orderType OrderType) Order {
	return Order{Field: field, OrderType: orderType}
}

// IsEmpty indica si no hay ordenamiento
func (o Order) IsEmpty() bool {
	return o.Field == "" || o.OrderType == NONE
}

// Criteria filtros, orden y paginación de una búsqueda
type Criteria struct {
	Filters Filters
	Order   Order
	Limit   *int
	Offset  *int
}

// NewCriteria crea un criteria
func NewCriteria(filters Filters, order Order, limit, offset *int) Criteria {
	return Criteria{Filters: filters, Order: order, Limit: limit, Offset: offset}
}

// CriteriaBuilder construye un Criteria paso a paso
type CriteriaBuilder struct {
	filters Filters
	order   Order
	limit   *int
	offset  *int
}

// NewCriteriaBuilder crea un builder vacío
func NewCriteriaBuilder() *CriteriaBuilder {
	return &CriteriaBuilder{}
}

// Where agrega un filtro
func (b *CriteriaBuilder) Where(field string, operator Operator, value interface{}) *CriteriaBuilder {
	b.filters.Add(NewFilter(field, operator, value))
	return b
}

// OrderBy define el ordenamiento
func (b *CriteriaBuilder) OrderBy(field string, orderType OrderType) *CriteriaBuilder {
	b.order = NewOrder(field, orderType)
	return b
}

// Paginate define limit y offset
func (b *CriteriaBuilder) Paginate(limit, offset int) *CriteriaBuilder {
	b.limit = &limit
	b.offset = &offset
	return b
}

// FromURLValues lee los parámetros genéricos: order_by, order_type, limit, offset.
// Los filtros propios de cada entidad los agrega su builder.
func (b *CriteriaBuilder) FromURLValues(values url.Values) *CriteriaBuilder {
	if field := values.Get("order_by"); field != "" {
		orderType := ASC
		if strings.EqualFold(values.Get("order_type"), string(DESC)) {
			orderType = DESC
		}
		b.OrderBy(field, orderType)
	}

	limit, errLimit := strconv.Atoi(values.Get("limit"))
	offset, errOffset := strconv.Atoi(values.Get("offset"))
	if errLimit == nil && limit > 0 {
		if errOffset != nil || offset < 0 {
			offset = 0
		}
		b.Paginate(limit, offset)
	}
	return b
}

// Build retorna el Criteria construido
func (b *CriteriaBuilder) Build() Criteria {
	return NewCriteria(b.filters, b.order, b.limit, b.offset)
}
