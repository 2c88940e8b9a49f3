package criteria

import (
	domainCriteria "github.com/Korikanas/ncart/src/shared/domain/criteria"

	"github.com/gin-gonic/gin"
)

// QueryHelper arma criterios desde la query string de un controller y
// descarta filtros u orden sobre campos que el módulo no expone
type QueryHelper struct {
	allowed map[string]bool
}

// NewQueryHelper crea el helper. Sin campos permitidos no se descarta nada.
func NewQueryHelper(allowedFields ...string) *QueryHelper {
	allowed := make(map[string]bool, len(allowedFields))
	for _, field := range allowedFields {
		allowed[field] = true
	}
	return &QueryHelper{allowed: allowed}
}

// Builder inicia un builder con order_by, order_type, limit y offset de la request
func (h *QueryHelper) Builder(c *gin.Context) *domainCriteria.CriteriaBuilder {
	return domainCriteria.NewCriteriaBuilder().FromURLValues(c.Request.URL.Query())
}

// Sanitize retorna los criterios sin los campos no permitidos y la lista
// de campos descartados
func (h *QueryHelper) Sanitize(c domainCriteria.Criteria) (domainCriteria.Criteria, []string) {
	if len(h.allowed) == 0 {
		return c, nil
	}

	var dropped []string
	filters := domainCriteria.NewFilters()
	for _, filter := range c.Filters.Items {
		if !h.allowed[filter.Field] {
			dropped = append(dropped, filter.Field)
			continue
		}
		filters.Add(filter)
	}

	// orden descartado = orden del backend
	order := c.Order
	if order.Field != "" && !h.allowed[order.Field] {
		dropped = append(dropped, order.Field)
		order = domainCriteria.Order{}
	}

	return domainCriteria.NewCriteria(filters, order, c.Limit, c.Offset), dropped
}
