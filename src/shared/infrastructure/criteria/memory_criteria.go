package criteria

import (
	"sort"
	"strings"
	"time"

	domainCriteria "github.com/Korikanas/ncart/src/shared/domain/criteria"

	"github.com/shopspring/decimal"
)

// Record entidad que expone sus campos para evaluar criterios en memoria
type Record interface {
	FieldValue(field string) (interface{}, bool)
}

// MemoryCriteriaEvaluator evalúa un Criteria sobre datos ya cargados
// (el backend REST no acepta filtros)
type MemoryCriteriaEvaluator struct{}

// NewMemoryCriteriaEvaluator crea una nueva instancia del evaluador
func NewMemoryCriteriaEvaluator() *MemoryCriteriaEvaluator {
	return &MemoryCriteriaEvaluator{}
}

// Matches indica si el registro cumple todos los filtros
func (e *MemoryCriteriaEvaluator) Matches(record Record, filters domainCriteria.Filters) bool {
	for _, filter := range filters.Items {
		if !e.matchFilter(record, filter) {
			return false
		}
	}
	return true
}

// Less compara dos registros según el ordenamiento
func (e *MemoryCriteriaEvaluator) Less(a, b Record, order domainCriteria.Order) bool {
	va, _ := a.FieldValue(order.Field)
	vb, _ := b.FieldValue(order.Field)
	cmp, ok := compare(va, vb)
	if !ok {
		return false
	}
	if order.OrderType == domainCriteria.DESC {
		return cmp > 0
	}
	return cmp < 0
}

// Apply filtra, ordena (estable) y pagina. Sin orden se respeta el orden de entrada.
func Apply[T Record](e *MemoryCriteriaEvaluator, items []T, c domainCriteria.Criteria) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if e.Matches(item, c.Filters) {
			out = append(out, item)
		}
	}

	if !c.Order.IsEmpty() {
		sort.SliceStable(out, func(i, j int) bool {
			return e.Less(out[i], out[j], c.Order)
		})
	}

	if c.Limit != nil && c.Offset != nil {
		start := *c.Offset
		if start > len(out) {
			start = len(out)
		}
		end := start + *c.Limit
		if end > len(out) {
			end = len(out)
		}
		out = out[start:end]
	}
	return out
}

func (e *MemoryCriteriaEvaluator) matchFilter(record Record, filter domainCriteria.Filter) bool {
	value, ok := record.FieldValue(filter.Field)

	switch filter.Operator {
	case domainCriteria.OpIsNull:
		return !ok || value == nil
	case domainCriteria.OpIsNotNull:
		return ok && value != nil
	}
	if !ok {
		return false
	}

	switch filter.Operator {
	case domainCriteria.OpLike:
		str, isStr := value.(string)
		needle, needleIsStr := filter.Value.(string)
		return isStr && needleIsStr && strings.Contains(strings.ToLower(str), strings.ToLower(needle))
	case domainCriteria.OpIn:
		values, isList := filter.Value.([]interface{})
		if !isList {
			return false
		}
		for _, v := range values {
			if cmp, ok := compare(value, v); ok && cmp == 0 {
				return true
			}
		}
		return false
	}

	cmp, ok := compare(value, filter.Value)
	if !ok {
		return false
	}
	switch filter.Operator {
	case domainCriteria.OpEqual:
		return cmp == 0
	case domainCriteria.OpNotEqual:
		return cmp != 0
	case domainCriteria.OpGreaterThan:
		return cmp > 0
	case domainCriteria.OpGreaterThanOrEqual:
		return cmp >= 0
	case domainCriteria.OpLessThan:
		return cmp < 0
	case domainCriteria.OpLessThanOrEqual:
		return cmp <= 0
	default:
		return cmp == 0
	}
}

// compare compara valores del mismo tipo; los strings sin distinguir mayúsculas
func compare(a, b interface{}) (int, bool) {
	switch va := a.(type) {
	case string:
		vb, ok := b.(string)
		if !ok {
			return 0, false
		}
		return strings.Compare(strings.ToLower(va), strings.ToLower(vb)), true
	case decimal.Decimal:
		vb, ok := toDecimal(b)
		if !ok {
			return 0, false
		}
		return va.Cmp(vb), true
	case int:
		vb, ok := toDecimal(b)
		if !ok {
			return 0, false
		}
		return decimal.NewFromInt(int64(va)).Cmp(vb), true
	case float64:
		vb, ok := toDecimal(b)
		if !ok {
			return 0, false
		}
		return decimal.NewFromFloat(va).Cmp(vb), true
	case time.Time:
		vb, ok := b.(time.Time)
		if !ok {
			return 0, false
		}
		return va.Compare(vb), true
	}
	return 0, false
}

func toDecimal(v interface{}) (decimal.Decimal, bool) {
	switch n := v.(type) {
	case decimal.Decimal:
		return n, true
	case int:
		return decimal.NewFromInt(int64(n)), true
	case float64:
		return decimal.NewFromFloat(n), true
	}
	return decimal.Decimal{}, false
}
