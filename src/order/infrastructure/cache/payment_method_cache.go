package cache

import (
	"strings"
	"sync"

	"go.uber.org/zap"
)

// PaymentMethod representa un método de pago aceptado en el checkout
type PaymentMethod struct {
	Code string `json:"code" yaml:"code"`
	Name string `json:"name" yaml:"name"`
}

// DefaultPaymentMethods métodos que ofrece el formulario de pago
func DefaultPaymentMethods() []PaymentMethod {
	return []PaymentMethod{
		{Code: "card", Name: "Credit Card"},
		{Code: "paypal", Name: "PayPal"},
		{Code: "upi", Name: "UPI"},
	}
}

// PaymentMethodCache cache en memoria de métodos de pago aceptados
type PaymentMethodCache struct {
	methods map[string]PaymentMethod // code -> method
	mu      sync.RWMutex
}

// NewPaymentMethodCache crea un nuevo cache de métodos de pago
func NewPaymentMethodCache() *PaymentMethodCache {
	return &PaymentMethodCache{
		methods: make(map[string]PaymentMethod),
	}
}

// Load carga los métodos de pago; las entradas sin código o nombre se ignoran
func (c *PaymentMethodCache) Load(methods []PaymentMethod, logger *zap.Logger) {
	c.mu.Lock()
	defer c.mu.Unlock()

	count := 0
	for _, pm := range methods {
		if pm.Code == "" || pm.Name == "" {
			logger.Warn("skipping payment method without code or name", zap.String("code", pm.Code))
			continue
		}
		c.methods[strings.ToLower(pm.Code)] = pm
		count++
	}

	logger.Info("payment methods loaded", zap.Int("count", count))
}

// Get obtiene un método de pago por código
func (c *PaymentMethodCache) Get(code string) (PaymentMethod, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	pm, ok := c.methods[strings.ToLower(code)]
	return pm, ok
}

// Resolve acepta el código o el nombre visible y retorna el nombre visible
func (c *PaymentMethodCache) Resolve(codeOrName string) (string, bool) {
	if pm, ok := c.Get(codeOrName); ok {
		return pm.Name, true
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, pm := range c.methods {
		if strings.EqualFold(pm.Name, codeOrName) {
			return pm.Name, true
		}
	}
	return "", false
}

// List retorna los métodos cargados
func (c *PaymentMethodCache) List() []PaymentMethod {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]PaymentMethod, 0, len(c.methods))
	for _, pm := range c.methods {
		out = append(out, pm)
	}
	return out
}
