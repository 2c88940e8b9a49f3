package inflight

import (
	"strings"
	"sync"
)

// Guard registra las acciones en curso para no emitir llamadas duplicadas.
// Una segunda llamada con la misma clave mientras la primera sigue en curso
// se rechaza en lugar de esperar.
type Guard struct {
	mu     sync.Mutex
	active map[string]struct{}
}

// NewGuard crea un guard vacío
func NewGuard() *Guard {
	return &Guard{
		active: make(map[string]struct{}),
	}
}

// Acquire marca la clave como en curso. Si ya lo estaba retorna ok=false.
// release debe llamarse al terminar la acción.
func (g *Guard) Acquire(key string) (release func(), ok bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, busy := g.active[key]; busy {
		return func() {}, false
	}
	g.active[key] = struct{}{}

	var once sync.Once
	return func() {
		once.Do(func() {
			g.mu.Lock()
			delete(g.active, key)
			g.mu.Unlock()
		})
	}, true
}

// Key arma una clave de acción a partir de sus partes
func Key(parts ...string) string {
	return strings.Join(parts, ":")
}
