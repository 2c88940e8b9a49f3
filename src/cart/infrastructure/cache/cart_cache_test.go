package cache

import (
	"sync"
	"testing"

	"github.com/Korikanas/ncart/src/cart/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCartCache_SessionsAreIsolated(t *testing.T) {
	c := NewCartCache()
	c.Get("s1").AddItem(entity.Product{ID: "p1", Price: decimal.NewFromInt(10)})

	assert.Equal(t, 1, c.Snapshot("s1").ItemCount)
	assert.True(t, c.Snapshot("s2").IsEmpty())
	assert.Len(t, c.carts, 2)
}

func TestCartCache_RemoveOrderedAndDrop(t *testing.T) {
	c := NewCartCache()
	c.Get("s1").AddItem(entity.Product{ID: "p1", Price: decimal.NewFromInt(10)})

	c.RemoveOrdered("s1", c.Snapshot("s1"))
	assert.True(t, c.Snapshot("s1").IsEmpty())

	c.Drop("s1")
	assert.Empty(t, c.carts)
}

func TestCartCache_ConcurrentGetReturnsSameCart(t *testing.T) {
	c := NewCartCache()
	var wg sync.WaitGroup
	carts := make([]*entity.Cart, 16)
	for i := range carts {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			carts[i] = c.Get("shared")
		}(i)
	}
	wg.Wait()

	for _, cart := range carts {
		assert.Same(t, carts[0], cart)
	}
}
