package pokedex

import (
	"strconv"
	"sync"
	"testing"

	"pokedex/pkg/pokemon"
)

func TestCache_PutGetClear(t *testing.T) {
	c := NewCache()

	if _, ok := c.Get("id:1"); ok {
		t.Fatal("Get on empty cache returned an entry")
	}

	p := pokemon.New(pokemon.Attributes{Dex: 1, Name: "bulbasaur"})
	c.Put("id:1", p)

	got, ok := c.Get("id:1")
	if !ok || got != p {
		t.Fatalf("Get = %v, %v; want cached instance", got, ok)
	}

	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1", c.Len())
	}

	c.Clear()

	if _, ok := c.Get("id:1"); ok {
		t.Error("Get after Clear returned an entry")
	}

	if c.Len() != 0 {
		t.Errorf("Len after Clear = %d, want 0", c.Len())
	}
}

func TestCache_Concurrent(t *testing.T) {
	c := NewCache()

	var wg sync.WaitGroup

	for i := 1; i <= 50; i++ {
		wg.Add(2)

		go func(id int) {
			defer wg.Done()

			c.Put("id:"+strconv.Itoa(id%10), pokemon.New(pokemon.Attributes{Dex: id % 10}))
		}(i)

		go func(id int) {
			defer wg.Done()

			if p, ok := c.Get("id:" + strconv.Itoa(id%10)); ok && p.Dex() != id%10 {
				t.Errorf("Get returned dex %d for key %d", p.Dex(), id%10)
			}
		}(i)
	}

	wg.Wait()

	if c.Len() != 10 {
		t.Errorf("Len = %d, want 10", c.Len())
	}
}
