package theme

import (
	"slices"
	"sync"
)

// Surface is where the active theme is applied as a class token
type Surface interface {
	AddClass(token string)
	RemoveClass(token string)
	// Replace removes every token in remove and adds add in one step, so
	// readers never observe the surface between the two.
	Replace(remove []string, add string)
}

// ClassList is an in-memory Surface. Tokens keep insertion order.
type ClassList struct {
	mu     sync.RWMutex
	tokens []string
}

func NewClassList(initial ...string) *ClassList {
	c := &ClassList{}
	for _, t := range initial {
		c.AddClass(t)
	}
	return c
}

func (c *ClassList) AddClass(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !slices.Contains(c.tokens, token) {
		c.tokens = append(c.tokens, token)
	}
}

func (c *ClassList) RemoveClass(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tokens = slices.DeleteFunc(c.tokens, func(t string) bool { return t == token })
}

func (c *ClassList) Replace(remove []string, add string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tokens = slices.DeleteFunc(c.tokens, func(t string) bool {
		return t == add || slices.Contains(remove, t)
	})
	c.tokens = append(c.tokens, add)
}

// Has reports whether token is present
func (c *ClassList) Has(token string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Contains(c.tokens, token)
}

// Tokens returns a copy of the present tokens
func (c *ClassList) Tokens() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.tokens)
}
