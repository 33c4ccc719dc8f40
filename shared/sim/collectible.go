package sim

// Collectible is a pickup worth one point.
type Collectible struct {
	ID int
	Body
	Sprite string
}

// CollectibleSet holds the live collectibles. Removal is permanent.
type CollectibleSet struct {
	items []Collectible
}

// NewCollectibleSet takes ownership of items. IDs are reassigned in order so
// they are unique within the set.
func NewCollectibleSet(items []Collectible) *CollectibleSet {
	for i := range items {
		items[i].ID = i
	}
	return &CollectibleSet{items: items}
}

// Len returns the number of live collectibles.
func (c *CollectibleSet) Len() int { return len(c.items) }

// Items returns the live collectibles. Callers must not modify the slice.
func (c *CollectibleSet) Items() []Collectible { return c.items }

// Contains reports whether the collectible with id is still live.
func (c *CollectibleSet) Contains(id int) bool {
	for _, it := range c.items {
		if it.ID == id {
			return true
		}
	}
	return false
}

// TakeOverlapping removes and returns every collectible overlapping body.
func (c *CollectibleSet) TakeOverlapping(body *Body) []Collectible {
	var taken []Collectible
	kept := c.items[:0]
	for _, it := range c.items {
		if it.Overlaps(body) {
			taken = append(taken, it)
			continue
		}
		kept = append(kept, it)
	}
	// Clear the tail so removed items are not retained by the backing array.
	for i := len(kept); i < len(c.items); i++ {
		c.items[i] = Collectible{}
	}
	c.items = kept
	return taken
}
