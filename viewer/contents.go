package viewer

import "github.com/google/uuid"

type disposer interface {
	Dispose()
}

type entry struct {
	generation uuid.UUID
	node       Node
	resources  []disposer
}

// contents is the set of entities the controller has put into its scene,
// tagged with the generation that added them.
type contents struct {
	generation uuid.UUID
	entries    []entry
}

// next starts a new generation. Entries added from now on carry its tag.
func (c *contents) next() uuid.UUID {
	c.generation = uuid.New()
	return c.generation
}

func (c *contents) add(scene Scene, node Node, resources ...disposer) {
	node.SetTag(c.generation.String())
	scene.Add(node)
	c.entries = append(c.entries, entry{
		generation: c.generation,
		node:       node,
		resources:  resources,
	})
}

// prune removes entities of earlier generations from the scene and
// releases their resources. It returns how many were removed.
func (c *contents) prune(scene Scene) int {
	kept := c.entries[:0]
	removed := 0
	for _, e := range c.entries {
		if e.generation == c.generation {
			kept = append(kept, e)
			continue
		}
		scene.Remove(e.node)
		for _, r := range e.resources {
			r.Dispose()
		}
		removed++
	}
	clear(c.entries[len(kept):])
	c.entries = kept
	return removed
}
