package words

import "sort"

// Catalog is an in-memory Provider. Adding words to an existing category
// merges them into its vocabulary.
type Catalog struct {
	categories map[string]Category
	sets       map[string]Set
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		categories: make(map[string]Category),
		sets:       make(map[string]Set),
	}
}

// Add registers a category and merges words into it. A later non-empty
// prompt replaces an earlier one.
func (c *Catalog) Add(cat Category, list []string) {
	if cat.Key == "" {
		return
	}
	if cat.Prompt == "" {
		if existing, ok := c.categories[cat.Key]; ok {
			cat.Prompt = existing.Prompt
		} else {
			cat.Prompt = DefaultPrompt(cat.Key)
		}
	}
	c.categories[cat.Key] = cat

	set, ok := c.sets[cat.Key]
	if !ok {
		set = make(Set, len(list))
		c.sets[cat.Key] = set
	}
	for _, w := range list {
		set.Add(w)
	}
}

// AddPack adds every category of a pack.
func (c *Catalog) AddPack(p Pack) {
	for _, pc := range p.Categories {
		c.Add(Category{Key: pc.Key, Prompt: pc.Prompt}, pc.Words)
	}
}

// Categories returns all categories sorted by key.
func (c *Catalog) Categories() []Category {
	out := make([]Category, 0, len(c.categories))
	for _, cat := range c.categories {
		out = append(out, cat)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Key < out[j].Key
	})
	return out
}

// Lookup returns the category with the given key.
func (c *Catalog) Lookup(key string) (Category, bool) {
	cat, ok := c.categories[key]
	return cat, ok
}

// Words returns the vocabulary of a category, or an empty set when the key
// is unknown. The returned set must not be modified.
func (c *Catalog) Words(key string) Set {
	if s, ok := c.sets[key]; ok {
		return s
	}
	return Set{}
}

// Ensure Catalog implements Provider
var _ Provider = (*Catalog)(nil)
