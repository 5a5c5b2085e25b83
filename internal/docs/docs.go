package docs

import (
	"fmt"
	"strings"
)

// Topic is one page of built-in documentation.
type Topic struct {
	Name    string // CLI argument
	Title   string
	Summary string // shown in the topic list
	Content string // plain text
}

// All returns every topic in display order.
func All() []Topic {
	return topics
}

// Get finds a topic by name, ignoring case.
func Get(name string) (Topic, error) {
	name = strings.TrimSpace(name)
	for _, t := range topics {
		if strings.EqualFold(t.Name, name) {
			return t, nil
		}
	}
	names := make([]string, len(topics))
	for i, t := range topics {
		names[i] = t.Name
	}
	return Topic{}, fmt.Errorf("unknown topic %q (have %s); run 'plancal docs' to list available topics",
		name, strings.Join(names, ", "))
}
