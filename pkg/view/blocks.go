// Package view carries per-request view state: named content blocks and the
// current request's action.
package view

import (
	"slices"
	"strings"

	"github.com/goliatone/go-boostform/pkg/render"
)

// Blocks collects markup for named content blocks that a layout renders later
// (for example forms hoisted out of a table). Not safe for concurrent use.
type Blocks struct {
	blocks map[string]*strings.Builder
	order  []string
}

var _ render.BlockRegistry = (*Blocks)(nil)

// NewBlocks returns an empty registry.
func NewBlocks() *Blocks {
	return &Blocks{blocks: make(map[string]*strings.Builder)}
}

// Append adds html to the end of block.
func (b *Blocks) Append(block, html string) {
	b.builder(block).WriteString(html)
}

// Assign replaces the content of block.
func (b *Blocks) Assign(block, html string) {
	builder := b.builder(block)
	builder.Reset()
	builder.WriteString(html)
}

// Fetch returns the content of block, or "".
func (b *Blocks) Fetch(block string) string {
	if b == nil || b.blocks == nil {
		return ""
	}
	if builder, ok := b.blocks[strings.TrimSpace(block)]; ok {
		return builder.String()
	}
	return ""
}

// Names lists blocks in creation order.
func (b *Blocks) Names() []string {
	if b == nil {
		return nil
	}
	return slices.Clone(b.order)
}

func (b *Blocks) builder(block string) *strings.Builder {
	if b.blocks == nil {
		b.blocks = make(map[string]*strings.Builder)
	}
	name := strings.TrimSpace(block)
	builder, ok := b.blocks[name]
	if !ok {
		builder = &strings.Builder{}
		b.blocks[name] = builder
		b.order = append(b.order, name)
	}
	return builder
}
