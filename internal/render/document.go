package render

import (
	"strings"

	"golang.org/x/net/html"
)

// Document is a materialized storefront. The same pass that rewrites the
// parsed template tree records an ordered mutation list, so the server
// string path and the client DOM path come from one algorithm.
type Document struct {
	root      *html.Node
	mutations []Mutation
}

// Mutation is one JSON-serializable DOM operation. The client bundle
// replays the list against the live iframe, targeting elements by their
// data-sf-hook attribute.
type Mutation struct {
	Op    string       `json:"op"`
	Hook  string       `json:"hook,omitempty"`
	Name  string       `json:"name,omitempty"`
	Value string       `json:"value,omitempty"`
	Index int          `json:"index,omitempty"`
	Card  *ProductCard `json:"card,omitempty"`
}

const (
	OpSetText     = "setText"
	OpSetHTML     = "setHTML"
	OpSetAttr     = "setAttr"
	OpRemove      = "remove"
	OpInjectStyle = "injectStyle"
	OpCard        = "card"
	OpTrimCards   = "trimCards"
)

// ProductCard is the payload for a single rendered product card.
type ProductCard struct {
	ProductID   string `json:"productId"`
	Name        string `json:"name"`
	Price       string `json:"price"`
	Description string `json:"description"`
	Image       string `json:"image"`
	OrderData   string `json:"orderData,omitempty"`
}

// HTML serializes the rewritten tree into a standalone page.
func (d *Document) HTML() string {
	var sb strings.Builder
	// html.Render only fails on writer errors; strings.Builder has none
	_ = html.Render(&sb, d.root)
	return sb.String()
}

// Mutations returns the DOM operation list in application order.
func (d *Document) Mutations() []Mutation {
	return d.mutations
}

func (d *Document) record(m Mutation) {
	d.mutations = append(d.mutations, m)
}
