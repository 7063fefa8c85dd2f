package render

import (
	"encoding/json"

	"github.com/andromedanny/storefront-service/internal/domain"
	"golang.org/x/net/html"
)

// applyProducts renders one card per product. Existing template cards are
// updated positionally; extra products get cards cloned from the first
// template card; leftover template cards are removed. A template with no
// products container skips the step entirely.
func (d *Document) applyProducts(products []*domain.Product, opts Options) {
	container := findHook(d.root, "products")
	if container == nil {
		return
	}

	cards := findHooks(container, "product-card")
	var prototype *html.Node
	if len(cards) > 0 {
		prototype = cloneNode(cards[0])
	}

	for i, product := range products {
		var node *html.Node
		if i < len(cards) {
			node = cards[i]
		} else {
			if prototype != nil {
				node = cloneNode(prototype)
			} else {
				node = buildFallbackCard()
			}
			container.AppendChild(node)
		}
		card := d.fillCard(node, product, opts)
		d.record(Mutation{Op: OpCard, Hook: "product-card", Index: i, Card: card})
	}

	for j := len(products); j < len(cards); j++ {
		removeNode(cards[j])
	}
	d.record(Mutation{Op: OpTrimCards, Index: len(products)})
}

func (d *Document) fillCard(node *html.Node, product *domain.Product, opts Options) *ProductCard {
	card := &ProductCard{
		ProductID:   product.ID,
		Name:        product.Name,
		Price:       formatPrice(product.Price),
		Description: truncate(stripTags(product.Description), descriptionLimit),
		Image:       absoluteURL(opts.AssetBaseURL, product.Image),
	}

	if n := findHook(node, "product-image"); n != nil && card.Image != "" {
		setAttr(n, "src", card.Image)
		setAttr(n, "alt", card.Name)
	}
	if n := findHook(node, "product-name"); n != nil {
		setText(n, card.Name)
	}
	if n := findHook(node, "product-price"); n != nil {
		setText(n, card.Price)
	}
	if n := findHook(node, "product-description"); n != nil {
		setText(n, card.Description)
	}
	if n := findHook(node, "product-action"); n != nil {
		payload, _ := json.Marshal(map[string]string{
			"productId": card.ProductID,
			"name":      card.Name,
			"price":     product.Price.StringFixed(2),
			"image":     card.Image,
		})
		card.OrderData = string(payload)
		if opts.Interactive {
			setAttr(n, "data-sf-order", card.OrderData)
			removeAttr(n, "onclick")
		} else {
			setAttr(n, "onclick", "alert('Ordering is available from the store app')")
		}
	}
	return card
}

func buildFallbackCard() *html.Node {
	article := &html.Node{Type: html.ElementNode, Data: "article"}
	setAttr(article, "class", "product-card")
	setAttr(article, hookAttr, "product-card")

	img := &html.Node{Type: html.ElementNode, Data: "img"}
	setAttr(img, hookAttr, "product-image")
	article.AppendChild(img)

	name := &html.Node{Type: html.ElementNode, Data: "h3"}
	setAttr(name, hookAttr, "product-name")
	article.AppendChild(name)

	price := &html.Node{Type: html.ElementNode, Data: "div"}
	setAttr(price, "class", "price")
	setAttr(price, hookAttr, "product-price")
	article.AppendChild(price)

	desc := &html.Node{Type: html.ElementNode, Data: "p"}
	setAttr(desc, hookAttr, "product-description")
	article.AppendChild(desc)

	action := &html.Node{Type: html.ElementNode, Data: "button"}
	setAttr(action, hookAttr, "product-action")
	action.AppendChild(&html.Node{Type: html.TextNode, Data: "Order"})
	article.AppendChild(action)

	return article
}
