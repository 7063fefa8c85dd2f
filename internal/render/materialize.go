// Package render materializes a storefront template against a store's saved
// content blob. The transform is pure and idempotent: the live builder
// preview re-runs it on every content change, and the public page route
// runs the exact same pass server-side.
package render

import (
	"fmt"
	"strings"

	"github.com/andromedanny/storefront-service/internal/domain"
	"github.com/andromedanny/storefront-service/internal/template"
	"golang.org/x/net/html"
)

// Profile carries the store fields the materializer falls back to and the
// contact section always draws from.
type Profile struct {
	Name         string
	Description  string
	ContactEmail string
	Phone        string
	Address      domain.Address
}

type Options struct {
	// AssetBaseURL resolves relative image paths to absolute URLs.
	AssetBaseURL string
	// Interactive wires product cards with an order payload for the client
	// bundle. The static server-rendered page gets an inert placeholder
	// instead, since no order flow exists without the bundle.
	Interactive bool
}

const defaultTitle = "Store"
const defaultButtonText = "Shop Now"

// Materialize renders tpl with the store's content, product list, and
// profile. Missing template hooks and malformed content degrade to partial
// renders, never to errors; the only error path is an unparseable template.
func Materialize(tpl *template.Template, content domain.Content, products []*domain.Product, profile Profile, opts Options) (*Document, error) {
	root, err := html.Parse(strings.NewReader(tpl.HTML))
	if err != nil {
		return nil, fmt.Errorf("parse template %s: %w", tpl.ID, err)
	}

	doc := &Document{root: root}
	c := content.Normalize()

	doc.applyHero(c, profile)
	doc.applyBackground(c, tpl, opts)
	doc.applyProducts(products, opts)
	doc.applyContact(profile)
	doc.removeExcludedSections()

	return doc, nil
}

func (d *Document) applyHero(c domain.Content, profile Profile) {
	title := c.Hero.Title
	if title == "" {
		title = strings.TrimSpace(profile.Name)
	}
	if title == "" {
		title = defaultTitle
	}

	subtitle := c.Hero.Subtitle
	if subtitle == "" {
		subtitle = strings.TrimSpace(profile.Description)
	}

	buttonText := c.Hero.ButtonText
	if buttonText == "" {
		buttonText = defaultButtonText
	}

	for _, hook := range []string{"page-title", "logo"} {
		if n := findHook(d.root, hook); n != nil {
			setText(n, title)
			d.record(Mutation{Op: OpSetText, Hook: hook, Value: title})
		}
	}
	if n := findHook(d.root, "hero-title"); n != nil {
		setText(n, title)
		d.record(Mutation{Op: OpSetText, Hook: "hero-title", Value: title})
	}
	if n := findHook(d.root, "hero-subtitle"); n != nil {
		setInnerHTML(n, subtitle)
		d.record(Mutation{Op: OpSetHTML, Hook: "hero-subtitle", Value: subtitle})
	}
	if n := findHook(d.root, "hero-button"); n != nil {
		setText(n, buttonText)
		d.record(Mutation{Op: OpSetText, Hook: "hero-button", Value: buttonText})
	}
}

// applyBackground injects a stylesheet rule overriding the template's own
// hero decoration. Templates ship decorative backgrounds (pseudo-element
// images) that must lose to a saved custom background, hence !important.
// With nothing saved, the template's default look stands untouched.
func (d *Document) applyBackground(c domain.Content, tpl *template.Template, opts Options) {
	bg := c.Background
	if bg.Color == "" && bg.Image == "" {
		return
	}

	color := bg.Color
	if color == "" {
		color = tpl.DefaultBackground
	}

	var rules strings.Builder
	rules.WriteString(`[data-sf-hook="hero"]::before, [data-sf-hook="hero"]::after { display: none !important; }` + "\n")
	if bg.Type == domain.BackgroundImage && bg.Image != "" {
		imageURL := absoluteURL(opts.AssetBaseURL, bg.Image)
		fmt.Fprintf(&rules,
			`[data-sf-hook="hero"] { background-color: %s !important; background-image: url('%s') !important; background-repeat: %s !important; background-size: %s !important; background-position: %s !important; }`,
			color, imageURL, bg.Repeat, bg.Size, bg.Position)
	} else {
		fmt.Fprintf(&rules, `[data-sf-hook="hero"] { background: %s !important; background-image: none !important; }`, color)
	}
	fmt.Fprintf(&rules, "\nbody { background-color: %s; }", color)

	head := findElement(d.root, "head")
	if head == nil {
		return
	}
	style := &html.Node{Type: html.ElementNode, Data: "style"}
	setAttr(style, hookAttr, "custom-background")
	style.AppendChild(&html.Node{Type: html.TextNode, Data: rules.String()})
	head.AppendChild(style)
	d.record(Mutation{Op: OpInjectStyle, Hook: "custom-background", Value: rules.String()})
}

func (d *Document) applyContact(profile Profile) {
	address := joinAddress(profile.Address)
	hasContact := profile.ContactEmail != "" || profile.Phone != "" || address != ""

	contact := findHook(d.root, "contact")
	if contact == nil {
		return
	}
	if !hasContact {
		removeNode(contact)
		d.record(Mutation{Op: OpRemove, Hook: "contact"})
		return
	}

	parts := []struct {
		hook  string
		value string
	}{
		{"contact-email", profile.ContactEmail},
		{"contact-phone", profile.Phone},
		{"contact-address", address},
	}
	for _, p := range parts {
		n := findHook(contact, p.hook)
		if n == nil {
			continue
		}
		if p.value == "" {
			removeNode(n)
			d.record(Mutation{Op: OpRemove, Hook: p.hook})
			continue
		}
		setText(n, p.value)
		d.record(Mutation{Op: OpSetText, Hook: p.hook, Value: p.value})
	}
}

// removeExcludedSections drops about and gallery content from published
// output regardless of what the source template ships.
func (d *Document) removeExcludedSections() {
	for _, hook := range []string{"about", "gallery"} {
		nodes := findHooks(d.root, hook)
		for _, n := range nodes {
			removeNode(n)
		}
		if len(nodes) > 0 {
			d.record(Mutation{Op: OpRemove, Hook: hook})
		}
	}
}

func joinAddress(a domain.Address) string {
	parts := make([]string, 0, 4)
	for _, p := range []string{a.Barangay, a.Municipality, a.Province, a.Region} {
		if s := strings.TrimSpace(p); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}
