package render

import (
	"strings"
	"testing"

	"github.com/andromedanny/storefront-service/internal/domain"
	"github.com/andromedanny/storefront-service/internal/template"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProducts() []*domain.Product {
	return []*domain.Product{
		{
			ID:          "p1",
			Name:        "Damascus Chef Knife",
			Description: "<p>Hand forged, 67 layers.</p>",
			Price:       decimal.NewFromFloat(4500),
			Stock:       3,
			Image:       "knives/damascus.jpg",
			IsActive:    true,
		},
		{
			ID:       "p2",
			Name:     "Paring Knife",
			Price:    decimal.NewFromFloat(899.50),
			Stock:    10,
			IsActive: true,
		},
		{
			ID:       "p3",
			Name:     "Cleaver",
			Price:    decimal.NewFromInt(2100),
			Stock:    1,
			IsActive: true,
		},
	}
}

func TestMaterializeHeroFromContent(t *testing.T) {
	tpl := template.Lookup("bladesmith")
	content := domain.Content{Hero: domain.Hero{
		Title:      "Benny's Blades",
		Subtitle:   "<p>Forged in Batangas</p>",
		ButtonText: "Browse",
	}}

	doc, err := Materialize(tpl, content, nil, Profile{Name: "fallback"}, Options{})
	require.NoError(t, err)

	page := doc.HTML()
	assert.Contains(t, page, "Benny&#39;s Blades")
	assert.Contains(t, page, "Forged in Batangas")
	assert.Contains(t, page, "Browse")
	assert.NotContains(t, page, "fallback")
}

func TestMaterializeHeroFallsBackToProfileName(t *testing.T) {
	tpl := template.Lookup("aurora")

	doc, err := Materialize(tpl, domain.Content{}, nil, Profile{Name: "Aurora Goods"}, Options{})
	require.NoError(t, err)

	assert.Contains(t, doc.HTML(), "Aurora Goods")
}

func TestMaterializeHeroSubtitleFallsBackToProfileDescription(t *testing.T) {
	tpl := template.Lookup("bladesmith")

	doc, err := Materialize(tpl, domain.Content{}, nil, Profile{Name: "Acme Crafts", Description: "Handmade goods"}, Options{})
	require.NoError(t, err)

	assert.Contains(t, doc.HTML(), "Handmade goods")

	var subtitle string
	for _, m := range doc.Mutations() {
		if m.Hook == "hero-subtitle" {
			subtitle = m.Value
		}
	}
	assert.Equal(t, "Handmade goods", subtitle)
}

func TestMaterializeHeroDefaultTitle(t *testing.T) {
	tpl := template.Lookup("noir")

	doc, err := Materialize(tpl, domain.Content{}, nil, Profile{}, Options{})
	require.NoError(t, err)

	page := doc.HTML()
	assert.Contains(t, page, ">Store<")
	assert.Contains(t, page, "Shop Now")
}

func TestMaterializeIsIdempotent(t *testing.T) {
	tpl := template.Lookup("verdant")
	content := domain.Content{
		Hero:       domain.Hero{Title: "Verdant Living"},
		Background: domain.Background{Type: domain.BackgroundColor, Color: "#224422"},
	}
	profile := Profile{Name: "Verdant", ContactEmail: "hello@verdant.ph"}
	products := testProducts()

	first, err := Materialize(tpl, content, products, profile, Options{AssetBaseURL: "https://cdn.local"})
	require.NoError(t, err)
	second, err := Materialize(tpl, content, products, profile, Options{AssetBaseURL: "https://cdn.local"})
	require.NoError(t, err)

	assert.Equal(t, first.HTML(), second.HTML())
	assert.Equal(t, first.Mutations(), second.Mutations())
}

func TestMaterializeRendersOneCardPerProduct(t *testing.T) {
	products := testProducts()

	for _, tpl := range template.All() {
		doc, err := Materialize(tpl, domain.Content{}, products, Profile{}, Options{})
		require.NoError(t, err)

		page := doc.HTML()
		assert.Equal(t, len(products), strings.Count(page, `data-sf-hook="product-card"`),
			"template %s card count", tpl.ID)
		for _, p := range products {
			assert.Contains(t, page, p.Name, "template %s", tpl.ID)
		}

		var cards int
		trims := 0
		for _, m := range doc.Mutations() {
			switch m.Op {
			case OpCard:
				cards++
				require.NotNil(t, m.Card)
			case OpTrimCards:
				trims++
				assert.Equal(t, len(products), m.Index)
			}
		}
		assert.Equal(t, len(products), cards, "template %s", tpl.ID)
		assert.Equal(t, 1, trims, "template %s", tpl.ID)
	}
}

func TestMaterializeCardDetails(t *testing.T) {
	tpl := template.Lookup("bladesmith")
	doc, err := Materialize(tpl, domain.Content{}, testProducts(), Profile{},
		Options{AssetBaseURL: "https://cdn.local/assets"})
	require.NoError(t, err)

	var card *ProductCard
	for _, m := range doc.Mutations() {
		if m.Op == OpCard && m.Index == 0 {
			card = m.Card
		}
	}
	require.NotNil(t, card)

	assert.Equal(t, "₱4500.00", card.Price)
	assert.Equal(t, "Hand forged, 67 layers.", card.Description)
	assert.Equal(t, "https://cdn.local/assets/knives/damascus.jpg", card.Image)
}

func TestMaterializeInteractiveCards(t *testing.T) {
	tpl := template.Lookup("bladesmith")
	products := testProducts()

	interactive, err := Materialize(tpl, domain.Content{}, products, Profile{}, Options{Interactive: true})
	require.NoError(t, err)
	assert.Contains(t, interactive.HTML(), "data-sf-order=")

	static, err := Materialize(tpl, domain.Content{}, products, Profile{}, Options{})
	require.NoError(t, err)
	assert.NotContains(t, static.HTML(), "data-sf-order=")
	assert.Contains(t, static.HTML(), "onclick=")
}

func TestMaterializeTrimsLeftoverTemplateCards(t *testing.T) {
	tpl := template.Lookup("bladesmith")

	doc, err := Materialize(tpl, domain.Content{}, testProducts()[:1], Profile{}, Options{})
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(doc.HTML(), `data-sf-hook="product-card"`))
}

func TestMaterializeNoProductsEmptiesContainer(t *testing.T) {
	tpl := template.Lookup("coastal")

	doc, err := Materialize(tpl, domain.Content{}, nil, Profile{}, Options{})
	require.NoError(t, err)

	assert.Equal(t, 0, strings.Count(doc.HTML(), `data-sf-hook="product-card"`))
}

func TestMaterializeRemovesAboutAndGallery(t *testing.T) {
	for _, tpl := range template.All() {
		doc, err := Materialize(tpl, domain.Content{}, nil, Profile{}, Options{})
		require.NoError(t, err)

		page := doc.HTML()
		assert.NotContains(t, page, `data-sf-hook="about"`, "template %s", tpl.ID)
		assert.NotContains(t, page, `data-sf-hook="gallery"`, "template %s", tpl.ID)
	}
}

func TestMaterializeContactSection(t *testing.T) {
	tpl := template.Lookup("bladesmith")
	profile := Profile{
		Name:         "Benny's Blades",
		ContactEmail: "orders@blades.ph",
		Phone:        "0917 555 1234",
		Address: domain.Address{
			Barangay:     "San Isidro",
			Municipality: "Taal",
			Province:     "Batangas",
			Region:       "CALABARZON",
		},
	}

	doc, err := Materialize(tpl, domain.Content{}, nil, profile, Options{})
	require.NoError(t, err)

	page := doc.HTML()
	assert.Contains(t, page, "orders@blades.ph")
	assert.Contains(t, page, "0917 555 1234")
	assert.Contains(t, page, "San Isidro, Taal, Batangas, CALABARZON")
}

func TestMaterializeEmptyContactRemovesSection(t *testing.T) {
	tpl := template.Lookup("bladesmith")

	doc, err := Materialize(tpl, domain.Content{}, nil, Profile{Name: "No Contact"}, Options{})
	require.NoError(t, err)

	assert.NotContains(t, doc.HTML(), `data-sf-hook="contact"`)
}

func TestMaterializeDefaultBackgroundUntouched(t *testing.T) {
	tpl := template.Lookup("bladesmith")

	doc, err := Materialize(tpl, domain.Content{}, nil, Profile{}, Options{})
	require.NoError(t, err)

	assert.NotContains(t, doc.HTML(), `data-sf-hook="custom-background"`)
}

func TestMaterializeCustomColorBackground(t *testing.T) {
	tpl := template.Lookup("bladesmith")
	content := domain.Content{Background: domain.Background{Type: domain.BackgroundColor, Color: "#ff0055"}}

	doc, err := Materialize(tpl, content, nil, Profile{}, Options{})
	require.NoError(t, err)

	page := doc.HTML()
	assert.Contains(t, page, `data-sf-hook="custom-background"`)
	assert.Contains(t, page, "background: #ff0055 !important")
	assert.Contains(t, page, "display: none !important")
}

func TestMaterializeCustomImageBackground(t *testing.T) {
	tpl := template.Lookup("bladesmith")
	content := domain.Content{Background: domain.Background{
		Type:  domain.BackgroundImage,
		Image: "backgrounds/forge.jpg",
	}}

	doc, err := Materialize(tpl, content, nil, Profile{}, Options{AssetBaseURL: "https://cdn.local"})
	require.NoError(t, err)

	page := doc.HTML()
	assert.Contains(t, page, "url('https://cdn.local/backgrounds/forge.jpg')")
	assert.Contains(t, page, "background-repeat: no-repeat !important")
	assert.Contains(t, page, "background-size: cover !important")
	assert.Contains(t, page, "background-position: center !important")
}

func TestTruncateLongDescription(t *testing.T) {
	long := strings.Repeat("word ", 60)
	got := truncate(stripTags(long), descriptionLimit)
	assert.LessOrEqual(t, len([]rune(got)), descriptionLimit+1)
	assert.True(t, strings.HasSuffix(got, "…"))
}

func TestAbsoluteURLPassthrough(t *testing.T) {
	assert.Equal(t, "https://x.test/a.jpg", absoluteURL("https://cdn.local", "https://x.test/a.jpg"))
	assert.Equal(t, "data:image/png;base64,xx", absoluteURL("https://cdn.local", "data:image/png;base64,xx"))
	assert.Equal(t, "https://cdn.local/a.jpg", absoluteURL("https://cdn.local/", "/a.jpg"))
	assert.Equal(t, "", absoluteURL("https://cdn.local", ""))
}
