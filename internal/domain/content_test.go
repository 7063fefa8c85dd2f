package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDefaultsUnknownBackgroundType(t *testing.T) {
	c := Content{Background: Background{Type: "gradient", Color: "#fff"}}

	got := c.Normalize()

	assert.Equal(t, BackgroundColor, got.Background.Type)
}

func TestNormalizeImageBackgroundDefaults(t *testing.T) {
	c := Content{Background: Background{Type: BackgroundImage, Image: "bg.jpg"}}

	got := c.Normalize()

	assert.Equal(t, "no-repeat", got.Background.Repeat)
	assert.Equal(t, "cover", got.Background.Size)
	assert.Equal(t, "center", got.Background.Position)
}

func TestNormalizeKeepsExplicitImageSettings(t *testing.T) {
	c := Content{Background: Background{
		Type:     BackgroundImage,
		Image:    "bg.jpg",
		Repeat:   "repeat-x",
		Size:     "contain",
		Position: "top left",
	}}

	got := c.Normalize()

	assert.Equal(t, "repeat-x", got.Background.Repeat)
	assert.Equal(t, "contain", got.Background.Size)
	assert.Equal(t, "top left", got.Background.Position)
}

func TestNormalizeStripsWrappingParagraph(t *testing.T) {
	c := Content{Hero: Hero{Subtitle: " <p>plain subtitle</p> "}}
	assert.Equal(t, "plain subtitle", c.Normalize().Hero.Subtitle)

	// separate paragraphs keep their markup
	c = Content{Hero: Hero{Subtitle: "<p>one</p><p>two</p>"}}
	assert.Equal(t, "<p>one</p><p>two</p>", c.Normalize().Hero.Subtitle)
}

func TestParseContent(t *testing.T) {
	got := ParseContent([]byte(`{"hero":{"title":"My Shop"}}`))
	assert.Equal(t, "My Shop", got.Hero.Title)
}

func TestParseContentDoubleEncoded(t *testing.T) {
	got := ParseContent([]byte(`"{\"hero\":{\"title\":\"Legacy Shop\"}}"`))
	assert.Equal(t, "Legacy Shop", got.Hero.Title)
}

func TestParseContentMalformed(t *testing.T) {
	assert.Equal(t, Content{}, ParseContent([]byte(`{"hero":`)))
	assert.Equal(t, Content{}, ParseContent(nil))
	assert.Equal(t, Content{}, ParseContent([]byte(`"not json inside"`)))
}
