package domain

import (
	"encoding/json"
	"strings"
)

type BackgroundType string

const (
	BackgroundColor BackgroundType = "color"
	BackgroundImage BackgroundType = "image"
)

// Content is the JSON blob the builder saves per store. Every field is
// optional; the materializer resolves absent values against the store
// profile and the template defaults.
type Content struct {
	Hero       Hero       `json:"hero"`
	Background Background `json:"background"`
}

type Hero struct {
	Title      string `json:"title"`
	Subtitle   string `json:"subtitle"`
	ButtonText string `json:"buttonText"`
}

type Background struct {
	Type     BackgroundType `json:"type"`
	Color    string         `json:"color"`
	Image    string         `json:"image"`
	Repeat   string         `json:"repeat"`
	Size     string         `json:"size"`
	Position string         `json:"position"`
}

func (b Background) IsZero() bool {
	return b.Type == "" && b.Color == "" && b.Image == ""
}

// Normalize validates-with-defaults at the content boundary so the
// materializer never has to second-guess field values. An unknown
// background type collapses to "color".
func (c Content) Normalize() Content {
	c.Hero.Title = strings.TrimSpace(c.Hero.Title)
	c.Hero.Subtitle = stripWrappingParagraph(c.Hero.Subtitle)
	c.Hero.ButtonText = strings.TrimSpace(c.Hero.ButtonText)

	if c.Background.Type != BackgroundColor && c.Background.Type != BackgroundImage {
		c.Background.Type = BackgroundColor
	}
	if c.Background.Type == BackgroundImage {
		if c.Background.Repeat == "" {
			c.Background.Repeat = "no-repeat"
		}
		if c.Background.Size == "" {
			c.Background.Size = "cover"
		}
		if c.Background.Position == "" {
			c.Background.Position = "center"
		}
	}
	return c
}

// ParseContent decodes a stored content blob. Legacy rows hold the blob
// double-encoded as a JSON string; both shapes are accepted. Malformed
// blobs yield the zero value rather than an error so a broken save never
// breaks rendering.
func ParseContent(raw []byte) Content {
	var c Content
	if len(raw) == 0 {
		return c
	}
	if err := json.Unmarshal(raw, &c); err == nil {
		return c
	}
	var nested string
	if err := json.Unmarshal(raw, &nested); err == nil {
		if err := json.Unmarshal([]byte(nested), &c); err == nil {
			return c
		}
	}
	return Content{}
}

func stripWrappingParagraph(s string) string {
	s = strings.TrimSpace(s)
	lower := strings.ToLower(s)
	if strings.HasPrefix(lower, "<p>") && strings.HasSuffix(lower, "</p>") {
		inner := s[3 : len(s)-4]
		// only strip a single wrapping pair, not separate paragraphs
		if !strings.Contains(strings.ToLower(inner), "<p>") {
			return strings.TrimSpace(inner)
		}
	}
	return s
}
