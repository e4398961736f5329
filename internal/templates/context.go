package templates

import (
	"fmt"

	"bizsite_server/internal/types"
)

// requiredPlaceholders must appear in every layout.
var requiredPlaceholders = []string{
	"business_name",
	"hero_headline",
	"hero_subtext",
	"services_html",
	"contact_section",
}

// placeholderDefaults is the full placeholder table. Layout loading rejects
// any name outside it, and the substitution context guarantees a value for
// every name in it before rendering.
var placeholderDefaults = map[string]string{
	"business_name":     "",
	"primary_color":     "#2c3e50",
	"secondary_color":   "#3498db",
	"accent_color":      "#e74c3c",
	"background_color":  "#ffffff",
	"text_color":        "#333333",
	"gradient_primary":  "linear-gradient(135deg, #667eea 0%, #764ba2 100%)",
	"gradient_secondary": "linear-gradient(135deg, #f093fb 0%, #f5576c 100%)",
	"font_family":       "'Inter', 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif",
	"heading_font":      "'Playfair Display', 'Georgia', serif",
	"hero_headline":     "",
	"hero_subtext":      "",
	"hero_cta":          "Get Started",
	"hero_image":        "",
	"about_title":       "About Us",
	"about_text":        "",
	"about_image":       "",
	"services_title":    "Our Services",
	"services_intro":    "We offer comprehensive services tailored to your needs.",
	"services_html":     "",
	"cta_section_title": "Ready to Get Started?",
	"cta_text":          "Contact us today to learn more.",
	"cta_button":        "Contact Us",
	"cta_image":         "",
	"contact_section":   "",
	"footer_text":       "",
}

// buildContext assembles the substitution values for one render. Every
// placeholder in the table receives a value: record fields when present,
// questionnaire-derived or generic defaults otherwise.
func buildContext(q types.Questionnaire, design types.Design, content types.Content,
	images types.Images, servicesHTML, contactSection string) map[string]string {

	ctx := map[string]string{
		"business_name": q.BusinessName,

		"primary_color":      orDefault(design.PrimaryColor, "primary_color"),
		"secondary_color":    orDefault(design.SecondaryColor, "secondary_color"),
		"accent_color":       orDefault(design.AccentColor, "accent_color"),
		"background_color":   orDefault(design.BackgroundColor, "background_color"),
		"text_color":         orDefault(design.TextColor, "text_color"),
		"gradient_primary":   orDefault(design.GradientPrimary, "gradient_primary"),
		"gradient_secondary": orDefault(design.GradientSecondary, "gradient_secondary"),
		"font_family":        orDefault(design.FontFamily, "font_family"),
		"heading_font":       orDefault(design.HeadingFont, "heading_font"),

		"hero_headline": fallbackString(content.HeroHeadline, fmt.Sprintf("Welcome to %s", q.BusinessName)),
		"hero_subtext":  fallbackString(content.HeroSubtext, q.Description),
		"hero_cta":      orDefault(content.HeroCTA, "hero_cta"),
		"hero_image":    images.Hero,

		"about_title": orDefault(content.AboutTitle, "about_title"),
		"about_text": fallbackString(content.AboutText,
			fmt.Sprintf("%s provides exceptional service.", q.BusinessName)),
		"about_image": images.About,

		"services_title": orDefault(content.ServicesTitle, "services_title"),
		"services_intro": orDefault(content.ServicesIntro, "services_intro"),
		"services_html":  servicesHTML,

		"cta_section_title": orDefault(content.CTASectionTitle, "cta_section_title"),
		"cta_text":          orDefault(content.CTAText, "cta_text"),
		"cta_button":        orDefault(content.CTAButton, "cta_button"),
		"cta_image":         images.CTA,

		"contact_section": contactSection,
		"footer_text": fallbackString(content.FooterText,
			fmt.Sprintf("%s. All rights reserved.", q.BusinessName)),
	}

	// Placeholders not assigned above still get their table default so
	// substitution can never encounter a missing key.
	for name, def := range placeholderDefaults {
		if _, ok := ctx[name]; !ok {
			ctx[name] = def
		}
	}
	return ctx
}

func orDefault(value, placeholder string) string {
	if value != "" {
		return value
	}
	return placeholderDefaults[placeholder]
}

func fallbackString(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}
