package types

import (
	"fmt"
	"strings"
)

// DefaultTemplateID is used when a request does not name a layout.
const DefaultTemplateID = "modern_glass"

// Questionnaire is the structured input collected from the user. It is
// created once per generation request and never mutated afterwards.
type Questionnaire struct {
	BusinessName    string `json:"business_name"`
	Description     string `json:"description"`
	Services        string `json:"services"` // comma-separated list
	TargetAudience  string `json:"target_audience"`
	ColorPreference string `json:"color_preference"`
	StylePreference string `json:"style_preference"`
	ContactInfo     string `json:"contact_info,omitempty"`
	TemplateID      string `json:"template_id,omitempty"`
}

// ValidationError reports a missing required questionnaire field.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

// Validate checks all required fields are present. It must be called before
// any pipeline stage runs.
func (q Questionnaire) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"business_name", q.BusinessName},
		{"description", q.Description},
		{"services", q.Services},
		{"target_audience", q.TargetAudience},
		{"color_preference", q.ColorPreference},
		{"style_preference", q.StylePreference},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return &ValidationError{Field: f.name}
		}
	}
	return nil
}

// ServiceList splits the comma-separated services field into trimmed entries.
func (q Questionnaire) ServiceList() []string {
	parts := strings.Split(q.Services, ",")
	services := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			services = append(services, s)
		}
	}
	return services
}

// Analysis holds the business-analysis record produced by the first stage.
type Analysis struct {
	KeyStrengths           []string `json:"key_strengths"`
	CustomerNeeds          []string `json:"customer_needs"`
	UniqueValueProposition string   `json:"unique_value_proposition"`
	ToneOfVoice            string   `json:"tone_of_voice"`
	CompetitiveAdvantages  []string `json:"competitive_advantages"`
}

// Design holds the named color/gradient/font/style tokens consumed only by
// the renderer.
type Design struct {
	PrimaryColor      string   `json:"primary_color"`
	SecondaryColor    string   `json:"secondary_color"`
	AccentColor       string   `json:"accent_color"`
	BackgroundColor   string   `json:"background_color"`
	TextColor         string   `json:"text_color"`
	GradientPrimary   string   `json:"gradient_primary"`
	GradientSecondary string   `json:"gradient_secondary"`
	FontFamily        string   `json:"font_family"`
	HeadingFont       string   `json:"heading_font"`
	LayoutStyle       string   `json:"layout_style"`
	VisualElements    []string `json:"visual_elements"`
	AnimationStyle    string   `json:"animation_style"`
	CardStyle         string   `json:"card_style"`
	ButtonStyle       string   `json:"button_style"`
	NavigationStyle   string   `json:"navigation_style"`
	HeroStyle         string   `json:"hero_style"`
}

// ServiceItem is one named service entry with its marketing blurb.
type ServiceItem struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Content holds the page copy produced by the content stage.
type Content struct {
	HeroHeadline    string        `json:"hero_headline"`
	HeroSubtext     string        `json:"hero_subtext"`
	HeroCTA         string        `json:"hero_cta"`
	AboutTitle      string        `json:"about_title"`
	AboutText       string        `json:"about_text"`
	ServicesTitle   string        `json:"services_title"`
	ServicesIntro   string        `json:"services_intro"`
	ServiceItems    []ServiceItem `json:"service_items"`
	CTASectionTitle string        `json:"cta_section_title"`
	CTAText         string        `json:"cta_text"`
	CTAButton       string        `json:"cta_button"`
	FooterText      string        `json:"footer_text"`
}

// Images holds section image URLs. Services is parallel, by position, to
// Content.ServiceItems.
type Images struct {
	Hero     string   `json:"hero"`
	About    string   `json:"about"`
	CTA      string   `json:"cta"`
	Services []string `json:"services"`
}
