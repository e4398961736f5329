// Package prompts holds the instruction and prompt templates for each
// generation stage.
package prompts

// JSONOnlySystemPrompt is shared by stages whose answer must be a bare JSON
// record.
const jsonOnlyRule = `You MUST respond with ONLY valid JSON.
Do not include any text before or after the JSON. Do not use code blocks or markdown formatting.`

func AnalysisSystemPrompt() string {
	return "You are a business analysis expert. " + jsonOnlyRule
}

// AnalysisPrompt expects: business name, description, services, target audience.
func AnalysisPrompt() string {
	return `Analyze this business and provide insights in JSON format:

Business: %s
Description: %s
Services: %s
Target Audience: %s

Return ONLY this JSON structure:
{
    "key_strengths": ["strength1", "strength2", "strength3"],
    "customer_needs": ["need1", "need2", "need3"],
    "unique_value_proposition": "A clear statement of what makes this business special",
    "tone_of_voice": "professional",
    "competitive_advantages": ["advantage1", "advantage2"]
}`
}

func DesignSystemPrompt() string {
	return `You are an expert UI/UX designer and front-end developer specializing in creating visually stunning, interactive websites. ` + jsonOnlyRule + `

Focus on creating modern, engaging designs with:
- Eye-catching color schemes and gradients
- Interactive animations and micro-interactions
- Smooth transitions and hover effects
- Modern CSS properties like backdrop-filter, box-shadow, transforms
- Responsive design principles
- Visual hierarchy and typography
- Professional yet creative aesthetics`
}

// DesignPrompt expects: business name, description, target audience, color
// preference, style preference, tone of voice.
func DesignPrompt() string {
	return `Create comprehensive design suggestions for this business to make it visually stunning and interactive:

Business: %s
Industry: %s
Target Audience: %s
Color Preference: %s
Style Preference: %s
Tone: %s

Design a modern, interactive website with animations and visual appeal. Return ONLY this JSON structure:
{
    "primary_color": "#2c3e50",
    "secondary_color": "#3498db",
    "accent_color": "#e74c3c",
    "background_color": "#ffffff",
    "text_color": "#333333",
    "gradient_primary": "linear-gradient(135deg, #667eea 0%%, #764ba2 100%%)",
    "gradient_secondary": "linear-gradient(135deg, #f093fb 0%%, #f5576c 100%%)",
    "font_family": "'Inter', 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif",
    "heading_font": "'Playfair Display', 'Georgia', serif",
    "layout_style": "modern with animations and interactions",
    "visual_elements": ["parallax scrolling", "hover animations", "smooth transitions"],
    "animation_style": "smooth and engaging",
    "card_style": "glassmorphism with shadows",
    "button_style": "animated with hover effects",
    "navigation_style": "fixed with backdrop blur",
    "hero_style": "animated gradient background with floating elements"
}`
}

func ContentSystemPrompt() string {
	return "You are a web copywriting expert. " + jsonOnlyRule
}

// ContentPrompt expects: business name, description, services list, target
// audience, key strengths, value proposition, tone of voice.
func ContentPrompt() string {
	return `Write website content for this business in JSON format:

Business: %s
Description: %s
Services: %s
Target Audience: %s
Key Strengths: %s
Value Proposition: %s
Tone: %s

Return ONLY this JSON structure:
{
    "hero_headline": "Welcome to the business",
    "hero_subtext": "Professional service description",
    "hero_cta": "Get Started",
    "about_title": "About Us",
    "about_text": "About section content",
    "services_title": "Our Services",
    "services_intro": "Brief intro to services",
    "service_items": [
        {"name": "Service 1", "description": "Description"},
        {"name": "Service 2", "description": "Description"}
    ],
    "cta_section_title": "Ready to Get Started?",
    "cta_text": "Contact us today",
    "cta_button": "Contact Us",
    "footer_text": "Footer text about the business"
}`
}
