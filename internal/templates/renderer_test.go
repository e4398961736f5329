package templates

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"bizsite_server/internal/types"
)

func testQuestionnaire() types.Questionnaire {
	return types.Questionnaire{
		BusinessName:    "Busy Bean",
		Description:     "We provide the best organic coffee for busy professionals",
		Services:        "Coffee, Pastries",
		TargetAudience:  "busy professionals",
		ColorPreference: "warm browns",
		StylePreference: "modern",
		TemplateID:      "modern_glass",
	}
}

func TestRenderBusinessNameAppearsVerbatim(t *testing.T) {
	c, err := NewCatalog(zap.NewNop())
	require.NoError(t, err)
	r := NewRenderer(c, zap.NewNop())

	doc, err := r.Render(testQuestionnaire(), types.Design{}, types.Content{}, types.Images{})
	require.NoError(t, err)
	assert.Contains(t, doc, "Busy Bean")
}

func TestRenderAppliesDefaultsPerField(t *testing.T) {
	c, err := NewCatalog(zap.NewNop())
	require.NoError(t, err)
	r := NewRenderer(c, zap.NewNop())

	// Design supplies only a primary color; the rest of the record is empty.
	design := types.Design{PrimaryColor: "#123456"}
	content := types.Content{HeroHeadline: "Fresh Coffee Daily"}

	doc, err := r.Render(testQuestionnaire(), design, content, types.Images{})
	require.NoError(t, err)

	// Supplied values survive, missing siblings fall back individually.
	assert.Contains(t, doc, "#123456")
	assert.Contains(t, doc, "#3498db") // default secondary
	assert.Contains(t, doc, "Fresh Coffee Daily")
	assert.Contains(t, doc, "Get Started")  // default hero CTA
	assert.Contains(t, doc, "Our Services") // default services title
}

func TestRenderUnknownTemplateUsesBuiltin(t *testing.T) {
	c, err := NewCatalog(zap.NewNop())
	require.NoError(t, err)
	r := NewRenderer(c, zap.NewNop())

	q := testQuestionnaire()
	q.TemplateID = "no_such_layout"

	doc, err := r.Render(q, types.Design{}, types.Content{}, types.Images{})
	require.NoError(t, err)
	assert.Contains(t, doc, "Busy Bean")
	// Builtin layout has no scroll-animation assets.
	assert.NotContains(t, doc, "aos.js")
}

func TestRenderRawSubstitution(t *testing.T) {
	c, err := NewCatalog(zap.NewNop())
	require.NoError(t, err)
	r := NewRenderer(c, zap.NewNop())

	design := types.Design{
		FontFamily: "'Inter', sans-serif",
	}
	doc, err := r.Render(testQuestionnaire(), design, types.Content{}, types.Images{})
	require.NoError(t, err)

	// Quotes in CSS values must not be entity-escaped.
	assert.Contains(t, doc, "'Inter', sans-serif")
	assert.NotContains(t, doc, "&#39;Inter&#39;")
}

func TestServicesHTMLPositionalPairing(t *testing.T) {
	items := []types.ServiceItem{
		{Name: "Coffee", Description: "Single-origin espresso"},
		{Name: "Pastries", Description: "Baked fresh each morning"},
	}
	images := []string{"https://images.example.com/coffee.jpg"}

	html := servicesHTML(items, images)

	blocks := strings.Split(html, `<div class="service-item"`)
	require.Len(t, blocks, 3) // leading fragment plus two blocks

	// First entry pairs with the image, second falls back to the icon.
	assert.Contains(t, blocks[1], `img src="https://images.example.com/coffee.jpg"`)
	assert.Contains(t, blocks[1], "<h3>Coffee</h3>")
	assert.NotContains(t, blocks[1], "fa-star")

	assert.Contains(t, blocks[2], "fa-star")
	assert.Contains(t, blocks[2], "<h3>Pastries</h3>")
	assert.NotContains(t, blocks[2], "img src")
}

func TestServicesHTMLEmptyFields(t *testing.T) {
	html := servicesHTML([]types.ServiceItem{{}}, nil)
	assert.Contains(t, html, "<h3>Service</h3>")
	assert.Contains(t, html, "Professional service description")
}

func TestContactSectionOmittedWhenBlank(t *testing.T) {
	assert.Empty(t, contactSection(""))
	assert.Empty(t, contactSection("   "))

	section := contactSection("hello@busybean.example")
	assert.Contains(t, section, "hello@busybean.example")
	assert.Contains(t, section, `id="contact"`)
}
