package templates

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"bizsite_server/internal/types"
)

// Renderer fills a layout's placeholders from the accumulated pipeline
// records.
type Renderer struct {
	catalog *Catalog
	logger  *zap.Logger
}

func NewRenderer(catalog *Catalog, logger *zap.Logger) *Renderer {
	return &Renderer{catalog: catalog, logger: logger}
}

// Render substitutes the records into the layout named by the questionnaire,
// or the built-in fallback layout when the id is unknown. Missing record
// fields degrade individually to defaults, so substitution never fails on a
// missing key.
func (r *Renderer) Render(q types.Questionnaire, design types.Design,
	content types.Content, images types.Images) (string, error) {

	tmpl := r.catalog.layout(q.TemplateID)

	ctx := buildContext(q, design, content, images,
		servicesHTML(content.ServiceItems, images.Services),
		contactSection(q.ContactInfo))

	doc, err := tmpl.Render(ctx)
	if err != nil {
		return "", fmt.Errorf("rendering layout %q: %w", q.TemplateID, err)
	}
	return doc, nil
}

// servicesHTML builds one markup block per service entry, pairing entries
// positionally with the service image list and using an icon when no image
// exists at that position.
func servicesHTML(items []types.ServiceItem, serviceImages []string) string {
	var b strings.Builder
	for i, item := range items {
		name := item.Name
		if name == "" {
			name = "Service"
		}
		description := item.Description
		if description == "" {
			description = "Professional service description"
		}

		if i < len(serviceImages) && serviceImages[i] != "" {
			fmt.Fprintf(&b, `
                <div class="service-item" data-aos="fade-up">
                    <div class="service-image">
                        <img src="%s" alt="%s" loading="lazy">
                    </div>
                    <h3>%s</h3>
                    <p>%s</p>
                </div>`, serviceImages[i], name, name, description)
		} else {
			fmt.Fprintf(&b, `
                <div class="service-item" data-aos="fade-up">
                    <div class="service-icon">
                        <i class="fas fa-star"></i>
                    </div>
                    <h3>%s</h3>
                    <p>%s</p>
                </div>`, name, description)
		}
	}
	return b.String()
}

// contactSection emits the contact markup only when contact info was given.
func contactSection(contactInfo string) string {
	if strings.TrimSpace(contactInfo) == "" {
		return ""
	}
	return fmt.Sprintf(`
        <section class="contact" id="contact">
            <div class="container">
                <h2 data-aos="fade-up">Contact Us</h2>
                <div class="contact-content" data-aos="fade-up" data-aos-delay="200">
                    <p>%s</p>
                </div>
            </div>
        </section>`, contactInfo)
}
