// Package templates loads the layout catalog and renders the final document
// by placeholder substitution.
package templates

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/cbroglie/mustache"
	"go.uber.org/zap"
)

//go:embed layouts
var embeddedLayouts embed.FS

// ErrTemplateNotFound is returned when a layout id is not in the catalog.
var ErrTemplateNotFound = errors.New("template not found in catalog")

// Info is the display metadata for one layout.
type Info struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Features    []string `json:"features,omitempty"`
	BestFor     []string `json:"best_for,omitempty"`
	File        string   `json:"file"`
}

type catalogConfig struct {
	Templates []Info `json:"templates"`
}

// Catalog holds the parsed, validated layouts plus the built-in fallback.
// Every layout is parsed and checked against the placeholder table at load
// time, so rendering cannot hit an unknown placeholder.
type Catalog struct {
	infos   []Info
	layouts map[string]*mustache.Template
	builtin *mustache.Template
	logger  *zap.Logger
}

// NewCatalog loads the layouts shipped with the binary.
func NewCatalog(logger *zap.Logger) (*Catalog, error) {
	sub, err := fs.Sub(embeddedLayouts, "layouts")
	if err != nil {
		return nil, err
	}
	return newCatalog(sub, logger)
}

// NewCatalogFromDir loads layouts from an external directory holding a
// catalog.json and the layout files it names.
func NewCatalogFromDir(dir string, logger *zap.Logger) (*Catalog, error) {
	return newCatalog(os.DirFS(dir), logger)
}

func newCatalog(fsys fs.FS, logger *zap.Logger) (*Catalog, error) {
	raw, err := fs.ReadFile(fsys, "catalog.json")
	if err != nil {
		return nil, fmt.Errorf("reading catalog config: %w", err)
	}
	var cfg catalogConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parsing catalog config: %w", err)
	}

	c := &Catalog{
		infos:   cfg.Templates,
		layouts: make(map[string]*mustache.Template, len(cfg.Templates)),
		logger:  logger,
	}

	for _, info := range cfg.Templates {
		data, err := fs.ReadFile(fsys, info.File)
		if err != nil {
			return nil, fmt.Errorf("reading layout %q: %w", info.ID, err)
		}
		tmpl, err := parseLayout(info.ID, string(data))
		if err != nil {
			return nil, err
		}
		c.layouts[info.ID] = tmpl
	}

	builtinData, err := fs.ReadFile(embeddedLayouts, "layouts/builtin.html")
	if err != nil {
		return nil, fmt.Errorf("reading built-in layout: %w", err)
	}
	if c.builtin, err = parseLayout("builtin", string(builtinData)); err != nil {
		return nil, err
	}

	logger.Info("layout catalog loaded", zap.Int("layouts", len(c.layouts)))
	return c, nil
}

// parseLayout parses layout text and rejects placeholders outside the known
// table, and layouts missing the required ones.
func parseLayout(id, data string) (*mustache.Template, error) {
	tmpl, err := mustache.ParseString(data)
	if err != nil {
		return nil, fmt.Errorf("parsing layout %q: %w", id, err)
	}

	seen := make(map[string]bool)
	for _, tag := range tmpl.Tags() {
		if tag.Type() != mustache.Variable {
			return nil, fmt.Errorf("layout %q: unsupported tag %q, only variable placeholders are allowed", id, tag.Name())
		}
		name := tag.Name()
		if _, known := placeholderDefaults[name]; !known {
			return nil, fmt.Errorf("layout %q: unknown placeholder %q", id, name)
		}
		seen[name] = true
	}

	var missing []string
	for _, name := range requiredPlaceholders {
		if !seen[name] {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("layout %q: missing required placeholders: %s", id, strings.Join(missing, ", "))
	}

	return tmpl, nil
}

// List returns all layouts with their display metadata.
func (c *Catalog) List() []Info {
	return c.infos
}

// GetInfo returns metadata for one layout id.
func (c *Catalog) GetInfo(id string) (Info, error) {
	for _, info := range c.infos {
		if info.ID == id {
			return info, nil
		}
	}
	return Info{}, fmt.Errorf("%w: %s", ErrTemplateNotFound, id)
}

// Preview returns a formatted text description of a layout for console
// display.
func (c *Catalog) Preview(id string) (string, error) {
	info, err := c.GetInfo(id)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	divider := strings.Repeat("=", 60)
	fmt.Fprintf(&b, "%s\nTemplate: %s\nID: %s\n%s\n\nDescription:\n%s\n",
		divider, info.Name, info.ID, divider, info.Description)
	if len(info.Features) > 0 {
		b.WriteString("\nFeatures:\n")
		for _, f := range info.Features {
			fmt.Fprintf(&b, "  - %s\n", f)
		}
	}
	if len(info.BestFor) > 0 {
		b.WriteString("\nBest For:\n")
		for _, category := range info.BestFor {
			fmt.Fprintf(&b, "  - %s\n", category)
		}
	}
	return b.String(), nil
}

// layout resolves a layout id, falling back to the built-in layout when the
// id is empty or unknown.
func (c *Catalog) layout(id string) *mustache.Template {
	if tmpl, ok := c.layouts[id]; ok {
		return tmpl
	}
	if id != "" {
		c.logger.Warn("layout not found, using built-in fallback", zap.String("template_id", id))
	}
	return c.builtin
}
