package agents

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"bizsite_server/internal/types"
	"bizsite_server/internal/unsplash"
)

// maxServiceImages caps the per-service lookups, matching the content
// fallback's service limit.
const maxServiceImages = 3

// stopWords are dropped from descriptions before deriving search queries.
var stopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {},
	"in": {}, "on": {}, "at": {}, "to": {}, "for": {}, "of": {},
	"with": {}, "by": {}, "we": {}, "our": {}, "your": {},
}

// ImageAgent fetches section images from the photo-search collaborator. It
// never fails: a missing credential, an upstream error, or an empty result
// all degrade to a deterministic placeholder URL.
type ImageAgent struct {
	searcher unsplash.Searcher // nil when no access key is configured
	logger   *zap.Logger
}

func NewImageAgent(searcher unsplash.Searcher, logger *zap.Logger) *ImageAgent {
	return &ImageAgent{searcher: searcher, logger: logger}
}

// FetchImages resolves one URL per major section plus one per service entry,
// positionally parallel to content.ServiceItems (capped at three).
func (a *ImageAgent) FetchImages(ctx context.Context, q types.Questionnaire, content types.Content) types.Images {
	if a.searcher == nil {
		a.logger.Warn("photo search key not configured, using placeholder images")
		return defaultPlaceholderImages()
	}

	images := types.Images{
		Hero:  a.lookup(ctx, ExtractKeywords(q.Description, q.BusinessName)),
		About: a.lookup(ctx, q.BusinessName+" team professional"),
		CTA:   a.lookup(ctx, q.BusinessName+" call to action"),
	}

	items := content.ServiceItems
	if len(items) > maxServiceImages {
		items = items[:maxServiceImages]
	}
	for _, item := range items {
		query := item.Name
		if query == "" {
			query = "business service"
		}
		images.Services = append(images.Services, a.lookup(ctx, query))
	}

	return images
}

func (a *ImageAgent) lookup(ctx context.Context, query string) string {
	imageURL, err := a.searcher.SearchPhoto(ctx, query, "landscape")
	if err != nil {
		a.logger.Warn("photo search failed, using placeholder",
			zap.String("query", query), zap.Error(err))
		return PlaceholderURL(query)
	}
	if imageURL == "" {
		return PlaceholderURL(query)
	}
	return imageURL
}

// ExtractKeywords derives a short photo search query from free text. The
// business name is removed so the query stays generic, short words and
// stopwords are dropped, and the first three survivors are joined.
func ExtractKeywords(description, businessName string) string {
	desc := strings.ToLower(description)
	desc = strings.ReplaceAll(desc, strings.ToLower(businessName), "")

	var keywords []string
	for _, word := range strings.Fields(desc) {
		word = strings.Trim(word, ".,!?")
		if len(word) <= 3 {
			continue
		}
		if _, stop := stopWords[word]; stop {
			continue
		}
		keywords = append(keywords, word)
		if len(keywords) == 3 {
			break
		}
	}

	if len(keywords) == 0 {
		return businessName
	}
	return strings.Join(keywords, " ")
}

// PlaceholderURL maps a query to a stable stock placeholder image. The seed
// is derived from the query hash so the same query always yields the same
// URL.
func PlaceholderURL(query string) string {
	sum := md5.Sum([]byte(query))
	seed, _ := strconv.ParseUint(hex.EncodeToString(sum[:])[:8], 16, 64)
	return fmt.Sprintf("https://picsum.photos/seed/%d/1200/600", seed%1000)
}

// defaultPlaceholderImages is the fixed set used when no photo search is
// possible at all.
func defaultPlaceholderImages() types.Images {
	return types.Images{
		Hero:  "https://images.unsplash.com/photo-1497366216548-37526070297c?w=1200&h=600&fit=crop",
		About: "https://images.unsplash.com/photo-1522071820081-009f0129c71c?w=1200&h=600&fit=crop",
		CTA:   "https://images.unsplash.com/photo-1551836022-deb4988cc6c0?w=1200&h=600&fit=crop",
		Services: []string{
			"https://images.unsplash.com/photo-1460925895917-afdab827c52f?w=800&h=600&fit=crop",
			"https://images.unsplash.com/photo-1553877522-43269d4ea984?w=800&h=600&fit=crop",
			"https://images.unsplash.com/photo-1519389950473-47ba0277781c?w=800&h=600&fit=crop",
		},
	}
}
