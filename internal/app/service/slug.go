package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

type SlugRepository interface {
	SlugExists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error)
}

var (
	slugStrip    = regexp.MustCompile(`[^\w\s-]`)
	slugCollapse = regexp.MustCompile(`[\s_-]+`)
)

// SlugAllocator выдаёт URL-безопасные идентификаторы, уникальные среди неудалённых карточек
type SlugAllocator struct {
	repo SlugRepository
}

func NewSlugAllocator(repo SlugRepository) *SlugAllocator {
	return &SlugAllocator{repo: repo}
}

// Slugify: "Café  Tax_Help!" -> "cafe-tax-help". Пустой результат заменяется
// на specialist-<8 hex>
func Slugify(title string) string {
	folded, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), title)
	if err != nil {
		folded = title
	}

	slug := strings.TrimSpace(strings.ToLower(folded))
	slug = slugStrip.ReplaceAllString(slug, "")
	slug = slugCollapse.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")

	if slug == "" {
		return "specialist-" + uuid.NewString()[:8]
	}
	return slug
}

// Allocate подбирает свободный slug: base, base-1, base-2, ...
// excludeID: карточка, чей текущий slug не считается занятым
func (a *SlugAllocator) Allocate(ctx context.Context, base string, excludeID uuid.UUID) (string, error) {
	slug := base
	for counter := 1; ; counter++ {
		taken, err := a.repo.SlugExists(ctx, slug, excludeID)
		if err != nil {
			return "", err
		}
		if !taken {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, counter)
	}
}
