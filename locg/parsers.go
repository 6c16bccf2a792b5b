package locg

import (
	"errors"
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/comiccruncher/locg/internal/stringutil"
	"github.com/microcosm-cc/bluemonday"
)

// The placeholder cover assets use a different naming convention than real
// cover images, so the medium->large substitution doesn't apply to them.
const noCoverMedium = "/assets/images/no-cover-med.jpg"

// The site's title template appends a fixed-length suffix to profile pages.
const profileTitleSuffixLen = 47

var (
	listItemMatcher         = cascadia.MustCompile("li")
	titleMatcher            = cascadia.MustCompile(".title.color-primary")
	issueCoverMatcher       = cascadia.MustCompile(".comic-cover-art img")
	issueDetailsMatcher     = cascadia.MustCompile(".comic-details")
	issueDescriptionMatcher = cascadia.MustCompile(".comic-description.col-feed-max")
	issuePriceMatcher       = cascadia.MustCompile(".price")
	anchorMatcher           = cascadia.MustCompile("a")
	seriesPublisherMatcher  = cascadia.MustCompile(".publisher.color-offset")
	seriesCoverMatcher      = cascadia.MustCompile(".cover img")
	seriesCoverLinkMatcher  = cascadia.MustCompile(".cover a")
	pageTitleMatcher        = cascadia.MustCompile("title")
	pullListBlockMatcher    = cascadia.MustCompile("#comic-list-block")
	avatarMatcher           = cascadia.MustCompile(".avatar-user.mr-3 a img")
)

// Descriptions are free text; strip any markup the fragment nests in them.
var descriptionPolicy = bluemonday.StrictPolicy()

// The extraction strategy for each collection type.
var extractors = map[CollectionType]func(*goquery.Selection) (Comic, error){
	CollectionIssue:  extractIssue,
	CollectionSeries: extractSeries,
}

// ExtractComics extracts one Comic per list-item fragment in the document,
// using the extraction strategy for the given collection type. Optional
// fields may be missing from a fragment without error; a fragment with no
// title element at all is malformed upstream markup and fails extraction.
func ExtractComics(doc *goquery.Document, mode CollectionType) ([]Comic, error) {
	extract, ok := extractors[mode]
	if !ok {
		extract = extractIssue
	}
	var comics []Comic
	var fragmentErr error
	doc.FindMatcher(listItemMatcher).EachWithBreak(func(i int, sel *goquery.Selection) bool {
		comic, err := extract(sel)
		if err != nil {
			fragmentErr = fmt.Errorf("fragment %d: %v", i, err)
			return false
		}
		comics = append(comics, comic)
		return true
	})
	if fragmentErr != nil {
		return nil, fragmentErr
	}
	return comics, nil
}

func extractIssue(sel *goquery.Selection) (Comic, error) {
	title := sel.FindMatcher(titleMatcher)
	if title.Length() == 0 {
		return Comic{}, errors.New("no title element")
	}

	description := sel.FindMatcher(issueDescriptionMatcher)
	// The anchor duplicates the title link; read its href for the URL, then
	// drop it so it doesn't leak into the free-text description.
	href, _ := description.FindMatcher(anchorMatcher).Attr("href")
	description.FindMatcher(anchorMatcher).Remove()

	return Comic{
		Name:        strings.TrimSpace(title.Text()),
		Publisher:   strings.TrimSpace(stringutil.Before(sel.FindMatcher(issueDetailsMatcher).Text(), "·")),
		URL:         BaseURL + href,
		Cover:       normalizeCover(coverAttr(sel.FindMatcher(issueCoverMatcher))),
		Description: descriptionText(description),
		Price:       strings.TrimSpace(sel.FindMatcher(issuePriceMatcher).Text()),
		Rating:      floatAttr(sel, "data-community"),
		Pulls:       intAttr(sel, "data-pulls"),
		POTW:        intAttr(sel, "data-potw"),
	}, nil
}

func extractSeries(sel *goquery.Selection) (Comic, error) {
	title := sel.FindMatcher(titleMatcher)
	if title.Length() == 0 {
		return Comic{}, errors.New("no title element")
	}
	href, _ := sel.FindMatcher(seriesCoverLinkMatcher).Attr("href")
	return Comic{
		Name:      strings.TrimSpace(title.Text()),
		Publisher: strings.TrimSpace(sel.FindMatcher(seriesPublisherMatcher).Text()),
		URL:       BaseURL + href,
		Cover:     coverAttr(sel.FindMatcher(seriesCoverMatcher)),
	}, nil
}

// ExtractUser extracts user identity fields from a profile page document.
// A document without the pull-list block means the user does not exist and
// yields nil.
func ExtractUser(doc *goquery.Document, url string) *User {
	block := doc.FindMatcher(pullListBlockMatcher).First()
	if block.Length() == 0 {
		return nil
	}
	id, err := strconv.Atoi(block.AttrOr("data-user", ""))
	if err != nil || id <= 0 {
		return nil
	}

	name := doc.FindMatcher(pageTitleMatcher).Text()
	if len(name) > profileTitleSuffixLen {
		name = name[:len(name)-profileTitleSuffixLen]
	}

	avatar, ok := doc.FindMatcher(avatarMatcher).Attr("src")
	if !ok || avatar == "" {
		avatar = DefaultAvatar
	}

	return &User{
		ID:     id,
		Name:   name,
		URL:    url,
		Avatar: avatar,
	}
}

// coverAttr reads the lazy-load image source and applies the medium->large
// substitution.
func coverAttr(img *goquery.Selection) string {
	src, _ := img.Attr("data-src")
	return strings.Replace(src, "medium", "large", 1)
}

func normalizeCover(cover string) string {
	if cover == noCoverMedium {
		return BaseURL + strings.Replace(cover, "-med", "-lg", 1)
	}
	return cover
}

func descriptionText(description *goquery.Selection) string {
	raw, err := goquery.OuterHtml(description)
	if err != nil || raw == "" {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(descriptionPolicy.Sanitize(raw)))
}

func intAttr(sel *goquery.Selection, name string) *int {
	v, ok := sel.Attr(name)
	if !ok || v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil
	}
	return &n
}

func floatAttr(sel *goquery.Selection, name string) *float64 {
	v, ok := sel.Attr(name)
	if !ok || v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil
	}
	return &f
}
