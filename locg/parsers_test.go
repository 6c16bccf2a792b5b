package locg_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/comiccruncher/locg/locg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadDoc(t *testing.T, name string) *goquery.Document {
	t.Helper()
	file, err := os.Open(filepath.Join("testdata", name))
	require.Nil(t, err)
	defer file.Close()
	doc, err := goquery.NewDocumentFromReader(file)
	require.Nil(t, err)
	return doc
}

func docFromString(t *testing.T, markup string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	require.Nil(t, err)
	return doc
}

func TestExtractComicsIssueMode(t *testing.T) {
	comics, err := locg.ExtractComics(loadDoc(t, "issues.html"), locg.CollectionIssue)
	require.Nil(t, err)
	require.Len(t, comics, 3)

	batman := comics[0]
	assert.Equal(t, "Batman #140", batman.Name)
	assert.Equal(t, "DC Comics", batman.Publisher)
	assert.Equal(t, locg.BaseURL+"/comic/3616996/batman-140", batman.URL)
	assert.Equal(t, "https://s3.amazonaws.com/comicgeeks/comics/covers/large-3616996.jpg", batman.Cover)
	assert.Equal(t, "The Joker's master plan comes together as Zur-En-Arrh takes hold of the Dark Knight.", batman.Description)
	assert.Equal(t, "$4.99", batman.Price)
	require.NotNil(t, batman.Rating)
	assert.Equal(t, float64(92), *batman.Rating)
	require.NotNil(t, batman.Pulls)
	assert.Equal(t, 8423, *batman.Pulls)
	require.NotNil(t, batman.POTW)
	assert.Equal(t, 1, *batman.POTW)
}

func TestExtractComicsPlaceholderCover(t *testing.T) {
	comics, err := locg.ExtractComics(loadDoc(t, "issues.html"), locg.CollectionIssue)
	require.Nil(t, err)
	require.Len(t, comics, 3)

	// The placeholder asset family doesn't follow the medium/large naming, so
	// it swaps -med for -lg instead.
	assert.Equal(t, locg.BaseURL+"/assets/images/no-cover-lg.jpg", comics[1].Cover)
	// A regular cover gets the straightforward substitution.
	assert.Contains(t, comics[0].Cover, "large-")
}

func TestExtractComicsOptionalFieldsAbsent(t *testing.T) {
	comics, err := locg.ExtractComics(loadDoc(t, "issues.html"), locg.CollectionIssue)
	require.Nil(t, err)
	require.Len(t, comics, 3)

	alley := comics[1]
	assert.Equal(t, "Back Alley #1", alley.Name)
	assert.Equal(t, "", alley.Publisher)
	assert.Equal(t, "", alley.Price)
	assert.Nil(t, alley.Rating)
	assert.Nil(t, alley.Pulls)
	assert.Nil(t, alley.POTW)
}

func TestExtractComicsAbsentIsNotZero(t *testing.T) {
	comics, err := locg.ExtractComics(loadDoc(t, "issues.html"), locg.CollectionIssue)
	require.Nil(t, err)
	require.Len(t, comics, 3)

	saga := comics[2]
	// data-pulls="0" is a real zero, data-potw="" is absent.
	require.NotNil(t, saga.Pulls)
	assert.Equal(t, 0, *saga.Pulls)
	assert.Nil(t, saga.POTW)
	require.NotNil(t, saga.Rating)
	assert.Equal(t, 78.5, *saga.Rating)
	assert.Equal(t, "Hazel and her family return.Part two of BROKEN & BEATEN.", saga.Description)
}

func TestExtractComicsSeriesMode(t *testing.T) {
	comics, err := locg.ExtractComics(loadDoc(t, "series.html"), locg.CollectionSeries)
	require.Nil(t, err)
	require.Len(t, comics, 2)

	saga := comics[0]
	assert.Equal(t, "Saga", saga.Name)
	assert.Equal(t, "Image Comics", saga.Publisher)
	assert.Equal(t, locg.BaseURL+"/comics/series/148069/saga", saga.URL)
	assert.Equal(t, "https://s3.amazonaws.com/comicgeeks/series/covers/large-148069.jpg", saga.Cover)
	// Series fragments never carry issue metrics.
	assert.Equal(t, "", saga.Price)
	assert.Nil(t, saga.Rating)
	assert.Nil(t, saga.Pulls)
	assert.Nil(t, saga.POTW)
}

func TestExtractComicsMissingTitleFails(t *testing.T) {
	doc := docFromString(t, `<ul><li><div class="price">$4.99</div></li></ul>`)
	_, err := locg.ExtractComics(doc, locg.CollectionIssue)
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "fragment 0")
}

func TestExtractUser(t *testing.T) {
	url := locg.BaseURL + "/profile/maruf99/pull-list"
	user := locg.ExtractUser(loadDoc(t, "profile.html"), url)
	require.NotNil(t, user)
	assert.Equal(t, 122444, user.ID)
	assert.Equal(t, "maruf99", user.Name)
	assert.Equal(t, url, user.URL)
	assert.Equal(t, "https://s3.amazonaws.com/comicgeeks/users/avatars/122444.jpg", user.Avatar)
}

func TestExtractUserDefaultAvatar(t *testing.T) {
	doc := docFromString(t, `<html><head><title>x</title></head><body><div id="comic-list-block" data-user="42"></div></body></html>`)
	user := locg.ExtractUser(doc, "url")
	require.NotNil(t, user)
	assert.Equal(t, 42, user.ID)
	assert.Equal(t, locg.DefaultAvatar, user.Avatar)
}

func TestExtractUserMissingBlock(t *testing.T) {
	doc := docFromString(t, `<html><body><p>This user does not exist.</p></body></html>`)
	assert.Nil(t, locg.ExtractUser(doc, "url"))
}

func TestExtractUserBadID(t *testing.T) {
	doc := docFromString(t, `<html><body><div id="comic-list-block" data-user="not-a-number"></div></body></html>`)
	assert.Nil(t, locg.ExtractUser(doc, "url"))
}
