package locg_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/comiccruncher/locg/locg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeListEnvelope writes the given testdata fragment wrapped in the JSON
// envelope the comics endpoint responds with.
func writeListEnvelope(t *testing.T, w http.ResponseWriter, name string) {
	t.Helper()
	fragment, err := os.ReadFile(filepath.Join("testdata", name))
	require.Nil(t, err)
	body, err := json.Marshal(map[string]string{"list": string(fragment)})
	require.Nil(t, err)
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

func newTestAPI(t *testing.T, handler http.HandlerFunc) (*locg.API, *httptest.Server) {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	api := locg.NewAPI(ts.Client())
	api.ComicsEndpoint = ts.URL
	api.ProfileEndpoint = ts.URL
	return api, ts
}

func TestAPI_FetchReleases(t *testing.T) {
	var gotQuery string
	api, _ := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		writeListEnvelope(t, w, "issues.html")
	})

	comics, err := api.FetchReleases("2024-03-06", nil)
	assert.Nil(t, err)
	assert.Len(t, comics, 3)
	assert.Equal(t, "list=releases&list_option=thumbs&view=list&date=2024-03-06&date_type=week", gotQuery)
}

func TestAPI_FetchReleasesWithOptions(t *testing.T) {
	var gotQuery string
	api, _ := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		writeListEnvelope(t, w, "issues.html")
	})

	comics, err := api.FetchReleases("2024-03-06", &locg.FetchOptions{
		Publishers: []interface{}{"DC Comics", 7},
		Filter:     []locg.FilterType{locg.FilterRegular, locg.FilterDigital},
		Sort:       locg.SortAlphaAsc,
	})
	require.Nil(t, err)
	assert.Equal(
		t,
		"list=releases&list_option=thumbs&view=list&date=2024-03-06&date_type=week&publisher[]=1&publisher[]=7&format[]=1&format[]=5",
		gotQuery)
	require.Len(t, comics, 3)
	assert.Equal(t, "Back Alley #1", comics[0].Name)
	assert.Equal(t, "Batman #140", comics[1].Name)
	assert.Equal(t, "Saga #62", comics[2].Name)
}

func TestAPI_FetchReleasesFailsFast(t *testing.T) {
	requests := 0
	api, _ := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
	})

	_, err := api.FetchReleases("03-06-2024", nil)
	assert.ErrorIs(t, err, locg.ErrInvalidArgument)

	_, err = api.FetchReleases("2024-03-06", &locg.FetchOptions{Sort: locg.SortType("nope")})
	assert.ErrorIs(t, err, locg.ErrOutOfRange)

	_, err = api.FetchReleases("2024-03-06", &locg.FetchOptions{Filter: []locg.FilterType{7}})
	assert.ErrorIs(t, err, locg.ErrOutOfRange)

	_, err = api.FetchReleases("2024-03-06", &locg.FetchOptions{Publishers: []interface{}{"Bogus Comics"}})
	assert.ErrorIs(t, err, locg.ErrInvalidArgument)

	// Validation failures never reach the wire.
	assert.Equal(t, 0, requests)
}

func TestAPI_FetchReleasesBadStatus(t *testing.T) {
	api, _ := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	_, err := api.FetchReleases("2024-03-06", nil)
	assert.ErrorIs(t, err, locg.ErrUpstream)
}

func TestAPI_FetchReleasesMalformedEnvelope(t *testing.T) {
	api, _ := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	})
	_, err := api.FetchReleases("2024-03-06", nil)
	assert.ErrorIs(t, err, locg.ErrUpstream)
}

func TestAPI_FetchPulls(t *testing.T) {
	var gotQuery string
	api, _ := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		writeListEnvelope(t, w, "issues.html")
	})

	comics, err := api.FetchPulls(122444, "2024-03-06", nil)
	assert.Nil(t, err)
	assert.Len(t, comics, 3)
	assert.Equal(t, "list=1&list_option=thumbs&view=list&user_id=122444&date=2024-03-06&date_type=week", gotQuery)
}

func TestAPI_FetchCollectionDefaultsToIssues(t *testing.T) {
	var gotQuery string
	api, _ := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		writeListEnvelope(t, w, "issues.html")
	})

	comics, err := api.FetchCollection(122444, "", nil)
	assert.Nil(t, err)
	assert.Len(t, comics, 3)
	assert.Equal(t, "list=2&list_option=issue&view=list&user_id=122444", gotQuery)
}

func TestAPI_FetchCollectionSeries(t *testing.T) {
	var gotQuery string
	api, _ := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		writeListEnvelope(t, w, "series.html")
	})

	comics, err := api.FetchCollection(122444, locg.CollectionSeries, nil)
	require.Nil(t, err)
	assert.Equal(t, "list=2&list_option=series&view=thumbs&user_id=122444", gotQuery)
	require.Len(t, comics, 2)
	assert.Equal(t, "Saga", comics[0].Name)
	assert.Equal(t, "Image Comics", comics[0].Publisher)
}

func TestAPI_FetchWishList(t *testing.T) {
	var gotQuery string
	api, _ := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		writeListEnvelope(t, w, "issues.html")
	})

	_, err := api.FetchWishList(122444, locg.CollectionIssue, nil)
	assert.Nil(t, err)
	assert.Equal(t, "list=3&list_option=issue&view=list&user_id=122444", gotQuery)
}

func TestAPI_FetchSearchResults(t *testing.T) {
	var gotQuery string
	api, _ := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		writeListEnvelope(t, w, "series.html")
	})

	// The search endpoint renders series markup regardless of the format.
	comics, err := api.FetchSearchResults("saga", locg.CollectionIssue)
	require.Nil(t, err)
	assert.Equal(t, "list=search&title=saga&list_option=issue", gotQuery)
	require.Len(t, comics, 2)
	assert.Equal(t, "Saga", comics[0].Name)
	assert.Nil(t, comics[0].Rating)
}

func TestAPI_FetchUser(t *testing.T) {
	var gotPath string
	api, ts := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		page, err := os.ReadFile(filepath.Join("testdata", "profile.html"))
		require.Nil(t, err)
		w.Write(page)
	})

	user := api.FetchUser("Maruf99")
	require.NotNil(t, user)
	assert.Equal(t, "/maruf99/pull-list", gotPath)
	assert.Equal(t, 122444, user.ID)
	assert.Equal(t, "maruf99", user.Name)
	assert.Equal(t, ts.URL+"/maruf99/pull-list", user.URL)
	assert.Equal(t, "https://s3.amazonaws.com/comicgeeks/users/avatars/122444.jpg", user.Avatar)
}

func TestAPI_FetchUserNotFound(t *testing.T) {
	api, _ := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	assert.Nil(t, api.FetchUser("nobody"))
}

func TestAPI_FetchUserMissingPullListBlock(t *testing.T) {
	api, _ := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body><h1>Page</h1></body></html>"))
	})
	assert.Nil(t, api.FetchUser("nobody"))
}
