package locg

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/comiccruncher/locg/internal/log"
	"go.uber.org/zap"
)

// BaseURL is the base url for League of Comic Geeks.
const BaseURL = "https://leagueofcomicgeeks.com"

// DefaultAvatar is substituted when a profile carries no avatar image.
const DefaultAvatar = BaseURL + "/assets/images/profile-photo-default-large.jpg"

const comicsURL = BaseURL + "/comic/get_comics"
const profileURL = BaseURL + "/profile"

// listEnvelope is the JSON envelope around a rendered comic list fragment.
type listEnvelope struct {
	List string `json:"list"`
}

// API is the client to communicate with League of Comic Geeks. Every call is
// independent: one outbound fetch, one extraction pass, no state shared
// between calls, so callers may use one API from any number of goroutines.
type API struct {
	httpClient      *http.Client
	ComicsEndpoint  string // Define the comics endpoint. Overridable for testing.
	ProfileEndpoint string // Define the profile endpoint. Overridable for testing.
	logger          *zap.Logger
}

// NewAPI creates a new League of Comic Geeks client. Timeout, cancellation,
// and retry policy belong to the given http.Client (see RetryRoundTripper);
// the pipeline itself never retries.
func NewAPI(httpClient *http.Client) *API {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &API{
		httpClient:      httpClient,
		ComicsEndpoint:  comicsURL,
		ProfileEndpoint: profileURL,
		logger:          log.LOCG(),
	}
}

// FetchReleases fetches the comic releases for a specified week.
// The date is either a time.Time or a string in YYYY-MM-DD format.
func (a *API) FetchReleases(date interface{}, options *FetchOptions) ([]Comic, error) {
	resolved, err := ResolveDate(date)
	if err != nil {
		return nil, err
	}
	params := &RequestParameters{}
	params.Set("list", "releases")
	params.Set("list_option", "thumbs")
	params.Set("view", "list")
	params.Set("date", resolved)
	params.Set("date_type", "week")
	return a.fetchComics(params, options, CollectionIssue)
}

// FetchPulls fetches a user's pull list for a specified week.
func (a *API) FetchPulls(userID int, date interface{}, options *FetchOptions) ([]Comic, error) {
	resolved, err := ResolveDate(date)
	if err != nil {
		return nil, err
	}
	params := &RequestParameters{}
	params.SetInt("list", 1)
	params.Set("list_option", "thumbs")
	params.Set("view", "list")
	params.SetInt("user_id", userID)
	params.Set("date", resolved)
	params.Set("date_type", "week")
	return a.fetchComics(params, options, CollectionIssue)
}

// FetchCollection fetches a user's collection, in either issue or series
// format. An empty format defaults to issues.
func (a *API) FetchCollection(userID int, format CollectionType, options *FetchOptions) ([]Comic, error) {
	return a.fetchUserList(2, userID, format, options)
}

// FetchWishList fetches a user's wish list, in either issue or series format.
// An empty format defaults to issues.
func (a *API) FetchWishList(userID int, format CollectionType, options *FetchOptions) ([]Comic, error) {
	return a.fetchUserList(3, userID, format, options)
}

// FetchSearchResults fetches search results for a query. The upstream search
// endpoint renders series markup for both formats, so results always carry
// series fields only.
func (a *API) FetchSearchResults(query string, format CollectionType) ([]Comic, error) {
	if format == "" {
		format = CollectionIssue
	}
	params := &RequestParameters{}
	params.Set("list", "search")
	params.Set("title", query)
	params.Set("list_option", string(format))
	return a.fetchData(params, CollectionSeries)
}

// FetchUser fetches user details for a user name, if they exist. Any failure
// along the way - network, bad status, parse, or a page without a pull-list
// block - means the user cannot be confirmed to exist and yields nil.
func (a *API) FetchUser(name string) *User {
	url := a.ProfileEndpoint + "/" + strings.ToLower(name) + "/pull-list"
	response, err := a.httpClient.Get(url)
	if err != nil {
		a.logger.Debug("could not fetch profile page", zap.String("url", url), zap.Error(err))
		return nil
	}
	defer response.Body.Close()
	if response.StatusCode != http.StatusOK && response.StatusCode != http.StatusNotModified {
		a.logger.Debug("got bad status code for profile page", zap.String("url", url), zap.Int("status", response.StatusCode))
		return nil
	}
	doc, err := goquery.NewDocumentFromReader(response.Body)
	if err != nil {
		a.logger.Debug("could not parse profile page", zap.String("url", url), zap.Error(err))
		return nil
	}
	return ExtractUser(doc, url)
}

// The shared shape of the collection and wish list requests.
func (a *API) fetchUserList(list int, userID int, format CollectionType, options *FetchOptions) ([]Comic, error) {
	if format == "" {
		format = CollectionIssue
	}
	view := "thumbs"
	if format == CollectionIssue {
		view = "list"
	}
	params := &RequestParameters{}
	params.SetInt("list", list)
	params.Set("list_option", string(format))
	params.Set("view", view)
	params.SetInt("user_id", userID)
	return a.fetchComics(params, options, format)
}

// fetchComics validates and applies the fetch options, performs the fetch,
// and sorts the extracted comics. Validation happens before any I/O.
func (a *API) fetchComics(params *RequestParameters, options *FetchOptions, mode CollectionType) ([]Comic, error) {
	if options != nil {
		if options.Publishers != nil {
			ids, err := ResolvePublishers(options.Publishers)
			if err != nil {
				return nil, err
			}
			values := make([]string, len(ids))
			for i, id := range ids {
				values[i] = strconv.Itoa(id)
			}
			params.SetList("publisher", values...)
		}
		if options.Filter != nil {
			if err := ValidateFilter(options.Filter); err != nil {
				return nil, err
			}
			values := make([]string, len(options.Filter))
			for i, f := range options.Filter {
				values[i] = strconv.Itoa(int(f))
			}
			params.SetList("format", values...)
		}
		if options.Sort != "" {
			if err := ValidateSort(options.Sort); err != nil {
				return nil, err
			}
		}
	}

	comics, err := a.fetchData(params, mode)
	if err != nil {
		return nil, err
	}
	if options != nil && options.Sort != "" {
		return SortComics(comics, options.Sort), nil
	}
	return comics, nil
}

// fetchData performs the single outbound fetch and extracts one comic per
// list fragment in the response.
func (a *API) fetchData(params *RequestParameters, mode CollectionType) ([]Comic, error) {
	url := a.ComicsEndpoint + params.Encode()
	request, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	response, err := a.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer response.Body.Close()
	if response.StatusCode != http.StatusOK && response.StatusCode != http.StatusNotModified {
		return nil, fmt.Errorf("%w: got bad status code from %s: %d", ErrUpstream, url, response.StatusCode)
	}
	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	var envelope listEnvelope
	if err = json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(envelope.List))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	comics, err := ExtractComics(doc, mode)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	return comics, nil
}
