package web

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/comiccruncher/locg/internal/log"
	"github.com/comiccruncher/locg/locg"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Client is the retrieval surface the controllers consume.
type Client interface {
	FetchReleases(date interface{}, options *locg.FetchOptions) ([]locg.Comic, error)
	FetchPulls(userID int, date interface{}, options *locg.FetchOptions) ([]locg.Comic, error)
	FetchCollection(userID int, format locg.CollectionType, options *locg.FetchOptions) ([]locg.Comic, error)
	FetchWishList(userID int, format locg.CollectionType, options *locg.FetchOptions) ([]locg.Comic, error)
	FetchSearchResults(query string, format locg.CollectionType) ([]locg.Comic, error)
	FetchUser(name string) *locg.User
}

// ComicsController is the controller for the comic list endpoints.
type ComicsController struct {
	client Client
}

// Releases gets the comic releases for a week.
func (c ComicsController) Releases(ctx echo.Context) error {
	comics, err := c.client.FetchReleases(dateParam(ctx), decodeOptions(ctx))
	return respondComics(ctx, comics, err)
}

// Pulls gets a user's pull list for a week.
func (c ComicsController) Pulls(ctx echo.Context) error {
	userID, err := userIDParam(ctx)
	if err != nil {
		return JSONBadRequest(ctx, err.Error())
	}
	comics, err := c.client.FetchPulls(userID, dateParam(ctx), decodeOptions(ctx))
	return respondComics(ctx, comics, err)
}

// Collection gets a user's collection.
func (c ComicsController) Collection(ctx echo.Context) error {
	userID, err := userIDParam(ctx)
	if err != nil {
		return JSONBadRequest(ctx, err.Error())
	}
	comics, err := c.client.FetchCollection(userID, formatParam(ctx), decodeOptions(ctx))
	return respondComics(ctx, comics, err)
}

// WishList gets a user's wish list.
func (c ComicsController) WishList(ctx echo.Context) error {
	userID, err := userIDParam(ctx)
	if err != nil {
		return JSONBadRequest(ctx, err.Error())
	}
	comics, err := c.client.FetchWishList(userID, formatParam(ctx), decodeOptions(ctx))
	return respondComics(ctx, comics, err)
}

// Search gets search results with the `query` parameter.
func (c ComicsController) Search(ctx echo.Context) error {
	query := ctx.QueryParam("query")
	if query == "" {
		return JSONBadRequest(ctx, "the 'query' parameter is required")
	}
	comics, err := c.client.FetchSearchResults(query, formatParam(ctx))
	return respondComics(ctx, comics, err)
}

// UserController is the controller for user lookups.
type UserController struct {
	client Client
}

// User gets the details for a user name, or a not-found view when the user
// does not exist.
func (c UserController) User(ctx echo.Context) error {
	user := c.client.FetchUser(ctx.Param("name"))
	if user == nil {
		return JSONNotFound(ctx)
	}
	return JSONDetailViewOK(ctx, user)
}

// NewComicsController creates a new controller for the comic list endpoints.
func NewComicsController(client Client) *ComicsController {
	return &ComicsController{client: client}
}

// NewUserController creates a new controller for user lookups.
func NewUserController(client Client) *UserController {
	return &UserController{client: client}
}

// respondComics renders a comic list or maps the pipeline failure onto the
// right HTTP status. Validation failures are the caller's fault; everything
// else is upstream trouble.
func respondComics(ctx echo.Context, comics []locg.Comic, err error) error {
	if err != nil {
		if errors.Is(err, locg.ErrInvalidArgument) || errors.Is(err, locg.ErrOutOfRange) {
			return JSONBadRequest(ctx, err.Error())
		}
		log.WEB().Error("error fetching comics", zap.Error(err))
		return JSONServerError(ctx)
	}
	data := make([]interface{}, len(comics))
	for i, comic := range comics {
		data[i] = comic
	}
	return JSONListViewOK(ctx, data)
}

// dateParam reads the `date` parameter, defaulting to the current week.
func dateParam(ctx echo.Context) interface{} {
	if date := ctx.QueryParam("date"); date != "" {
		return date
	}
	return time.Now()
}

// userIDParam reads the required `user_id` parameter.
func userIDParam(ctx echo.Context) (int, error) {
	userID, err := strconv.Atoi(ctx.QueryParam("user_id"))
	if err != nil || userID <= 0 {
		return 0, fmt.Errorf("the 'user_id' parameter must be a positive integer")
	}
	return userID, nil
}

// formatParam reads the `format` parameter, defaulting to issues.
func formatParam(ctx echo.Context) locg.CollectionType {
	if format := ctx.QueryParam("format"); format != "" {
		return locg.CollectionType(format)
	}
	return locg.CollectionIssue
}

// decodeOptions assembles fetch options from the repeated `publisher` and
// `filter` parameters and the `sort` parameter. Values are validated by the
// pipeline itself, before any request goes out.
func decodeOptions(ctx echo.Context) *locg.FetchOptions {
	options := &locg.FetchOptions{}
	params := ctx.QueryParams()
	for _, p := range append(params["publisher"], params["publisher[]"]...) {
		if id, err := strconv.Atoi(p); err == nil {
			options.Publishers = append(options.Publishers, id)
		} else {
			options.Publishers = append(options.Publishers, p)
		}
	}
	for _, f := range append(params["filter"], params["filter[]"]...) {
		if value, err := strconv.Atoi(f); err == nil {
			options.Filter = append(options.Filter, locg.FilterType(value))
		} else {
			// Let the closed-set check name the offending element.
			options.Filter = append(options.Filter, locg.FilterType(-1))
		}
	}
	options.Sort = locg.SortType(ctx.QueryParam("sort"))
	return options
}
