package web

import (
	"context"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// App is the struct for the web app with echo and the controllers.
type App struct {
	echo       *echo.Echo
	comicsCtlr *ComicsController
	userCtlr   *UserController
}

// Run runs the web application from the specified port. Returns on the first
// server error.
func (a App) Run(port string) error {
	e := a.echo
	e.Use(middleware.Recover())

	allowedOrigins := []string{"*"}
	if os.Getenv("LOCG_ENVIRONMENT") == "production" {
		allowedOrigins = []string{"https://comiccruncher.com"}
	}
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowHeaders: []string{
			echo.HeaderOrigin,
			echo.HeaderContentType,
			echo.HeaderAccept,
		},
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"HEAD", "GET", "OPTIONS"},
		MaxAge:       86400,
	}))

	e.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "SAMEORIGIN",
		HSTSMaxAge:         31536000,
	}))

	// Comic lists
	e.GET("/releases", a.comicsCtlr.Releases)
	e.GET("/pulls", a.comicsCtlr.Pulls)
	e.GET("/collection", a.comicsCtlr.Collection)
	e.GET("/wishlist", a.comicsCtlr.WishList)
	e.GET("/search", a.comicsCtlr.Search)

	// Users
	e.GET("/users/:name", a.userCtlr.User)

	// Start the server.
	return e.Start(":" + port)
}

// Close closes the app server.
func (a *App) Close() error {
	return a.echo.Close()
}

// Shutdown gracefully shuts down the application.
func (a *App) Shutdown(ctx context.Context) error {
	return a.echo.Shutdown(ctx)
}

// NewApp creates a new app over the given retrieval client.
func NewApp(client Client) *App {
	return &App{
		echo:       echo.New(),
		comicsCtlr: NewComicsController(client),
		userCtlr:   NewUserController(client),
	}
}
