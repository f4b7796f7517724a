// Package web is the small framework layer every handler in this project is
// written against. Handlers return an error so middleware can observe the
// outcome; responding to the client is the handler's job via Context.
package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler is the signature all application handlers implement.
type Handler func(c *Context) error

// Middleware wraps a Handler with additional behavior.
type Middleware func(Handler) Handler

// App wraps the gin engine so routes can be registered with Handler and
// Middleware instead of gin.HandlerFunc.
type App struct {
	*gin.Engine
}

func NewApp() *App {
	return &App{Engine: gin.New()}
}

// wrapMiddleware builds the onion: the first middleware in the list is the
// outermost one.
func wrapMiddleware(mw []Middleware, handler Handler) Handler {
	for i := len(mw) - 1; i >= 0; i-- {
		if mw[i] != nil {
			handler = mw[i](handler)
		}
	}
	return handler
}

func (a *App) handle(method, path string, handler Handler, mw ...Middleware) {
	handler = wrapMiddleware(mw, handler)

	a.Handle(method, path, func(c *gin.Context) {
		ctx := &Context{Context: c, Ctx: c.Request.Context()}

		// Handlers respond before returning; the error value is for
		// middleware and request logging.
		_ = handler(ctx)
	})
}

func (a *App) Get(path string, handler Handler, mw ...Middleware) {
	a.handle(http.MethodGet, path, handler, mw...)
}

func (a *App) Post(path string, handler Handler, mw ...Middleware) {
	a.handle(http.MethodPost, path, handler, mw...)
}

func (a *App) Put(path string, handler Handler, mw ...Middleware) {
	a.handle(http.MethodPut, path, handler, mw...)
}

func (a *App) Patch(path string, handler Handler, mw ...Middleware) {
	a.handle(http.MethodPatch, path, handler, mw...)
}

func (a *App) Delete(path string, handler Handler, mw ...Middleware) {
	a.handle(http.MethodDelete, path, handler, mw...)
}
