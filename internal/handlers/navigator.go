package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Navigator transfers control to another view on a success path. It is an
// injected collaborator rather than a call buried in the handler so tests can
// observe the transfer.
type Navigator interface {
	Redirect(c *gin.Context, location string)
}

// redirectNavigator issues a 303 See Other, the terminal control transfer for
// a browser form POST: the client re-requests the target with GET.
type redirectNavigator struct{}

// NewRedirectNavigator creates the production Navigator.
func NewRedirectNavigator() Navigator {
	return redirectNavigator{}
}

func (redirectNavigator) Redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusSeeOther, location)
}
