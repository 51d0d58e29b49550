package handlers

import (
	"net/http"
	"os"
	"path"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-exercise-tracker/internal/apperr"
)

// ErrRouteNotFound is reported for requests that match no route or asset.
var ErrRouteNotFound = apperr.NotFound(http.StatusNotFound, "Not Found")

// Index serves the front-end document at indexPath.
func Index(indexPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !isFile(indexPath) {
			fail(c, ErrRouteNotFound)
			return
		}
		c.File(indexPath)
	}
}

// NotFound serves GET and HEAD requests from dir when the cleaned path names a
// regular file inside it; everything else is ErrRouteNotFound.
func NotFound(dir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if dir != "" && (c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead) {
			// path.Clean on a rooted path drops any "..", so the result stays under dir.
			rel := path.Clean("/" + c.Request.URL.Path)
			if rel != "/" {
				p := filepath.Join(dir, filepath.FromSlash(rel))
				if isFile(p) {
					c.File(p)
					return
				}
			}
		}
		fail(c, ErrRouteNotFound)
	}
}

func isFile(p string) bool {
	fi, err := os.Stat(p)
	return err == nil && fi.Mode().IsRegular()
}
