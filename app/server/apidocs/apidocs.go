package apidocs

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"path"
	"slices"

	"github.com/labstack/echo/v4"
)

type Opts func(*config)

// configures the Doc middlewares
type config struct {
	// SpecURL the url to find the spec for
	SpecURL string
	// When this return value is false, 403 will be responsed.
	Authorizer func(*http.Request) bool
}

// withAuthorizer restricts access to the documentation pages.
func withAuthorizer(authorizer func(*http.Request) bool) Opts {
	return func(cfg *config) {
		cfg.Authorizer = authorizer
	}
}

func renderPage(cfg *config) (string, error) {
	tmpl, err := template.New("apidoc").Parse(pageTemplate)
	if err != nil {
		return "", fmt.Errorf("parse page template: %w", err)
	}

	buf := bytes.NewBuffer(nil)
	if err = tmpl.Execute(buf, cfg); err != nil {
		return "", fmt.Errorf("render page template: %w", err)
	}

	return buf.String(), nil
}

// Doc creates a middleware serving a documentation site for an OpenAPI document
// under basePath: basePath redirects to basePath/apidocs, and the JSON document
// is served at basePath/apispec.json.
func Doc(basePath string, apiJSON []byte, opts ...Opts) (echo.MiddlewareFunc, error) {
	cfg := &config{
		SpecURL: path.Join(basePath, "apispec.json"),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	docPath := path.Join(basePath, "apidocs")
	uiHTML, err := renderPage(cfg)
	if err != nil {
		return nil, err
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			reqPath := c.Request().URL.Path
			if slices.Contains([]string{basePath, docPath, cfg.SpecURL}, reqPath) {
				if cfg.Authorizer != nil && !cfg.Authorizer(c.Request()) {
					return c.String(http.StatusForbidden, "Forbidden")
				}

				switch reqPath {
				case docPath:
					return c.HTML(http.StatusOK, uiHTML)
				case cfg.SpecURL:
					return c.JSONBlob(http.StatusOK, apiJSON)
				case basePath:
					return c.Redirect(http.StatusFound, docPath)
				}
			}

			if next == nil {
				return c.String(http.StatusNotFound, fmt.Sprintf("%q not found", reqPath))
			}

			return next(c)
		}
	}, nil
}

const pageTemplate = `
<!DOCTYPE html>
<html lang="en">
  <head>
    <title>Contact Manager API</title>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1" />
  </head>

  <body>
    <script id="api-reference" data-url="{{ .SpecURL }}"></script>

    <script src="https://cdnjs.cloudflare.com/ajax/libs/scalar-api-reference/1.25.99/standalone.min.js" integrity="sha512-ai3lOYZ5efNXMYwnqhz0mnCaImbqfwLE1VCx9Y9nhB3OJX4/uegjIAoQtJHy3SILHp/gS1OlPCIeNFPZT5i2WQ==" crossorigin="anonymous" referrerpolicy="no-referrer"></script>
  </body>
</html>`
