// Package view renders the server-side HTML pages.  Every page is wrapped
// in a shared layout template; pages are parsed once at startup from the
// embedded filesystem and looked up by name at render time through Echo's
// Renderer interface.
package view

import (
    "embed"
    "fmt"
    "html/template"
    "io"

    "github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

// pageNames lists the renderable pages.  Each corresponds to
// templates/<name>.html and defines a "content" block the layout includes.
var pageNames = []string{
    "intro",
    "login",
    "bookForm",
    "adminBookings",
    "userBookings",
    "editBooking",
}

// Renderer implements echo.Renderer over the embedded templates.
type Renderer struct {
    pages map[string]*template.Template
}

// New parses the layout and every page template.  Each page gets its own
// clone of the layout so "content" definitions do not collide.
func New() (*Renderer, error) {
    layout, err := template.ParseFS(templateFS, "templates/layout.html")
    if err != nil {
        return nil, fmt.Errorf("parse layout: %w", err)
    }
    pages := make(map[string]*template.Template, len(pageNames))
    for _, name := range pageNames {
        t, err := layout.Clone()
        if err != nil {
            return nil, fmt.Errorf("clone layout for %s: %w", name, err)
        }
        t, err = t.ParseFS(templateFS, "templates/"+name+".html")
        if err != nil {
            return nil, fmt.Errorf("parse page %s: %w", name, err)
        }
        pages[name] = t
    }
    return &Renderer{pages: pages}, nil
}

// Render writes the named page wrapped in the layout.  Unknown names are a
// programming error and reported as such.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
    t, ok := r.pages[name]
    if !ok {
        return fmt.Errorf("unknown template %q", name)
    }
    return t.ExecuteTemplate(w, "layout.html", data)
}
