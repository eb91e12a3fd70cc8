package web

import (
	"html/template"
	"net/http"
	"regexp"
	"strings"

	"github.com/newsner/newsner/config"
	"github.com/newsner/newsner/internal"
)

var log = internal.GetLogger()

var LayoutTemplates = []string{
	"templates/pages/index.html",
	"templates/components/layout/*.html",
	"templates/components/content/*.html",
}

const defaultPartial = "Content"

func NewPage(
	title, subTitle, path string,
	templates []string,
	data interface{},
) *Page {
	return &Page{
		AppTitle:   AppTitle,
		Title:      title,
		SubTitle:   subTitle,
		MenuItems:  menuItems,
		QuickLinks: quickLinks,
		Templates:  templates,
		Path:       path,
		Slug:       slugify(title),
		Version:    config.VersionString,
		Data:       data,
	}
}

type Page struct {
	AppTitle   string
	Title      string
	SubTitle   string
	MenuItems  []MenuItem
	QuickLinks []ExternalPage
	Templates  []string
	Path       string
	Slug       string
	Version    string
	// Partial is the template rendered for htmx requests. Defaults to "Content".
	Partial string
	Data    interface{}
}

// WithPartial sets the template rendered when the page is requested by htmx.
func (p *Page) WithPartial(name string) *Page {
	p.Partial = name
	return p
}

func (p *Page) Render(w http.ResponseWriter, r *http.Request) {
	// If HX-Request header is set, render content template only
	// If the page was loaded directly, render full layout
	if r.Header.Get("HX-Request") == "true" {
		p.renderPartial(w)
	} else {
		p.renderFull(w)
	}
}

func (p *Page) renderPartial(w http.ResponseWriter) {
	templates := append([]string{"templates/components/content/*.html"}, p.Templates...)

	tmpl, err := template.New(p.Title).Funcs(templateFuncs()).ParseFS(
		TemplatesFS,
		templates...,
	)
	if err != nil {
		log.Errorf("Failed to parse template: %s", err)
		http.Error(w, "Failed to parse template", http.StatusInternalServerError)
		return
	}

	partial := p.Partial
	if partial == "" {
		partial = defaultPartial
		if p.Path != "" {
			w.Header().Set("HX-Push", p.Path)
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	// Render template content only
	err = tmpl.ExecuteTemplate(w, partial, p)
	if err != nil {
		log.Errorf("Failed to execute template: %s", err)
		http.Error(w, "Failed to execute template", http.StatusInternalServerError)
		return
	}
}

func (p *Page) renderFull(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	templates := append(LayoutTemplates, p.Templates...) //nolint:gocritic

	tmpl, err := template.New(p.Title).Funcs(templateFuncs()).ParseFS(
		TemplatesFS,
		templates...,
	)
	if err != nil {
		log.Errorf("Failed to parse template: %s", err)
		http.Error(w, "Failed to parse template", http.StatusInternalServerError)
		return
	}

	// Render full layout
	err = tmpl.ExecuteTemplate(w, "Layout", p)
	if err != nil {
		log.Errorf("Failed to execute template: %s", err)
		http.Error(w, "Failed to execute template", http.StatusInternalServerError)
		return
	}
}

// slugify converts a string to an alpha-only lowercase string
func slugify(s string) string {
	reg := regexp.MustCompile("[^a-zA-Z]+")
	processedString := reg.ReplaceAllString(s, "")
	return strings.ToLower(processedString)
}
