package view

import (
	"bytes"
	"html/template"
	"io/fs"
	"tasktracker/shared/timezone"
	"tasktracker/web"
	"time"

	"github.com/pkg/errors"
)

const (
	PageTaskList          = "task_list.html"
	PageTaskForm          = "task_form.html"
	PageTaskConfirmDelete = "task_confirm_delete.html"
	PageError             = "error.html"

	layoutName     = "base"
	layoutFile     = "base.html"
	templatesDir   = "templates/"
	timestampShown = "02/01/2006 15:04"
)

var pages = []string{PageTaskList, PageTaskForm, PageTaskConfirmDelete, PageError}

var ErrUnknownPage = errors.New("unknown page")

// Renderer turns a named page and its data into a complete HTML document.
type Renderer interface {
	Render(page string, data any) ([]byte, error)
}

type renderer struct {
	pages map[string]*template.Template
}

// New parses every page against the shared layout from the embedded templates.
func New() (Renderer, error) {
	return NewFromFS(web.TemplatesFS())
}

func NewFromFS(fsys fs.FS) (Renderer, error) {
	parsed := make(map[string]*template.Template, len(pages))

	for _, page := range pages {
		tmpl, err := template.New(page).
			Funcs(FuncMap()).
			ParseFS(fsys, templatesDir+layoutFile, templatesDir+page)
		if err != nil {
			return nil, errors.Wrapf(err, "parse page %s", page)
		}

		parsed[page] = tmpl
	}

	return &renderer{pages: parsed}, nil
}

// MustNew is New for process start-up, where a broken template is fatal.
func MustNew() Renderer {
	r, err := New()
	if err != nil {
		panic(err)
	}

	return r
}

func (r *renderer) Render(page string, data any) ([]byte, error) {
	tmpl, ok := r.pages[page]
	if !ok {
		return nil, errors.Wrap(ErrUnknownPage, page)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, layoutName, data); err != nil {
		return nil, errors.Wrapf(err, "render page %s", page)
	}

	return buf.Bytes(), nil
}

func FuncMap() template.FuncMap {
	return template.FuncMap{
		"datetime": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}

			return timezone.Format(t, timestampShown)
		},
	}
}
