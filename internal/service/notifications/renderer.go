package notifications

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// Renderer рендерит тему, HTML тело и текст SMS по имени шаблона
// HTML экранируется html/template, тема и SMS - обычный текст
type Renderer struct {
	html map[string]*htmltemplate.Template
	text map[string]*texttemplate.Template
}

// NewRenderer парсит встроенные шаблоны
func NewRenderer() (*Renderer, error) {
	layout, err := htmltemplate.New("layout").
		Funcs(htmltemplate.FuncMap{"upper": strings.ToUpper}).
		ParseFS(templatesFS, "templates/layout.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	r := &Renderer{
		html: make(map[string]*htmltemplate.Template, len(Templates)),
		text: make(map[string]*texttemplate.Template, len(Templates)),
	}

	for _, name := range Templates {
		page, err := layout.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layout for %s: %w", name, err)
		}
		page, err = page.ParseFS(templatesFS, "templates/"+name+".html.tmpl")
		if err != nil {
			return nil, fmt.Errorf("parse html template %s: %w", name, err)
		}

		text, err := texttemplate.New(name).ParseFS(templatesFS, "templates/"+name+".txt.tmpl")
		if err != nil {
			return nil, fmt.Errorf("parse text template %s: %w", name, err)
		}
		if text.Lookup("subject") == nil {
			return nil, fmt.Errorf("text template %s: subject is not defined", name)
		}

		r.html[name] = page
		r.text[name] = text
	}

	return r, nil
}

// Render рендерит шаблон name
func (r *Renderer) Render(name string, data TemplateData) (*Rendered, error) {
	page, ok := r.html[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTemplate, name)
	}
	text := r.text[name]

	var subject, body, sms bytes.Buffer

	if err := text.ExecuteTemplate(&subject, "subject", data); err != nil {
		return nil, fmt.Errorf("%w: %s subject: %v", ErrRender, name, err)
	}
	if err := page.ExecuteTemplate(&body, "layout", data); err != nil {
		return nil, fmt.Errorf("%w: %s html: %v", ErrRender, name, err)
	}
	if text.Lookup("sms") != nil {
		if err := text.ExecuteTemplate(&sms, "sms", data); err != nil {
			return nil, fmt.Errorf("%w: %s sms: %v", ErrRender, name, err)
		}
	}

	return &Rendered{
		Subject: strings.TrimSpace(subject.String()),
		HTML:    body.String(),
		SMS:     strings.TrimSpace(sms.String()),
	}, nil
}
