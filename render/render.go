package render

import (
	"embed"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig"
	"github.com/vsariola/midiscales"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultTemplate is the name of the built-in template used when none is
// given: every scale on its own block of lines.
const DefaultTemplate = "listing"

const templateExt = ".tmpl"

//go:embed templates/*.tmpl
var templateFS embed.FS

// Renderer renders listings using a text/template. Templates get the sprig
// functions and additionally:
//
//	note   NoteToText, e.g. {{note .Root false true}}
//	title  title case, e.g. {{.Scale.ScaleName | title}}
type Renderer struct {
	Template *template.Template
	Name     string
}

// New returns a Renderer for one of the built-in templates, see Templates.
func New(name string) (*Renderer, error) {
	tmpl, err := template.New("base").Funcs(funcMap()).ParseFS(templateFS, "templates/*"+templateExt)
	if err != nil {
		return nil, fmt.Errorf(`could not create templates: %v`, err)
	}
	if tmpl.Lookup(name+templateExt) == nil {
		return nil, fmt.Errorf("render.New failed, because there is no built-in template %q (available: %v)", name, strings.Join(Templates(), ", "))
	}
	return &Renderer{Template: tmpl, Name: name + templateExt}, nil
}

// NewFromFile returns a Renderer using the template in the given file.
func NewFromFile(path string) (*Renderer, error) {
	name := filepath.Base(path)
	tmpl, err := template.New(name).Funcs(funcMap()).ParseFiles(path)
	if err != nil {
		return nil, fmt.Errorf(`could not create template from file "%v": %v`, path, err)
	}
	return &Renderer{Template: tmpl, Name: name}, nil
}

// Templates lists the names of the built-in templates.
func Templates() []string {
	entries, err := templateFS.ReadDir("templates")
	if err != nil {
		return nil
	}
	var ret []string
	for _, e := range entries {
		ret = append(ret, strings.TrimSuffix(e.Name(), templateExt))
	}
	sort.Strings(ret)
	return ret
}

func (r *Renderer) Render(w io.Writer, l Listing) error {
	if err := r.Template.ExecuteTemplate(w, r.Name, l); err != nil {
		return fmt.Errorf("could not execute template %v: %v", r.Name, err)
	}
	return nil
}

func funcMap() template.FuncMap {
	caser := cases.Title(language.English)
	ret := sprig.TxtFuncMap()
	ret["title"] = caser.String
	ret["note"] = midiscales.NoteToText
	return ret
}
