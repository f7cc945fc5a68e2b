package handlers

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"embed"
	"encoding/base64"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"strings"
)

//go:embed templates/*.html
var templatesFS embed.FS

const flashCookie = "flash"

// Views renders HTML pages and carries one-shot flash messages between a
// POST and the page it redirects to.
type Views struct {
	pages  map[string]*template.Template
	secret []byte
}

// NewViews parses every page together with the shared layout. secret signs
// the flash cookie.
func NewViews(secret string) (*Views, error) {
	names, err := templatesFS.ReadDir("templates")
	if err != nil {
		return nil, err
	}
	pages := make(map[string]*template.Template)
	for _, e := range names {
		name := e.Name()
		if name == "layout.html" {
			continue
		}
		t, err := template.ParseFS(templatesFS, "templates/layout.html", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		pages[strings.TrimSuffix(name, ".html")] = t
	}
	return &Views{pages: pages, secret: []byte(secret)}, nil
}

type page struct {
	Flash string
	Error string
	Data  any
}

// Render writes the named page with status. The flash cookie, if any, is
// consumed.
func (v *Views) Render(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	v.renderPage(w, r, status, name, page{Data: data})
}

// RenderError re-renders a form page with a message for the user.
func (v *Views) RenderError(w http.ResponseWriter, r *http.Request, status int, name, msg string, data any) {
	v.renderPage(w, r, status, name, page{Error: msg, Data: data})
}

func (v *Views) renderPage(w http.ResponseWriter, r *http.Request, status int, name string, p page) {
	t, ok := v.pages[name]
	if !ok {
		log.Printf("template %q not found", name)
		http.Error(w, "Something went wrong", http.StatusInternalServerError)
		return
	}
	p.Flash = v.popFlash(w, r)

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", p); err != nil {
		log.Printf("render %s: %v", name, err)
		http.Error(w, "Something went wrong", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

// Redirect stores msg as the next page's flash and sends a 303 to url.
func (v *Views) Redirect(w http.ResponseWriter, r *http.Request, url, msg string) {
	if msg != "" {
		http.SetCookie(w, &http.Cookie{
			Name:     flashCookie,
			Value:    v.sign(msg),
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	http.Redirect(w, r, url, http.StatusSeeOther)
}

func (v *Views) popFlash(w http.ResponseWriter, r *http.Request) string {
	c, err := r.Cookie(flashCookie)
	if err != nil {
		return ""
	}
	http.SetCookie(w, &http.Cookie{Name: flashCookie, Path: "/", MaxAge: -1})
	msg, ok := v.verify(c.Value)
	if !ok {
		return ""
	}
	return msg
}

func (v *Views) sign(msg string) string {
	payload := base64.RawURLEncoding.EncodeToString([]byte(msg))
	return payload + "." + base64.RawURLEncoding.EncodeToString(v.mac(payload))
}

func (v *Views) verify(value string) (string, bool) {
	payload, sig, ok := strings.Cut(value, ".")
	if !ok {
		return "", false
	}
	got, err := base64.RawURLEncoding.DecodeString(sig)
	if err != nil || !hmac.Equal(got, v.mac(payload)) {
		return "", false
	}
	msg, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return "", false
	}
	return string(msg), true
}

func (v *Views) mac(payload string) []byte {
	h := hmac.New(sha256.New, v.secret)
	h.Write([]byte(payload))
	return h.Sum(nil)
}
