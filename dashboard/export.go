package dashboard

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
)

//go:embed assets
var assets embed.FS

var page = template.Must(template.ParseFS(assets, "assets/dashboard.html.tmpl"))

type pageData struct {
	// Mode is "live" (view frames come from the backend) or "static"
	// (filtering runs client-side against the embedded tables).
	Mode      string
	Bootstrap template.JS
	AppJS     template.JS
}

type bootstrap struct {
	Tables *Tables `json:"tables"`
	Axes   Axes    `json:"axes"`
}

func renderPage(w io.Writer, t *Tables, mode string) error {
	b, err := json.Marshal(bootstrap{Tables: t, Axes: DefaultAxes()})
	if err != nil {
		return fmt.Errorf("error marshaling dashboard data: %w", err)
	}

	js, err := assets.ReadFile("assets/app.js")
	if err != nil {
		return err
	}

	return page.Execute(w, pageData{
		Mode:      mode,
		Bootstrap: template.JS(b),
		AppJS:     template.JS(js),
	})
}

// WritePage renders the dashboard page for the stateful backend.
func WritePage(w io.Writer, t *Tables) error {
	return renderPage(w, t, "live")
}

// Export writes the self-contained dashboard: one HTML file with both
// feature tables embedded and all interactivity client-side.
func Export(w io.Writer, t *Tables) error {
	return renderPage(w, t, "static")
}
