package surface

import (
	"bytes"
	"fmt"
	"log"
	"net"
	"net/http"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/pkg/browser"
)

// Show renders the chart and opens it in the default browser, then blocks
// serving the page for the lifetime of the process. The page is served from
// an ephemeral localhost port; nothing is written to disk.
func Show(chart *charts.Surface3D) error {
	var page bytes.Buffer
	if err := chart.Render(&page); err != nil {
		return fmt.Errorf("failed to render surface chart: %w", err)
	}

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return fmt.Errorf("failed to listen on localhost: %w", err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(page.Bytes())
	})

	url := fmt.Sprintf("http://%s/", ln.Addr())
	log.Printf("Serving surface plot at %s (Ctrl+C to exit)", url)
	if err := browser.OpenURL(url); err != nil {
		log.Printf("Could not open browser automatically: %v", err)
	}
	return http.Serve(ln, mux)
}
