package webui

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/davecgh/go-spew/spew"

	"dashboard.ngindicators.org/internal/indicators"
	"dashboard.ngindicators.org/internal/models"
)

//go:embed debug_index.html
var templateFS embed.FS

type debugData struct {
	Title string
	Pre   string
}

func writeDebugData(w http.ResponseWriter, title string, data interface{}) {
	content := spew.Sdump(data)
	w.Header().Set("Content-Type", "text/html")
	tmpl, err := template.ParseFS(templateFS, "debug_index.html")
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dataStruct := debugData{
		Title: title,
		Pre:   content,
	}

	err = tmpl.Execute(w, dataStruct)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (webUI *WebUI) debugIndexHandler(w http.ResponseWriter, r *http.Request) {
	dataType := r.URL.Query().Get("dataType")

	var data interface{}
	var title string

	table := webUI.Dataset.Table()

	switch dataType {
	case "info":
		data = models.NewDatasetInfo(table)
		title = "Indicator Dataset - Info"
	case "years":
		data = table.Years()
		title = "Indicator Dataset - Year Domain"
	case "indicators":
		data = table.Indicators()
		title = "Indicator Dataset - Measure Columns"
	case "table":
		data = models.NewTableRows(table)
		title = "Indicator Dataset - Cleaned Table"
	case "trend":
		points, err := indicators.Trend(table, indicators.ColGDP, table.MinYear(), table.MaxYear())
		if err != nil {
			data = err.Error()
		} else {
			data = points
		}
		title = "Indicator Dataset - GDP Trend Sample"
	default:
		data = map[string]string{
			"error": "Please use one of the following: info, years, indicators, table, trend.",
		}
		title = "Choose a data type"
	}

	writeDebugData(w, title, data)
}
