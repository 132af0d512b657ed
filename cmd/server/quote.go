package main

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Simplici0/producequote/internal/export"
	"github.com/Simplici0/producequote/internal/lineitems"
	"github.com/Simplici0/producequote/internal/pricing"
	"github.com/Simplici0/producequote/internal/worksheet"
)

const (
	emptyQuoteMessage  = "No items to calculate. Add products above."
	emptyExportMessage = "No items to export. Add products above."
	maxUploadBytes     = 5 << 20
)

type methodOption struct {
	Value   pricing.Method
	Label   string
	Checked bool
}

type itemView struct {
	Name     string
	Quantity string
	UnitCost string
	UnitSell string
	Total    string
	Profit   string
	Margin   string
	Negative bool
}

type resultView struct {
	Date           string
	Items          []itemView
	TotalCost      string
	TotalRevenue   string
	TotalProfit    string
	OverallMargin  string
	MarginLabel    string
	ProfitNegative bool
	MarginNegative bool
}

type quoteViewData struct {
	baseViewData
	Rows       []worksheet.Row
	NextID     int
	FocusID    int
	Methods    []methodOption
	Calculated bool
	Result     *resultView
	// EmptyMessage is shown when a calculation found nothing to report.
	EmptyMessage string
}

// LastRowID is the row where Enter adds another line item.
func (v quoteViewData) LastRowID() int {
	if len(v.Rows) == 0 {
		return 0
	}
	return v.Rows[len(v.Rows)-1].ID
}

func (s *server) handleHome(w http.ResponseWriter, r *http.Request) {
	ws := worksheet.New()
	view := s.newQuoteView(r, ws, s.defaultMethod)
	view.FocusID = ws.LastID()
	s.renderTemplate(w, http.StatusOK, "quote.html", view)
}

// handleQuote applies one worksheet action posted by the quote form.
func (s *server) handleQuote(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	ws, method := s.parseWorksheetForm(r)
	view := s.newQuoteView(r, ws, method)
	status := http.StatusOK

	action := r.FormValue("action")
	switch {
	case action == "add":
		view.FocusID = ws.Add()
	case strings.HasPrefix(action, "remove-"):
		id, err := strconv.Atoi(strings.TrimPrefix(action, "remove-"))
		if err != nil {
			http.Error(w, "invalid line item id", http.StatusBadRequest)
			return
		}
		if err := ws.Remove(id); err != nil {
			if !errors.Is(err, worksheet.ErrLastRow) && !errors.Is(err, worksheet.ErrUnknownRow) {
				http.Error(w, "failed to remove line item", http.StatusInternalServerError)
				return
			}
			view.ErrorMessage = capitalize(err.Error()) + "."
			status = http.StatusUnprocessableEntity
		}
	case action == "clear":
		ws.Clear()
		view.FocusID = ws.LastID()
	default:
		view.setResult(pricing.Calculate(ws.Inputs(), method), s.now())
	}

	view.Rows = ws.Rows()
	view.NextID = ws.NextID()
	s.renderTemplate(w, status, "quote.html", view)
}

// handleImport replaces the worksheet rows with the items of an uploaded
// CSV or xlsx file and calculates the quote.
func (s *server) handleImport(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "invalid upload", http.StatusBadRequest)
		return
	}

	ws, method := s.parseWorksheetForm(r)
	view := s.newQuoteView(r, ws, method)

	file, header, err := r.FormFile("file")
	if err != nil {
		view.ErrorMessage = "Choose a CSV or Excel file to import."
		s.renderTemplate(w, http.StatusBadRequest, "quote.html", view)
		return
	}
	defer file.Close()

	items, err := lineitems.Read(header.Filename, file)
	if err != nil {
		view.ErrorMessage = fmt.Sprintf("Could not import %s: %v", header.Filename, err)
		s.renderTemplate(w, http.StatusBadRequest, "quote.html", view)
		return
	}

	ws.Load(items)
	view.Rows = ws.Rows()
	view.NextID = ws.NextID()
	view.SuccessMessage = fmt.Sprintf("Imported %d line item(s) from %s.", len(items), header.Filename)
	view.setResult(pricing.Calculate(ws.Inputs(), method), s.now())
	s.renderTemplate(w, http.StatusOK, "quote.html", view)
}

// handleExport calculates the posted worksheet and returns it as a download.
func (s *server) handleExport(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	ws, method := s.parseWorksheetForm(r)
	result := pricing.Calculate(ws.Inputs(), method)
	if result.Totals.Empty() {
		http.Error(w, emptyExportMessage, http.StatusUnprocessableEntity)
		return
	}

	now := s.now()
	format := chi.URLParam(r, "format")

	var (
		buf         bytes.Buffer
		contentType string
		inline      bool
		err         error
	)
	switch format {
	case "csv":
		contentType = "text/csv; charset=utf-8"
		err = export.WriteCSV(&buf, result)
	case "txt":
		contentType = "text/plain; charset=utf-8"
		inline = true
		err = export.WriteText(&buf, result, now)
	case "xlsx":
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
		var data []byte
		data, err = export.GenerateExcel(result, now)
		buf.Write(data)
	case "pdf":
		contentType = "application/pdf"
		inline = true
		var data []byte
		data, err = export.GeneratePDF(result, now)
		buf.Write(data)
	default:
		http.NotFound(w, r)
		return
	}
	if err != nil {
		log.Printf("export %s: %v", format, err)
		http.Error(w, "failed to export quote", http.StatusInternalServerError)
		return
	}

	disposition := "attachment"
	if inline {
		disposition = "inline"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("%s; filename=%q", disposition, export.Filename(now, format)))
	_, _ = w.Write(buf.Bytes())
}

// parseWorksheetForm rebuilds the worksheet and the selected method from
// the posted form. Row order follows the order of the posted id fields.
func (s *server) parseWorksheetForm(r *http.Request) (*worksheet.Worksheet, pricing.Method) {
	method := s.defaultMethod
	if raw := r.FormValue("method"); raw != "" {
		method = pricing.ParseMethod(raw)
	}

	var rows []worksheet.Row
	seen := make(map[int]bool)
	for _, raw := range r.Form["id"] {
		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 || seen[id] {
			continue
		}
		seen[id] = true

		suffix := "-" + strconv.Itoa(id)
		rows = append(rows, worksheet.Row{
			ID: id,
			Fields: pricing.RawLineItem{
				Name:     r.FormValue("name" + suffix),
				Cost:     r.FormValue("cost" + suffix),
				Sell:     r.FormValue("sell" + suffix),
				Quantity: r.FormValue("qty" + suffix),
			},
		})
	}

	nextID, _ := strconv.Atoi(r.FormValue("next_id"))
	return worksheet.Restore(rows, nextID), method
}

func (s *server) newQuoteView(r *http.Request, ws *worksheet.Worksheet, method pricing.Method) quoteViewData {
	methods := make([]methodOption, 0, len(pricing.Methods))
	for _, m := range pricing.Methods {
		methods = append(methods, methodOption{Value: m, Label: m.Label(), Checked: m == method})
	}

	return quoteViewData{
		baseViewData: baseViewData{Theme: s.currentTheme(r)},
		Rows:         ws.Rows(),
		NextID:       ws.NextID(),
		Methods:      methods,
	}
}

func (v *quoteViewData) setResult(result pricing.Result, now time.Time) {
	v.Calculated = true
	if result.Totals.Empty() {
		v.Result = nil
		v.EmptyMessage = emptyQuoteMessage
		return
	}

	items := make([]itemView, 0, len(result.Items))
	for _, item := range result.Items {
		items = append(items, itemView{
			Name:     item.Name,
			Quantity: export.Quantity(item.Quantity),
			UnitCost: export.Money(item.UnitCost),
			UnitSell: export.Money(item.UnitSell),
			Total:    export.Money(item.TotalRevenue),
			Profit:   export.Money(item.Profit),
			Margin:   export.Percent(item.MarginPercent) + "%",
			Negative: item.Profit < 0,
		})
	}

	v.Result = &resultView{
		Date:           export.QuoteDate(now),
		Items:          items,
		TotalCost:      export.Money(result.Totals.TotalCost),
		TotalRevenue:   export.Money(result.Totals.TotalRevenue),
		TotalProfit:    export.Money(result.Totals.TotalProfit),
		OverallMargin:  export.Percent(result.Totals.OverallMarginPercent) + "%",
		MarginLabel:    "Overall " + result.Method.Label(),
		ProfitNegative: result.Totals.TotalProfit < 0,
		MarginNegative: result.Totals.OverallMarginPercent < 0,
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
