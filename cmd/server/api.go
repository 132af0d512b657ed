package main

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/Simplici0/producequote/internal/pricing"
)

const maxAPIBodyBytes = 1 << 20

// flexField accepts a JSON string, number or null and keeps its text so
// that coercion happens the same way as for form input.
type flexField string

func (f *flexField) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexField(s)
		return nil
	}
	*f = flexField(data)
	return nil
}

type apiQuoteRequest struct {
	Method string `json:"method"`
	Items  []struct {
		Name string    `json:"name"`
		Cost flexField `json:"cost"`
		Sell flexField `json:"sell"`
		Qty  flexField `json:"qty"`
	} `json:"items"`
}

type apiLineItem struct {
	Name          string  `json:"name"`
	Quantity      float64 `json:"quantity"`
	UnitCost      float64 `json:"unit_cost"`
	UnitSell      float64 `json:"unit_sell"`
	TotalCost     float64 `json:"total_cost"`
	TotalRevenue  float64 `json:"total_revenue"`
	Profit        float64 `json:"profit"`
	MarginPercent float64 `json:"margin_percent"`
}

type apiTotals struct {
	TotalCost            float64 `json:"total_cost"`
	TotalRevenue         float64 `json:"total_revenue"`
	TotalProfit          float64 `json:"total_profit"`
	OverallMarginPercent float64 `json:"overall_margin_percent"`
	ValidItemCount       int     `json:"valid_item_count"`
}

type apiQuoteResponse struct {
	Method      pricing.Method `json:"method"`
	MarginLabel string         `json:"margin_label"`
	Items       []apiLineItem  `json:"items"`
	Totals      apiTotals      `json:"totals"`
	Empty       bool           `json:"empty"`
}

// handleAPIQuote calculates a quote from a JSON body.
func (s *server) handleAPIQuote(w http.ResponseWriter, r *http.Request) {
	var req apiQuoteRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxAPIBodyBytes))
	if err := dec.Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		return
	}

	method := s.defaultMethod
	if req.Method != "" {
		method = pricing.ParseMethod(req.Method)
	}

	raws := make([]pricing.RawLineItem, 0, len(req.Items))
	for _, item := range req.Items {
		raws = append(raws, pricing.RawLineItem{
			Name:     item.Name,
			Cost:     string(item.Cost),
			Sell:     string(item.Sell),
			Quantity: string(item.Qty),
		})
	}

	result := pricing.Calculate(pricing.CoerceAll(raws), method)
	writeJSON(w, http.StatusOK, newAPIQuoteResponse(result))
}

func newAPIQuoteResponse(result pricing.Result) apiQuoteResponse {
	items := make([]apiLineItem, 0, len(result.Items))
	for _, item := range result.Items {
		items = append(items, apiLineItem{
			Name:          item.Name,
			Quantity:      item.Quantity,
			UnitCost:      item.UnitCost,
			UnitSell:      item.UnitSell,
			TotalCost:     item.TotalCost,
			TotalRevenue:  item.TotalRevenue,
			Profit:        item.Profit,
			MarginPercent: item.MarginPercent,
		})
	}

	return apiQuoteResponse{
		Method:      result.Method,
		MarginLabel: result.Method.Label(),
		Items:       items,
		Totals: apiTotals{
			TotalCost:            result.Totals.TotalCost,
			TotalRevenue:         result.Totals.TotalRevenue,
			TotalProfit:          result.Totals.TotalProfit,
			OverallMarginPercent: result.Totals.OverallMarginPercent,
			ValidItemCount:       result.Totals.ValidItemCount,
		},
		Empty: result.Totals.Empty(),
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
