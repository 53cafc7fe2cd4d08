// Command example serves an endpoint whose query parameters are coerced
// from their raw string form, and the OpenAPI document describing them.
//
// Run:
//
//	go run ./_example
//
// Then try http://localhost:8080/items?page=2&in_stock=yes and
// http://localhost:8080/openapi.json.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/madison-web-solutions/coerce"
	"github.com/madison-web-solutions/coerce/openapi"
	"github.com/madison-web-solutions/coerce/rules"
)

var (
	pageOpts = coerce.Int{RejectZero: true, RejectNegative: true}

	listItems = openapi.Endpoint{
		Summary: "List items",
		Params: []openapi.Param{
			{Name: "page", In: openapi.InQuery, Description: "Page number, from 1.", Rules: []rules.Rule{rules.Int(pageOpts), rules.Default(1)}},
			{Name: "max_price", In: openapi.InQuery, Rules: []rules.Rule{rules.Float(coerce.Float{RejectBool: true}), rules.Example("19.99")}},
			{Name: "in_stock", In: openapi.InQuery, Rules: []rules.Rule{rules.Bool()}},
		},
		Responses: map[string]string{"200": "Matching items"},
	}
)

// ItemsQuery is the coerced form of the listItems parameters.
type ItemsQuery struct {
	Page     int64    `json:"page"`
	MaxPrice *float64 `json:"max_price"`
	InStock  *bool    `json:"in_stock"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func main() {
	doc := openapi.DocBase("Example API", "Demonstrates coerced query parameters", "0.1.0")
	openapi.Get(doc, "/items", "listItems", listItems)

	http.HandleFunc("GET /openapi.json", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, doc)
	})

	http.HandleFunc("GET /items", func(w http.ResponseWriter, r *http.Request) {
		values := listItems.Values(r, nil)
		if err := listItems.Validate(values); err != nil {
			writeJSON(w, http.StatusBadRequest, err)
			return
		}

		q := ItemsQuery{Page: 1}
		if p, _ := pageOpts.OrNull(values["page"]); p != nil {
			q.Page = *p
		}
		q.MaxPrice, _ = coerce.FloatOrNull(values["max_price"])
		q.InStock, _ = coerce.BoolOrNull(values["in_stock"])

		writeJSON(w, http.StatusOK, q)
	})

	fmt.Println("Listening on http://localhost:8080")
	log.Fatal(http.ListenAndServe(":8080", nil))
}
