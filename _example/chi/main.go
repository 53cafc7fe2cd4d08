// Command chi coerces chi path parameters.
//
// Run:
//
//	cd _example/chi && go run .
//
// Then try http://localhost:8080/orders/42/lines/3.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/madison-web-solutions/coerce"
	"github.com/madison-web-solutions/coerce/openapi"
	"github.com/madison-web-solutions/coerce/rules"
)

var (
	idOpts = coerce.Int{RejectBool: true, RejectZero: true, RejectNegative: true}

	getLine = openapi.Endpoint{
		Summary: "Get an order line",
		Params: []openapi.Param{
			{Name: "order", In: openapi.InPath, Rules: []rules.Rule{rules.Int(idOpts)}},
			{Name: "line", In: openapi.InPath, Rules: []rules.Rule{rules.ArrayKey()}},
		},
		Responses: map[string]string{"200": "The order line"},
	}
)

type OrderLine struct {
	Order int64  `json:"order"`
	Line  string `json:"line"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func main() {
	doc := openapi.DocBase("Example API (chi)", "Demonstrates coerced path parameters with chi", "0.1.0")
	openapi.Get(doc, "/orders/{order}/lines/{line}", "getOrderLine", getLine)

	r := chi.NewRouter()

	r.Get("/openapi.json", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, doc)
	})

	r.Get("/orders/{order}/lines/{line}", func(w http.ResponseWriter, r *http.Request) {
		values := getLine.Values(r, func(name string) string {
			return chi.URLParam(r, name)
		})
		if err := getLine.Validate(values); err != nil {
			writeJSON(w, http.StatusBadRequest, err)
			return
		}

		writeJSON(w, http.StatusOK, OrderLine{
			Order: idOpts.Must(values["order"]),
			Line:  coerce.ArrayKey{}.Must(values["line"]).String(),
		})
	})

	fmt.Println("Listening on http://localhost:8080")
	log.Fatal(http.ListenAndServe(":8080", r))
}
