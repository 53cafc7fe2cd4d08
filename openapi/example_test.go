package openapi_test

import (
	"fmt"
	"net/http/httptest"

	"github.com/madison-web-solutions/coerce"
	"github.com/madison-web-solutions/coerce/openapi"
	"github.com/madison-web-solutions/coerce/rules"
)

var listItems = openapi.Endpoint{
	Summary: "List items",
	Params: []openapi.Param{
		{Name: "page", In: openapi.InQuery, Required: true, Rules: []rules.Rule{rules.Int(coerce.Int{RejectZero: true, RejectNegative: true})}},
		{Name: "in_stock", In: openapi.InQuery, Rules: []rules.Rule{rules.Bool()}},
	},
	Responses: map[string]string{"200": "OK"},
}

func ExampleGet() {
	doc := openapi.DocBase("Shop API", "Example API", "1.0.0")

	openapi.Get(doc, "/items", "listItems", listItems)

	op := doc.Paths.Value("/items").Get
	fmt.Println(op.OperationID)
	for _, p := range op.Parameters {
		fmt.Println(p.Value.Name, p.Value.Required, p.Value.Schema.Value.Description)
	}
	// Output:
	// listItems
	// page true coercible to int, non-zero
	// in_stock false coercible to bool, tokens in any case
}

func ExampleDocBase() {
	doc := openapi.DocBase("My Service", "A cool service", "0.1.0")
	fmt.Println(doc.Info.Title)
	fmt.Println(doc.OpenAPI)
	// Output:
	// My Service
	// 3.0.3
}

func ExampleEndpoint_Validate() {
	r := httptest.NewRequest("GET", "/items?page=0&in_stock=Yes", nil)

	err := listItems.Validate(listItems.Values(r, nil))
	fmt.Println(err)
	// Output: page: cannot coerce '0' to int (rejected-by-option: reject_zero).
}
