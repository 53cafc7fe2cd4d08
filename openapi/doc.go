// Package openapi documents and validates the loosely-typed request
// parameters of an HTTP API in an OpenAPI 3 document.
//
// Each [Param] carries the rules used to check it, so the same declaration
// drives both the generated schema and request validation:
//
//	doc := openapi.DocBase("my-api", "My API", "1.0")
//	list := openapi.Endpoint{
//	    Summary: "List orders",
//	    Params: []openapi.Param{
//	        {Name: "page", In: openapi.InQuery, Rules: []rules.Rule{rules.Int(coerce.Int{RejectNegative: true})}},
//	    },
//	}
//	openapi.Get(doc, "/orders", "listOrders", list)
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    if err := list.Validate(r, nil); err != nil {
//	        // 400 with err as JSON
//	    }
//	}
package openapi
