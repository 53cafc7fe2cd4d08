// Package rules adapts the coercers of package coerce to validation rules.
//
// Each rule checks that a value could be coerced, without converting it,
// and documents the accepted input on an OpenAPI schema. Rules satisfy
// ozzo-validation's validation.Rule, so they mix with its built-in rules:
//
//	err := validation.ValidateStruct(&q,
//	    validation.Field(&q.Page, validation.Required, rules.Int(coerce.Int{RejectNegative: true})),
//	    validation.Field(&q.Debug, rules.Bool()),
//	)
//
// Like ozzo's own rules, they accept the empty sentinel; combine them with
// validation.Required when a value must be present.
package rules
