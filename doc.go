// Package coerce converts values of unknown or loosely-typed origin (user
// input, decoded documents, external APIs) into strictly-typed values.
//
// A conversion succeeds only when it is lossless and unambiguous; it never
// guesses and never truncates. Five coercers are provided: [String], [Int],
// [Float], [Bool] and [ArrayKey]. Each is a small options record whose zero
// value is the default configuration, and each exposes the same calling
// conventions:
//
//	n, ok := coerce.Int{}.Try("2.0")            // 2, true
//	p, ok := coerce.Int{}.OrNull("")            // nil, true
//	n, err := coerce.Int{RejectNegative: true}.OrFail(-4)
//	// err: cannot coerce -4 to int (rejected-by-option: reject_negative)
//
// Package-level shortcuts such as [TryInt], [IntOrNull] and [IntOrFail] use
// the default options.
//
// Errors returned by the OrFail forms are [*Error] values. They match
// [ErrInvalidArgument] with [errors.Is] and implement ozzo-validation's
// validation.Error, so they can be placed directly in a validation.Errors map.
//
// Sub-packages:
//   - rules: coercers as ozzo-validation rules with OpenAPI descriptions
//   - openapi: OpenAPI documentation for coerced request parameters
package coerce
