// Package fee implements the fee computation engine: it converts an
// application's activity classification into an administration fee, an
// optional composite fee, and a total, together with the statutory
// processing-day allowance driving the computation.
//
// The engine is request-scoped and stateless between calls. The pipeline is
// validator -> resolver -> proration formula -> composite rule -> aggregator;
// the only operation that touches anything external is the schedule lookup
// against the system of record, which degrades to built-in defaults rather
// than failing so applicants always get at least an estimate.
package fee
