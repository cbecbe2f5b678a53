// Package sanitizer projects raw boleta documents onto a stable,
// JSON-safe shape for list and export consumers.
//
// Storage schema drift left several logical fields stored under more than
// one key (e.g. the driver's name under "conductor" or "nombreConductor").
// Each logical field resolves through a fixed alias priority list: the
// first populated alias wins. The output is a strict allow-list: unknown
// document fields never pass through, and sanitizing an already-sanitized
// shape is a fixed point.
package sanitizer
