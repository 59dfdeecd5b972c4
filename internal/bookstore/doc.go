// Package bookstore implements the Madang bookstore workflow: the query
// executor, the catalog loader, and the lookup, registration, and
// transaction flows that share one Session.
//
// Flows never abort the process. Database failures are reported through the
// Surface by the Executor; validation problems are reported as warnings before
// any statement runs. Each flow also returns an error (a sentinel from
// pkg/types) so one-shot callers can pick an exit code.
package bookstore
