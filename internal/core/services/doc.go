// Package services implements the driving port interfaces.
// Services orchestrate the RESP core (internal/resp) and call out to
// driven ports for templates and document archiving.
//
// Services are pure Go with no CGO.
package services
