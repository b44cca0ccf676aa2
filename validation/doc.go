// Package validation checks configuration and credential structs against
// their `validate` struct tags before any request is built.
//
//	type Credentials struct {
//	    AccessKeyID string `validate:"required"`
//	}
//	err := validation.Validate(creds)
//
// Failures are returned as configuration errors naming the offending fields.
package validation
