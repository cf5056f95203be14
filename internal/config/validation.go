package config

import (
	"fmt"
	"net/url"
	"strings"
)

// ValidationError represents a validation error with context
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (ve ValidationError) Error() string {
	if ve.Field == "" {
		return ve.Message
	}
	return fmt.Sprintf("field '%s': %s", ve.Field, ve.Message)
}

// Validate checks that the configuration can be used to build a client.
func (c ServiceConfig) Validate() error {
	if strings.TrimSpace(c.BaseURL) == "" {
		return ValidationError{Field: "baseURL", Value: c.BaseURL, Message: "is required"}
	}

	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return ValidationError{Field: "baseURL", Value: c.BaseURL, Message: fmt.Sprintf("is not a valid URL: %v", err)}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return ValidationError{Field: "baseURL", Value: c.BaseURL, Message: "must use the http or https scheme"}
	}
	if u.Host == "" {
		return ValidationError{Field: "baseURL", Value: c.BaseURL, Message: "must include a host"}
	}

	switch c.Credential.Mode {
	case CredentialNone, "":
	case CredentialBearer, CredentialAPIKey:
		if c.Credential.Value == "" {
			return ValidationError{Field: "credential", Message: fmt.Sprintf("%s credential has no value", c.Credential.Mode)}
		}
	default:
		return ValidationError{Field: "credential", Value: c.Credential.Mode, Message: "unknown credential mode"}
	}

	return nil
}
