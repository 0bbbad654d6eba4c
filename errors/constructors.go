package errors

import (
	"fmt"
)

// ConfigNotFound creates a configuration not found error
func ConfigNotFound(path string) *HeadlessError {
	return New(ErrCodeConfigNotFound, fmt.Sprintf("configuration file not found: %s", path)).
		WithDetail("path", path)
}

// ConfigInvalid creates an invalid configuration error
func ConfigInvalid(reason string) *HeadlessError {
	return New(ErrCodeConfigInvalid, fmt.Sprintf("invalid configuration: %s", reason))
}

// UnknownPart creates an error for an a11y or handler lookup against a part
// the component never registered
func UnknownPart(component, part string) *HeadlessError {
	return New(ErrCodeUnknownPart, fmt.Sprintf("component '%s' has no part '%s'", component, part)).
		WithDetail("component", component).
		WithDetail("part", part)
}

// UnknownEvent creates an error for a dispatch of an unregistered event
func UnknownEvent(component, event string) *HeadlessError {
	return New(ErrCodeUnknownEvent, fmt.Sprintf("component '%s' has no event '%s'", component, event)).
		WithDetail("component", component).
		WithDetail("event", event)
}

// NotConnected creates an error for operating on a logic layer before it is
// bound to a state store
func NotConnected(component string) *HeadlessError {
	return New(ErrCodeNotConnected, fmt.Sprintf("component '%s' is not connected to a state store", component)).
		WithDetail("component", component)
}

// InvalidOptions creates an error for component options that cannot be wired
func InvalidOptions(component, reason string) *HeadlessError {
	return New(ErrCodeInvalidOptions, fmt.Sprintf("invalid %s options: %s", component, reason)).
		WithDetail("component", component)
}

// SchemaValidation wraps a schema validation failure for a named document
func SchemaValidation(document string, err error) *HeadlessError {
	return Wrap(err, ErrCodeSchemaValidation, fmt.Sprintf("schema validation failed for %s", document)).
		WithDetail("document", document)
}

// BridgeDecode wraps a failure to decode an inbound bridge message
func BridgeDecode(err error) *HeadlessError {
	return Wrap(err, ErrCodeBridgeDecode, "failed to decode bridge message")
}

// BridgeUnknownTarget creates an error for a bridge message addressed to a
// component or part that is not registered
func BridgeUnknownTarget(target string) *HeadlessError {
	return New(ErrCodeBridgeUnknown, fmt.Sprintf("no registered component for target '%s'", target)).
		WithDetail("target", target)
}
