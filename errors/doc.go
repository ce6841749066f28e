// Package errors turns template resolution failures into messages a
// developer can act on.
//
// Core types:
//   - Error: Wraps an error with message, suggestion, and details
//   - Messenger: Interface for customizing messages
//
// Example usage:
//
//	out, err := f.RenderString(req, "", data)
//	if err != nil {
//	    return errors.Explain(err)
//	}
//
//	// Custom wording
//	wrapped := errors.Explain(err, errors.WithMessenger(MyMessenger{}))
//
//	// Check error kinds
//	if errors.IsNotFound(err) {
//	    // 404
//	}
package errors
