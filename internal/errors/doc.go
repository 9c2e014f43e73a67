// Package errors provides a comprehensive error handling solution for the rpg-adventure service.
//
// This package is inspired by the goaterr pattern and provides:
//   - Structured errors with codes, messages, and metadata
//   - Seamless gRPC integration with bidirectional conversion
//   - User-friendly error messages
//   - Error context preservation through wrapping
//   - Validation error helpers
//   - Type-safe error checking
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFoundf("player %s not found", playerID)
//	err := errors.InvalidArgumentf("unknown direction: %q", dir)
//
// Adding metadata:
//
//	err := errors.NotFoundf("player %s not found", playerID).
//	    WithMeta("player_id", playerID)
//
// Wrapping errors:
//
//	if err := repo.Get(ctx, id); err != nil {
//	    return errors.Wrap(err, "failed to get player")
//	}
//
// # Game Rule Reasons
//
// Expected, player-facing failures carry a Reason in addition to a Code so
// callers can render a specific message and tests can assert the exact cause:
//
//	err := errors.WithReason(errors.ReasonSlotOccupied, "weapon slot is taken")
//	if errors.HasReason(err, errors.ReasonSlotOccupied) {
//	    // unequip first
//	}
//
// The code is derived from the reason (see Reason.Code). Over gRPC the reason
// travels as a google.rpc.ErrorInfo detail and is restored by FromGRPCError.
//
// # Error Checking
//
// Type checking:
//
//	if errors.IsNotFound(err) {
//	    // Handle not found case
//	}
//
// Extracting information:
//
//	code := errors.GetCode(err)
//	message := errors.GetMessage(err)
//	meta := errors.GetMeta(err)
//
// # Validation Errors
//
// Using the validation builder:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("name", input.Name, vb)
//	errors.ValidateEnum("direction", input.Direction, directions, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # gRPC Integration
//
// Converting to gRPC:
//
//	out, err := h.service.Move(ctx, input)
//	if err != nil {
//	    return nil, errors.ToGRPCError(err)
//	}
//
// Converting from gRPC:
//
//	resp, err := conn.Invoke(ctx, method, req, resp)
//	if err != nil {
//	    return errors.FromGRPCError(err)
//	}
//
// # Layer-Specific Guidelines
//
// Entities and engine:
//   - Return reasoned errors for rule violations and leave state untouched
//
// Repository layer:
//   - Return NotFound and AlreadyExists with the player id in metadata
//
// Orchestrator layer:
//   - Validate inputs with the ValidationBuilder
//   - Wrap lower errors with business context, keeping code and reason
//
// Handler layer:
//   - Convert errors to gRPC format
package errors
