// Package errors provides structured errors for the arena API.
//
// Every error carries a Code, a user-facing Message, an optional Cause and
// free-form Meta. Domain failures of the combat and progression engine are
// expressed as a code plus a "reason" entry in Meta so callers can tell an
// invalid stat allocation from any other bad argument:
//
//	err := errors.InvalidAllocation("allocated 160 points, 150 available")
//	if errors.IsInvalidAllocation(err) {
//	    // reject the request
//	}
//
// Wrapping keeps the code and metadata of the wrapped error:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to load gladiator")
//	}
//
// Handlers convert to gRPC with ToGRPCError; the reason travels as a
// google.rpc.ErrorInfo detail and is restored by FromGRPCError.
package errors
