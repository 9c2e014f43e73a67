package errors

import "google.golang.org/grpc/codes"

// Code is the transport-neutral kind of failure. Every code produced by
// this service has a gRPC equivalent.
type Code string

// Error codes
const (
	CodeOK                 Code = "OK"
	CodeCanceled           Code = "CANCELED"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeDeadlineExceeded   Code = "DEADLINE_EXCEEDED"
	CodeNotFound           Code = "NOT_FOUND"
	CodeAlreadyExists      Code = "ALREADY_EXISTS"
	CodeResourceExhausted  Code = "RESOURCE_EXHAUSTED"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeAborted            Code = "ABORTED"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"
)

var grpcCodes = map[Code]codes.Code{
	CodeOK:                 codes.OK,
	CodeCanceled:           codes.Canceled,
	CodeInvalidArgument:    codes.InvalidArgument,
	CodeDeadlineExceeded:   codes.DeadlineExceeded,
	CodeNotFound:           codes.NotFound,
	CodeAlreadyExists:      codes.AlreadyExists,
	CodeResourceExhausted:  codes.ResourceExhausted,
	CodeFailedPrecondition: codes.FailedPrecondition,
	CodeAborted:            codes.Aborted,
	CodeInternal:           codes.Internal,
	CodeUnavailable:        codes.Unavailable,
}

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// GRPCCode returns the gRPC status code, Unknown for an unmapped code
func (c Code) GRPCCode() codes.Code {
	if gc, ok := grpcCodes[c]; ok {
		return gc
	}
	return codes.Unknown
}

// codeFromGRPC maps a gRPC status code back. Codes this service never
// produces collapse to CodeInternal.
func codeFromGRPC(gc codes.Code) Code {
	for c, mapped := range grpcCodes {
		if mapped == gc {
			return c
		}
	}
	return CodeInternal
}
