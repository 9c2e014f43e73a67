package errors

import (
	"fmt"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ToGRPCError converts an error to a gRPC status error.
// Reason and metadata travel in a google.rpc.ErrorInfo detail.
func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}

	if _, ok := status.FromError(err); ok {
		return err
	}

	var customErr *Error
	if !As(err, &customErr) {
		return status.Error(codes.Internal, err.Error())
	}

	st := status.New(customErr.Code.GRPCCode(), customErr.Message)
	if customErr.Reason == ReasonNone && len(customErr.Meta) == 0 {
		return st.Err()
	}

	info := &errdetails.ErrorInfo{
		Reason:   customErr.Reason.String(),
		Domain:   ReasonDomain,
		Metadata: make(map[string]string, len(customErr.Meta)),
	}
	for k, v := range customErr.Meta {
		info.Metadata[k] = fmt.Sprint(v)
	}

	detailed, detailErr := st.WithDetails(info)
	if detailErr != nil {
		return st.Err()
	}
	return detailed.Err()
}

// FromGRPCError converts a gRPC error to our custom error
func FromGRPCError(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	customErr := &Error{
		Code:    codeFromGRPC(st.Code()),
		Message: st.Message(),
	}

	for _, detail := range st.Details() {
		info, ok := detail.(*errdetails.ErrorInfo)
		if !ok || info.GetDomain() != ReasonDomain {
			continue
		}
		customErr.Reason = Reason(info.GetReason())
		for k, v := range info.GetMetadata() {
			customErr.WithMeta(k, v)
		}
		break
	}

	return customErr
}
