package client

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/boardkeeper/internal/common"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var ErrUnavailable = errors.New("server unavailable")

var codeErrors = map[codes.Code]error{
	codes.NotFound:         common.ErrorNotFound,
	codes.Unauthenticated:  common.ErrorUnauthorized,
	codes.PermissionDenied: common.ErrorUnauthorized,
	codes.InvalidArgument:  common.ErrorInvalidData,
	codes.AlreadyExists:    common.ErrorConflict,
	codes.Unavailable:      ErrUnavailable,
	codes.DeadlineExceeded: ErrUnavailable,
}

// mapError turns a gRPC status back into the shared sentinel errors so
// callers can use errors.Is on either side of the wire.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	if sentinel, ok := codeErrors[st.Code()]; ok {
		return fmt.Errorf("%w: %s", sentinel, st.Message())
	}
	return fmt.Errorf("rpc error: %w", err)
}
