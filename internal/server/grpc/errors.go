package grpc

import (
	"github.com/dmitrijs2005/boardkeeper/internal/common"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var kindCodes = map[common.Kind]codes.Code{
	common.KindNotFound:     codes.NotFound,
	common.KindUnauthorized: codes.Unauthenticated,
	common.KindInvalidData:  codes.InvalidArgument,
	common.KindConflict:     codes.AlreadyExists,
	common.KindStore:        codes.Internal,
	common.KindInternal:     codes.Internal,
}

// toStatus converts a service error into a gRPC status. Store and internal
// failures are reported without their cause.
func toStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	kind := common.KindOf(err)
	code := kindCodes[kind]
	switch kind {
	case common.KindStore:
		return status.Error(code, common.ErrorStore.Error())
	case common.KindInternal:
		return status.Error(code, common.ErrorInternal.Error())
	}
	return status.Error(code, err.Error())
}
