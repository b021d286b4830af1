package grpc

import (
	"errors"

	"github.com/DRSN-tech/visual-search/pkg/e"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func GRPCErrorResponse(err error) error {
	switch {
	case errors.Is(err, e.ErrNoImage):
		return status.Error(codes.InvalidArgument, e.ErrNoImage.Error())
	case errors.Is(err, e.ErrUnsupportedImage):
		return status.Error(codes.InvalidArgument, e.ErrUnsupportedImage.Error())
	case errors.Is(err, e.ErrFileTooLarge):
		return status.Error(codes.InvalidArgument, e.ErrFileTooLarge.Error())
	case errors.Is(err, e.ErrIndexNotBuilt):
		return status.Error(codes.Unavailable, e.ErrIndexNotBuilt.Error())
	default:
		return status.Error(codes.Internal, e.ErrInternalServerError.Error())
	}
}
