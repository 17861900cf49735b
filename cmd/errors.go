package cmd

import (
	"log"

	sdkerrors "github.com/fintracklabs/fintrack/pkg/fsdk/ferr"
)

// exitIfSdkError inspects errors returned from the SDK and emits user-friendly
// guidance before exiting. Non-SDK errors fall back to log.Fatalf.
func exitIfSdkError(err error) {
	if err == nil {
		return
	}
	switch {
	case sdkerrors.IsCode(err, sdkerrors.CodeUnauthorized):
		log.Fatalf("authentication required: run 'fintrack auth login' (%v)", err)
	case sdkerrors.IsCode(err, sdkerrors.CodeSessionExpired):
		log.Fatalf("session expired: run 'fintrack auth login' again (%v)", err)
	case sdkerrors.IsCode(err, sdkerrors.CodeRefreshFailed):
		log.Fatalf("failed to refresh credentials: run 'fintrack auth login' (%v)", err)
	case sdkerrors.IsCode(err, sdkerrors.CodeValidation):
		log.Fatalf("invalid input: %s", sdkerrors.DetailOf(err))
	case sdkerrors.IsCode(err, sdkerrors.CodeNetwork):
		log.Fatalf("cannot reach the FinTrack API: %v", err)
	default:
		log.Fatalf("%v", err)
	}
}
