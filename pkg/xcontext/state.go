package xcontext

import "context"

type stateKey struct{}

// requestState holds values that must be visible to closers installed before
// the handler set them, so it is carried by pointer.
type requestState struct {
	err      error
	response any
}

func WithRequestState(ctx context.Context) context.Context {
	return context.WithValue(ctx, stateKey{}, &requestState{})
}

func state(ctx context.Context) *requestState {
	if s, ok := ctx.Value(stateKey{}).(*requestState); ok {
		return s
	}
	return &requestState{}
}

func SetError(ctx context.Context, err error) {
	state(ctx).err = err
}

func Error(ctx context.Context) error {
	return state(ctx).err
}

func SetResponse(ctx context.Context, resp any) {
	state(ctx).response = resp
}

func Response(ctx context.Context) any {
	return state(ctx).response
}
