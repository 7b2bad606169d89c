package router

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fanpassport/backend/pkg/errorx"
	"github.com/fanpassport/backend/pkg/xcontext"
)

var errorMethodNotAllowed = errorx.New(errorx.BadRequest, "Method is not allowed")

type response struct {
	Code  int64  `json:"code"`
	Error string `json:"error,omitempty"`
	Data  any    `json:"data,omitempty"`
}

func newResponse(data any) response {
	return response{
		Code: 0,
		Data: data,
	}
}

func newErrorResponse(err error) response {
	errx := errorx.Error{}
	if errors.As(err, &errx) {
		return response{
			Code:  int64(errx.Code),
			Error: errx.Message,
		}
	}

	return response{
		Code:  int64(errorx.Unknown.Code),
		Error: errorx.Unknown.Message,
	}
}

func writeSuccess(ctx context.Context, data any) {
	if err := WriteJson(xcontext.HTTPWriter(ctx), newResponse(data)); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot write the response: %v", err)
		xcontext.SetError(ctx, errorx.New(errorx.BadResponse, "Cannot write the response"))
	}
}

func writeError(ctx context.Context, err error) {
	xcontext.SetError(ctx, err)
	if err := WriteJson(xcontext.HTTPWriter(ctx), newErrorResponse(err)); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot write the response: %v", err)
	}
}

func WriteJson(w http.ResponseWriter, resp any) error {
	b, err := json.Marshal(resp)
	if err != nil {
		return err
	}

	if _, err := w.Write(b); err != nil {
		return err
	}

	return nil
}
