package router

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/fanpassport/backend/pkg/errorx"
	"github.com/fanpassport/backend/pkg/xcontext"
)

// bindRequest fills req from the query string for GET requests and from the
// json body for POST requests. Multipart bodies are left alone so the handler
// can read the form itself.
func bindRequest(ctx context.Context, method string, req any) error {
	httpReq := xcontext.HTTPRequest(ctx)
	switch method {
	case http.MethodGet:
		return bindQuery(httpReq, req)

	case http.MethodPost:
		contentType := httpReq.Header.Get("Content-Type")
		if contentType != "" && !strings.HasPrefix(contentType, "application/json") {
			return nil
		}

		body, err := io.ReadAll(httpReq.Body)
		if err != nil {
			return errorx.New(errorx.BadRequest, "Cannot read the request body")
		}

		if len(body) == 0 {
			return nil
		}

		if err := json.Unmarshal(body, req); err != nil {
			return errorx.New(errorx.BadRequest, "Cannot parse the request body")
		}

		return nil
	}

	return nil
}

func bindQuery(httpReq *http.Request, req any) error {
	v := reflect.ValueOf(req).Elem()
	for i := 0; i < v.NumField(); i++ {
		name := v.Type().Field(i).Tag.Get("json")
		queryVal := httpReq.URL.Query().Get(name)
		if queryVal == "" {
			continue
		}

		pointer := v.Field(i).Addr().Interface()
		switch v.Field(i).Kind() {
		case reflect.String:
			*pointer.(*string) = queryVal

		case reflect.Int:
			val, err := strconv.Atoi(queryVal)
			if err != nil {
				return errorx.New(errorx.BadRequest, "Invalid integer field %s", name)
			}

			*pointer.(*int) = val

		case reflect.Int64:
			val, err := strconv.ParseInt(queryVal, 10, 64)
			if err != nil {
				return errorx.New(errorx.BadRequest, "Invalid integer field %s", name)
			}

			*pointer.(*int64) = val

		case reflect.Bool:
			val, err := strconv.ParseBool(queryVal)
			if err != nil {
				return errorx.New(errorx.BadRequest, "Invalid boolean field %s", name)
			}

			*pointer.(*bool) = val
		}
	}

	return nil
}
