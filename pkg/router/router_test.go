package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fanpassport/backend/config"
	"github.com/fanpassport/backend/pkg/errorx"
	"github.com/fanpassport/backend/pkg/logger"
	"github.com/stretchr/testify/require"
)

type echoRequest struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type echoResponse struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func newTestRouter() *Router {
	return New(config.Configs{}, logger.NewLogger(logger.SILENCE))
}

func echo(ctx context.Context, req *echoRequest) (*echoResponse, error) {
	return &echoResponse{Name: req.Name, Count: req.Count}, nil
}

func Test_Router_bindQuery(t *testing.T) {
	r := newTestRouter()
	GET(r, "/echo", echo)

	server := httptest.NewServer(r.Handler())
	defer server.Close()

	resp, err := http.Get(server.URL + "/echo?name=abc&count=3")
	require.NoError(t, err)
	defer resp.Body.Close()

	var envelope struct {
		Code int64        `json:"code"`
		Data echoResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	require.Equal(t, int64(0), envelope.Code)
	require.Equal(t, echoResponse{Name: "abc", Count: 3}, envelope.Data)
}

func Test_Router_bindBody(t *testing.T) {
	r := newTestRouter()
	POST(r, "/echo", echo)

	server := httptest.NewServer(r.Handler())
	defer server.Close()

	resp, err := http.Post(server.URL+"/echo", "application/json",
		strings.NewReader(`{"name":"abc","count":7}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	var envelope struct {
		Code int64        `json:"code"`
		Data echoResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	require.Equal(t, echoResponse{Name: "abc", Count: 7}, envelope.Data)
}

func Test_Router_errorEnvelope(t *testing.T) {
	r := newTestRouter()
	GET(r, "/fail", func(ctx context.Context, req *echoRequest) (*echoResponse, error) {
		return nil, errorx.New(errorx.NotFound, "Not found experience")
	})

	server := httptest.NewServer(r.Handler())
	defer server.Close()

	resp, err := http.Get(server.URL + "/fail")
	require.NoError(t, err)
	defer resp.Body.Close()

	var envelope struct {
		Code  int64  `json:"code"`
		Error string `json:"error"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	require.Equal(t, int64(errorx.NotFound), envelope.Code)
	require.Equal(t, "Not found experience", envelope.Error)
}

func Test_Router_branchMiddleware(t *testing.T) {
	r := newTestRouter()
	GET(r, "/open", echo)

	branch := r.Branch()
	branch.Before(func(ctx context.Context) (context.Context, error) {
		return nil, errorx.New(errorx.Unauthenticated, "You need to authenticate before")
	})
	GET(branch, "/closed", echo)

	server := httptest.NewServer(r.Handler())
	defer server.Close()

	resp, err := http.Get(server.URL + "/open")
	require.NoError(t, err)
	resp.Body.Close()

	resp, err = http.Get(server.URL + "/closed")
	require.NoError(t, err)
	defer resp.Body.Close()

	var envelope struct {
		Code int64 `json:"code"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	require.Equal(t, int64(errorx.Unauthenticated), envelope.Code)
}

func Test_Router_methodMismatch(t *testing.T) {
	r := newTestRouter()
	POST(r, "/echo", echo)

	server := httptest.NewServer(r.Handler())
	defer server.Close()

	resp, err := http.Get(server.URL + "/echo")
	require.NoError(t, err)
	defer resp.Body.Close()

	var envelope struct {
		Code int64 `json:"code"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	require.Equal(t, int64(errorx.BadRequest), envelope.Code)
}
