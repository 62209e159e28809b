package transport

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseRequest(t *testing.T) {
	req, err := ParseRequest(strings.NewReader(`{"jsonrpc":"2.0","method":"users.get","params":{"id":"u1"},"id":1}`))
	require.NoError(t, err)
	require.Equal(t, "users.get", req.Method)
	require.JSONEq(t, `{"id":"u1"}`, string(req.Params))
}

func TestParseRequest_Invalid(t *testing.T) {
	cases := map[string]string{
		"garbage":       `not json`,
		"wrong version": `{"jsonrpc":"1.0","method":"users.get"}`,
		"no method":     `{"jsonrpc":"2.0"}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseRequest(strings.NewReader(body))
			require.Error(t, err)
		})
	}
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, float64(3), &Error{
		Code:    ErrNotFoundCode,
		Message: "user not found",
		Data:    ErrorData{Kind: KindNotFound},
	})

	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.JSONEq(t,
		`{"jsonrpc":"2.0","error":{"code":-32001,"message":"user not found","data":{"kind":"not_found"}},"id":3}`,
		rec.Body.String())
}

func TestWriteResult(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteResult(rec, float64(1), OKResponse{OK: true})

	require.JSONEq(t, `{"jsonrpc":"2.0","result":{"ok":true},"id":1}`, rec.Body.String())
}
