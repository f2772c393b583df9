package util

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"trainrec_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Log = zap.NewNop()
}

func record(write func(c *gin.Context)) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	write(c)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestSuccessEnvelope(t *testing.T) {
	w := record(func(c *gin.Context) {
		Success(c, gin.H{"id": 1})
	})

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	assert.True(t, resp.Success)
	assert.Empty(t, resp.Message)
	assert.NotNil(t, resp.Data)
}

func TestValidationErrorEnvelope(t *testing.T) {
	w := record(func(c *gin.Context) {
		ValidationError(c, "email is required")
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decode(t, w)
	assert.False(t, resp.Success)
	assert.Equal(t, []string{"email is required"}, resp.Errors)
}

func TestStoreError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"missing row", gorm.ErrRecordNotFound, http.StatusNotFound},
		{"duplicate key", gorm.ErrDuplicatedKey, http.StatusBadRequest},
		{"foreign key violation", gorm.ErrForeignKeyViolated, http.StatusBadRequest},
		{"anything else", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := record(func(c *gin.Context) {
				StoreError(c, tc.err)
			})
			assert.Equal(t, tc.code, w.Code)
			assert.False(t, decode(t, w).Success)
		})
	}
}

func TestStoreError_WrappedErrors(t *testing.T) {
	w := record(func(c *gin.Context) {
		StoreError(c, errors.Join(errors.New("context"), gorm.ErrRecordNotFound))
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
