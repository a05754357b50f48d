package httpx_test

import (
	"net/http/httptest"
	"testing"

	"github.com/Gunvolt24/riskgate/pkg/httpx"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func TestParseUUIDParam(t *testing.T) {
	gin.SetMode(gin.TestMode)

	want := uuid.New()

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Params = gin.Params{{Key: "id", Value: want.String()}}

	got, ok := httpx.ParseUUIDParam(c, "id")
	if !ok || got != want {
		t.Fatalf("got=%v ok=%v, want %v/true", got, ok, want)
	}
}

func TestParseUUIDParam_Invalid(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Params = gin.Params{{Key: "id", Value: "not-a-uuid"}}

	if _, ok := httpx.ParseUUIDParam(c, "id"); ok {
		t.Fatalf("expected failure for malformed uuid")
	}
}

func TestParseUUIDParam_Missing(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	if _, ok := httpx.ParseUUIDParam(c, "id"); ok {
		t.Fatalf("expected failure for missing param")
	}
}
