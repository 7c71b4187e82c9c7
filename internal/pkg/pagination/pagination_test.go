package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func ctxWithQuery(query string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+query, nil)
	return c
}

func TestParseDefaults(t *testing.T) {
	p := Parse(ctxWithQuery(""), 20)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.Limit)
	assert.Equal(t, 0, p.Offset())
}

func TestParseClampsLimit(t *testing.T) {
	p := Parse(ctxWithQuery("page=3&limit=500"), 20)
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 100, p.Limit)
	assert.Equal(t, 200, p.Offset())
}

func TestParseIgnoresGarbage(t *testing.T) {
	p := Parse(ctxWithQuery("page=-1&limit=abc"), 20)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.Limit)
}

func TestNewMeta(t *testing.T) {
	m := NewMeta(41, Params{Page: 2, Limit: 20})
	assert.Equal(t, int64(41), m.Total)
	assert.Equal(t, int64(3), m.Pages)

	m = NewMeta(40, Params{Page: 1, Limit: 20})
	assert.Equal(t, int64(2), m.Pages)

	m = NewMeta(0, Params{Page: 1, Limit: 20})
	assert.Equal(t, int64(0), m.Pages)
}
