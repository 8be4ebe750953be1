package shared

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phrazzld/contacts-api/internal/domain"
)

func TestPrincipal(t *testing.T) {
	_, ok := Principal(context.Background())
	assert.False(t, ok)

	_, ok = Principal(WithPrincipal(context.Background(), nil))
	assert.False(t, ok, "a nil user is not a principal")

	eko := &domain.User{Username: "eko"}
	got, ok := Principal(WithPrincipal(context.Background(), eko))
	assert.True(t, ok)
	assert.Same(t, eko, got)
}

func TestTraceID(t *testing.T) {
	assert.Empty(t, GetTraceID(context.Background()))

	ctx := SetTraceID(context.Background())
	assert.Len(t, GetTraceID(ctx), 2*TraceIDLength)
	assert.NotEqual(t, GetTraceID(ctx), GetTraceID(SetTraceID(context.Background())))
}
