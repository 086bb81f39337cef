package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"staffrecords/src/infra/logger"
)

func TestSchemaService_Order(t *testing.T) {
	var calls []string
	svc := NewSchemaService(logger.Discard(),
		recordingSchema{name: "departments", calls: &calls},
		recordingSchema{name: "employees", calls: &calls},
		recordingSchema{name: "reviews", calls: &calls},
	)
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx))
	require.NoError(t, svc.Drop(ctx))

	assert.Equal(t, []string{
		"create departments", "create employees", "create reviews",
		"drop reviews", "drop employees", "drop departments",
	}, calls)
}

func TestSchemaService_StopsOnError(t *testing.T) {
	var calls []string
	boom := errors.New("permission denied")
	svc := NewSchemaService(logger.Discard(),
		recordingSchema{name: "departments", calls: &calls, err: boom},
		recordingSchema{name: "employees", calls: &calls},
	)

	err := svc.Create(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"create departments"}, calls)
}

func TestHealthService_Check(t *testing.T) {
	ctx := context.Background()

	healthy := new(MockHealthChecker)
	healthy.On("Health", mock.Anything).Return(nil)
	status := NewHealthService(healthy, logger.Discard()).Check(ctx)
	assert.Equal(t, "ok", status.Status)
	assert.Equal(t, "healthy", status.Components["database"].Status)

	down := new(MockHealthChecker)
	down.On("Health", mock.Anything).Return(errors.New("connection refused"))
	status = NewHealthService(down, logger.Discard()).Check(ctx)
	assert.Equal(t, "degraded", status.Status)
	assert.Equal(t, "connection refused", status.Components["database"].Message)
}
