package mongo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/chukwumela909/Web-App-sub001/internal/domain/entity"
)

func TestActivityDoc_BSON(t *testing.T) {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	in := &entity.StaffActivity{
		ID: "a1", TenantID: "t1", StaffID: "s1", Action: "sale.create", Resource: "sale", ResourceID: "v1",
		Details: map[string]any{"total": "270.00"}, CreatedAt: at,
	}

	raw, err := bson.Marshal(toDoc(in))
	require.NoError(t, err)

	var m bson.M
	require.NoError(t, bson.Unmarshal(raw, &m))
	assert.Equal(t, "a1", m["_id"])
	assert.Equal(t, "t1", m["tenantId"])
	assert.NotContains(t, m, "userId", "vacío se omite")

	var back activityDoc
	require.NoError(t, bson.Unmarshal(raw, &back))
	got := back.toEntity()
	assert.Equal(t, in.Action, got.Action)
	assert.Equal(t, "270.00", got.Details["total"])
	assert.True(t, got.CreatedAt.Equal(at))
}

func TestListFilter(t *testing.T) {
	assert.Equal(t, bson.M{"tenantId": "t1"}, listFilter("t1", ""))
	assert.Equal(t, bson.M{"tenantId": "t1", "staffId": "s1"}, listFilter("t1", "s1"))
}
