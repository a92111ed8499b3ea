package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/chukwumela909/Web-App-sub001/internal/domain/entity"
	"github.com/chukwumela909/Web-App-sub001/internal/domain/repository"
)

var _ repository.StaffActivityRepository = (*ActivityRepo)(nil)

// activityDoc documento de staff_activity_logs.
type activityDoc struct {
	ID         string         `bson:"_id"`
	TenantID   string         `bson:"tenantId"`
	StaffID    string         `bson:"staffId,omitempty"`
	UserID     string         `bson:"userId,omitempty"`
	Action     string         `bson:"action"`
	Resource   string         `bson:"resource"`
	ResourceID string         `bson:"resourceId,omitempty"`
	Details    map[string]any `bson:"details,omitempty"`
	CreatedAt  time.Time      `bson:"createdAt"`
}

func toDoc(a *entity.StaffActivity) activityDoc {
	return activityDoc{
		ID:         a.ID,
		TenantID:   a.TenantID,
		StaffID:    a.StaffID,
		UserID:     a.UserID,
		Action:     a.Action,
		Resource:   a.Resource,
		ResourceID: a.ResourceID,
		Details:    a.Details,
		CreatedAt:  a.CreatedAt.UTC(),
	}
}

func (d activityDoc) toEntity() *entity.StaffActivity {
	return &entity.StaffActivity{
		ID:         d.ID,
		TenantID:   d.TenantID,
		StaffID:    d.StaffID,
		UserID:     d.UserID,
		Action:     d.Action,
		Resource:   d.Resource,
		ResourceID: d.ResourceID,
		Details:    d.Details,
		CreatedAt:  d.CreatedAt,
	}
}

// ActivityRepo bitácora de auditoría sobre una colección MongoDB.
type ActivityRepo struct {
	coll *mongo.Collection
}

// NewActivityRepository construye el adaptador sobre la base indicada.
func NewActivityRepository(db *mongo.Database) *ActivityRepo {
	return &ActivityRepo{coll: db.Collection(ActivityCollection)}
}

// Append inserta un registro. La bitácora sólo crece.
func (r *ActivityRepo) Append(ctx context.Context, a *entity.StaffActivity) error {
	if _, err := r.coll.InsertOne(ctx, toDoc(a)); err != nil {
		return fmt.Errorf("mongo: insertar actividad: %w", err)
	}
	return nil
}

// List registros del tenant (opcionalmente de un miembro del personal), del más reciente al más antiguo.
func (r *ActivityRepo) List(ctx context.Context, tenantID, staffID string, limit int) ([]*entity.StaffActivity, error) {
	cur, err := r.coll.Find(ctx, listFilter(tenantID, staffID),
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(int64(limit)))
	if err != nil {
		return nil, fmt.Errorf("mongo: listar actividad: %w", err)
	}
	defer cur.Close(ctx)

	var docs []activityDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("mongo: decodificar actividad: %w", err)
	}
	out := make([]*entity.StaffActivity, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toEntity())
	}
	return out, nil
}

func listFilter(tenantID, staffID string) bson.M {
	f := bson.M{"tenantId": tenantID}
	if staffID != "" {
		f["staffId"] = staffID
	}
	return f
}
