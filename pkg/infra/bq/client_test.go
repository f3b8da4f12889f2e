package bq_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secondbrain-app/secondbrain/pkg/domain/model"
	"github.com/secondbrain-app/secondbrain/pkg/domain/types"
	"github.com/secondbrain-app/secondbrain/pkg/infra/bq"
	"github.com/secondbrain-app/secondbrain/pkg/utils/testutil"
)

func TestNewInvalidConfig(t *testing.T) {
	ctx := context.Background()

	_, err := bq.New(ctx, "", "dataset", "table")
	gt.Error(t, err)

	_, err = bq.New(ctx, "project", "", "table")
	gt.Error(t, err)

	_, err = bq.New(ctx, "project", "dataset", "")
	gt.Error(t, err)
}

func TestInsertActivity(t *testing.T) {
	projectID := testutil.GetEnvOrSkip(t, "TEST_BIGQUERY_PROJECT_ID")
	datasetID := testutil.GetEnvOrSkip(t, "TEST_BIGQUERY_DATASET_ID")

	ctx := context.Background()

	tblName := types.BQTableID(time.Now().Format("activity_test_20060102_150405"))
	client, err := bq.New(ctx, types.GoogleProjectID(projectID), types.BQDatasetID(datasetID), tblName)
	gt.NoError(t, err)

	activity := &model.Activity{
		ID:         types.NewActivityID(),
		UserID:     "test-user",
		Kind:       "note.created",
		Detail:     "integration test",
		OccurredAt: time.Now(),
	}

	// First insert creates the table, second uses the existing one
	gt.NoError(t, client.Insert(ctx, activity))

	activity.ID = types.NewActivityID()
	gt.NoError(t, client.Insert(ctx, activity))
}
