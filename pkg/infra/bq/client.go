package bq

import (
	"context"
	"sync"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/m-mizutani/bqs"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secondbrain-app/secondbrain/pkg/domain/interfaces"
	"github.com/secondbrain-app/secondbrain/pkg/domain/model"
	"github.com/secondbrain-app/secondbrain/pkg/domain/types"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// Client exports activity records to a BigQuery table for analytics. The
// table is created from the record schema on first insert.
type Client struct {
	bqClient *bigquery.Client
	dataset  types.BQDatasetID
	tableID  types.BQTableID

	mu      sync.Mutex
	ensured bool
}

var _ interfaces.ActivitySink = (*Client)(nil)

func New(ctx context.Context, projectID types.GoogleProjectID, datasetID types.BQDatasetID, tableID types.BQTableID, options ...option.ClientOption) (*Client, error) {
	if projectID == "" || datasetID == "" || tableID == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "BigQuery project, dataset and table IDs are required",
			goerr.V("projectID", projectID),
			goerr.V("datasetID", datasetID),
			goerr.V("tableID", tableID),
		)
	}

	bqClient, err := bigquery.NewClient(ctx, projectID.String(), options...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create BigQuery client", goerr.V("projectID", projectID))
	}

	return &Client{
		bqClient: bqClient,
		dataset:  datasetID,
		tableID:  tableID,
	}, nil
}

// activityRecord is the exported row shape. Kept flat for easy querying.
type activityRecord struct {
	ID         string    `bigquery:"id"`
	UserID     string    `bigquery:"user_id"`
	Kind       string    `bigquery:"kind"`
	Detail     string    `bigquery:"detail"`
	OccurredAt time.Time `bigquery:"occurred_at"`
}

func (x *Client) Insert(ctx context.Context, activity *model.Activity) error {
	record := &activityRecord{
		ID:         string(activity.ID),
		UserID:     string(activity.UserID),
		Kind:       activity.Kind,
		Detail:     activity.Detail,
		OccurredAt: activity.OccurredAt,
	}

	if err := x.ensureTable(ctx, record); err != nil {
		return err
	}

	inserter := x.bqClient.Dataset(x.dataset.String()).Table(x.tableID.String()).Inserter()
	if err := inserter.Put(ctx, record); err != nil {
		return goerr.Wrap(err, "failed to insert activity record",
			goerr.V("dataset", x.dataset),
			goerr.V("table", x.tableID),
			goerr.V("activityID", activity.ID),
		)
	}

	return nil
}

func (x *Client) ensureTable(ctx context.Context, record any) error {
	x.mu.Lock()
	defer x.mu.Unlock()

	if x.ensured {
		return nil
	}

	table := x.bqClient.Dataset(x.dataset.String()).Table(x.tableID.String())

	_, err := table.Metadata(ctx)
	if err == nil {
		x.ensured = true
		return nil
	}
	if gErr, ok := err.(*googleapi.Error); !ok || gErr.Code != 404 {
		return goerr.Wrap(err, "failed to get table metadata",
			goerr.V("dataset", x.dataset),
			goerr.V("table", x.tableID),
		)
	}

	schema, err := bqs.Infer(record)
	if err != nil {
		return goerr.Wrap(err, "failed to infer activity schema")
	}

	if err := table.Create(ctx, &bigquery.TableMetadata{Schema: schema}); err != nil {
		return goerr.Wrap(err, "failed to create activity table",
			goerr.V("dataset", x.dataset),
			goerr.V("table", x.tableID),
		)
	}

	x.ensured = true
	return nil
}
