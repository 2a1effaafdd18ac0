package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofood/dashboard/api"
	"github.com/gofood/dashboard/proto"
	"github.com/gofood/dashboard/workflows"
	enumspb "go.temporal.io/api/enums/v1"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/temporal"
)

// Temporal keeps food plates in the FoodCatalog workflow.
type Temporal struct {
	client    client.Client
	taskQueue string
}

func NewTemporal(c client.Client, taskQueue string) *Temporal {
	return &Temporal{client: c, taskQueue: taskQueue}
}

// Start makes sure the catalog workflow is running. An already running
// catalog is reused.
func (t *Temporal) Start(ctx context.Context) error {
	_, err := t.client.ExecuteWorkflow(
		ctx,
		client.StartWorkflowOptions{
			ID:                    proto.FoodCatalogWorkflowID,
			TaskQueue:             t.taskQueue,
			WorkflowIDReusePolicy: enumspb.WORKFLOW_ID_REUSE_POLICY_ALLOW_DUPLICATE,
		},
		proto.FoodCatalogWorkflowType,
		&workflows.FoodCatalogInput{},
	)
	if err != nil {
		return fmt.Errorf("unable to start food catalog: %w", err)
	}

	return nil
}

func (t *Temporal) List(ctx context.Context) ([]api.FoodPlate, error) {
	v, err := t.client.QueryWorkflow(ctx, proto.FoodCatalogWorkflowID, "", proto.FoodPlatesQuery)
	if err != nil {
		return nil, err
	}

	var plates []api.FoodPlate
	err = v.Get(&plates)
	if err != nil {
		return nil, err
	}

	return plates, nil
}

func (t *Temporal) Create(ctx context.Context, plate api.FoodPlate) (api.FoodPlate, error) {
	plate.ID = 0
	return t.update(ctx, proto.FoodPlateCreateUpdate, plate)
}

func (t *Temporal) Update(ctx context.Context, plate api.FoodPlate) (api.FoodPlate, error) {
	return t.update(ctx, proto.FoodPlateUpdateUpdate, plate)
}

func (t *Temporal) Delete(ctx context.Context, id int64) error {
	h, err := t.client.UpdateWorkflow(ctx, proto.FoodCatalogWorkflowID, "", proto.FoodPlateDeleteUpdate, id)
	if err != nil {
		return mapError(err)
	}

	return mapError(h.Get(ctx, nil))
}

func (t *Temporal) update(ctx context.Context, name string, plate api.FoodPlate) (api.FoodPlate, error) {
	h, err := t.client.UpdateWorkflow(ctx, proto.FoodCatalogWorkflowID, "", name, plate)
	if err != nil {
		return api.FoodPlate{}, mapError(err)
	}

	var result api.FoodPlate
	err = h.Get(ctx, &result)
	if err != nil {
		return api.FoodPlate{}, mapError(err)
	}

	return result, nil
}

func mapError(err error) error {
	var appErr *temporal.ApplicationError
	if errors.As(err, &appErr) && appErr.Type() == proto.FoodPlateNotFoundError {
		return fmt.Errorf("%w: %s", api.ErrNotFound, appErr.Error())
	}

	return err
}
