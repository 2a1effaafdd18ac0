package workflows

import (
	"fmt"

	"github.com/gofood/dashboard/api"
	"github.com/gofood/dashboard/proto"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
)

type FoodCatalogInput struct {
	State *FoodCatalogState
}

type FoodCatalogState struct {
	NextID int64
	Plates []api.FoodPlate
}

// NewFoodCatalogState picks up the state carried over a continue-as-new, or
// starts an empty catalog.
func NewFoodCatalogState(input *FoodCatalogInput) *FoodCatalogState {
	if input.State == nil {
		input.State = &FoodCatalogState{NextID: 1}
	}
	if input.State.NextID < 1 {
		input.State.NextID = 1
	}

	return input.State
}

func (s *FoodCatalogState) indexOf(id int64) int {
	for i := range s.Plates {
		if s.Plates[i].ID == id {
			return i
		}
	}
	return -1
}

func notFound(id int64) error {
	return temporal.NewApplicationError(fmt.Sprintf("food plate %d not found", id), proto.FoodPlateNotFoundError)
}

func (s *FoodCatalogState) create(plate api.FoodPlate) (api.FoodPlate, error) {
	if err := plate.Input().Validate(); err != nil {
		return api.FoodPlate{}, temporal.NewNonRetryableApplicationError(err.Error(), "InvalidFoodPlate", err)
	}

	plate.ID = s.NextID
	s.NextID++
	s.Plates = append(s.Plates, plate)

	return plate, nil
}

func (s *FoodCatalogState) update(plate api.FoodPlate) (api.FoodPlate, error) {
	if err := plate.Input().Validate(); err != nil {
		return api.FoodPlate{}, temporal.NewNonRetryableApplicationError(err.Error(), "InvalidFoodPlate", err)
	}

	i := s.indexOf(plate.ID)
	if i < 0 {
		return api.FoodPlate{}, notFound(plate.ID)
	}
	s.Plates[i] = plate

	return plate, nil
}

func (s *FoodCatalogState) delete(id int64) error {
	i := s.indexOf(id)
	if i < 0 {
		return notFound(id)
	}
	s.Plates = append(s.Plates[:i], s.Plates[i+1:]...)

	return nil
}

func (s *FoodCatalogState) registerHandlers(ctx workflow.Context) error {
	err := workflow.SetQueryHandler(ctx, proto.FoodPlatesQuery, func() ([]api.FoodPlate, error) {
		return s.Plates, nil
	})
	if err != nil {
		return err
	}

	err = workflow.SetUpdateHandlerWithOptions(ctx, proto.FoodPlateCreateUpdate, func(ctx workflow.Context, plate api.FoodPlate) (api.FoodPlate, error) {
		return s.create(plate)
	}, workflow.UpdateHandlerOptions{})
	if err != nil {
		return err
	}

	err = workflow.SetUpdateHandlerWithOptions(ctx, proto.FoodPlateUpdateUpdate, func(ctx workflow.Context, plate api.FoodPlate) (api.FoodPlate, error) {
		return s.update(plate)
	}, workflow.UpdateHandlerOptions{})
	if err != nil {
		return err
	}

	return workflow.SetUpdateHandlerWithOptions(ctx, proto.FoodPlateDeleteUpdate, func(ctx workflow.Context, id int64) error {
		return s.delete(id)
	}, workflow.UpdateHandlerOptions{})
}

// FoodCatalog is a long running workflow owning the list of food plates.
// Reads are queries, mutations are updates.
func FoodCatalog(ctx workflow.Context, input *FoodCatalogInput) error {
	state := NewFoodCatalogState(input)

	err := state.registerHandlers(ctx)
	if err != nil {
		return err
	}

	err = workflow.Await(ctx, func() bool {
		return workflow.GetInfo(ctx).GetContinueAsNewSuggested()
	})
	if err != nil {
		return err
	}

	input.State = state

	return workflow.NewContinueAsNewError(ctx, FoodCatalog, input)
}
