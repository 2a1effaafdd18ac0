package proto

const FoodCatalogWorkflowID = "food-catalog"
const FoodCatalogWorkflowType = "FoodCatalog"

const FoodPlatesQuery = "food-plates"
const FoodPlateCreateUpdate = "food-plate-create"
const FoodPlateUpdateUpdate = "food-plate-update"
const FoodPlateDeleteUpdate = "food-plate-delete"

// FoodPlateNotFoundError is the application error type used when an update
// names a plate the catalog does not hold.
const FoodPlateNotFoundError = "FoodPlateNotFound"
