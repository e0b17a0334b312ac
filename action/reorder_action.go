package action

import (
	"context"
	"fmt"

	"github.com/bakerhub/automation/gateway"
	"github.com/bakerhub/automation/model"
)

var _ Action = new(reorderAction)

type reorderAction struct {
	baseAction
	procurement gateway.ProcurementClient
}

func NewReorderAction(procurement gateway.ProcurementClient) *reorderAction {
	return &reorderAction{
		baseAction:  baseAction{actType: model.ACTION_REORDER_INVENTORY},
		procurement: procurement,
	}
}

func (a *reorderAction) Execute(ctx context.Context, params map[string]any, event model.Event) (string, error) {
	materialId, err := stringParam(params, "material_id")
	if err != nil {
		return "", err
	}
	quantity, err := numberParam(params, "quantity")
	if err != nil {
		return "", err
	}
	supplierId, err := stringParam(params, "supplier_id")
	if err != nil {
		return "", err
	}
	order := gateway.PurchaseOrder{
		MaterialID: materialId,
		Quantity:   quantity,
		SupplierID: supplierId,
	}
	if err := a.procurement.CreatePurchaseOrder(ctx, order); err != nil {
		return "", err
	}
	return fmt.Sprintf("purchase order created for %v of %s", quantity, materialId), nil
}
