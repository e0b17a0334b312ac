package gateway

import "context"

// The automation engine dispatches actions to external collaborators. Each
// collaborator call is expected to honor ctx cancellation; the dispatcher
// bounds every call with a per-action timeout.

type Notification struct {
	Title   string         `json:"title"`
	Message string         `json:"message"`
	Type    string         `json:"type,omitempty"`
	Data    map[string]any `json:"data,omitempty"`
}

type PurchaseOrder struct {
	MaterialID string  `json:"material_id"`
	Quantity   float64 `json:"quantity"`
	SupplierID string  `json:"supplier_id"`
}

type Task struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type NotificationSender interface {
	SendNotification(ctx context.Context, n Notification) error
}

type ProcurementClient interface {
	CreatePurchaseOrder(ctx context.Context, order PurchaseOrder) error
}

type StatusUpdater interface {
	UpdateStatus(ctx context.Context, entityId string, newStatus string) error
}

type WhatsAppSender interface {
	SendMessage(ctx context.Context, phone string, message string) error
}

type TaskCreator interface {
	CreateTask(ctx context.Context, task Task) error
}

// Gateways bundles the collaborators the builtin actions call.
type Gateways struct {
	Notifications NotificationSender
	Procurement   ProcurementClient
	Status        StatusUpdater
	WhatsApp      WhatsAppSender
	Tasks         TaskCreator
}
