package gateway

import (
	"context"

	"github.com/bakerhub/automation/logger"
	"go.uber.org/zap"
)

// LogGateway implements every collaborator by logging the request. It backs
// the actions whose real side effects live outside this service, and serves
// as the default when no gateway endpoint is configured.
type LogGateway struct{}

var _ NotificationSender = LogGateway{}
var _ ProcurementClient = LogGateway{}
var _ StatusUpdater = LogGateway{}
var _ WhatsAppSender = LogGateway{}
var _ TaskCreator = LogGateway{}

func (LogGateway) SendNotification(ctx context.Context, n Notification) error {
	logger.Info("sending notification", zap.String("title", n.Title), zap.String("message", n.Message))
	return nil
}

func (LogGateway) CreatePurchaseOrder(ctx context.Context, order PurchaseOrder) error {
	logger.Info("creating purchase order", zap.String("material", order.MaterialID), zap.Float64("quantity", order.Quantity), zap.String("supplier", order.SupplierID))
	return nil
}

func (LogGateway) UpdateStatus(ctx context.Context, entityId string, newStatus string) error {
	logger.Info("updating status", zap.String("entity", entityId), zap.String("status", newStatus))
	return nil
}

func (LogGateway) SendMessage(ctx context.Context, phone string, message string) error {
	logger.Info("sending whatsapp message", zap.String("phone", phone), zap.String("message", message))
	return nil
}

func (LogGateway) CreateTask(ctx context.Context, task Task) error {
	logger.Info("creating task", zap.String("title", task.Title))
	return nil
}

// NewLogGateways returns a gateway set backed entirely by logging.
func NewLogGateways() Gateways {
	lg := LogGateway{}
	return Gateways{
		Notifications: lg,
		Procurement:   lg,
		Status:        lg,
		WhatsApp:      lg,
		Tasks:         lg,
	}
}
