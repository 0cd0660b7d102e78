package consumer

import (
	"context"
	"encoding/json"
	"log"

	"github.com/google/uuid"

	"go-market-api/internal/order"
)

func handleOrderPlaced(ctx context.Context, payload []byte, orderService order.Service) error {
	var data order.OrderPlacedPayload
	if err := json.Unmarshal(payload, &data); err != nil {
		return err
	}

	orderID, err := uuid.Parse(data.OrderID)
	if err != nil {
		return err
	}

	log.Printf("[CONSUMER] Notifying vendor for order: %s", data.OrderNumber)

	if err := orderService.NotifyVendorOrderPlaced(ctx, orderID); err != nil {
		return err
	}

	return nil
}
