package client

import (
	"time"

	"github.com/Korikanas/ncart/src/order/domain/entity"

	"github.com/shopspring/decimal"
)

// money serializa como número JSON y acepta número o string al leer
type money struct {
	decimal.Decimal
}

func (m money) MarshalJSON() ([]byte, error) {
	return []byte(m.Decimal.String()), nil
}

// wireLineItem representa un item tal como lo maneja el backend.
// Al leer se aceptan _id/productId, quantity e img como alternativas.
type wireLineItem struct {
	ID        string `json:"id,omitempty"`
	MongoID   string `json:"_id,omitempty"`
	ProductID string `json:"productId,omitempty"`
	Name      string `json:"name"`
	Price     money  `json:"price"`
	Qty       int    `json:"qty"`
	Quantity  int    `json:"quantity,omitempty"`
	Image     string `json:"image,omitempty"`
	Img       string `json:"img,omitempty"`
}

type wireStep struct {
	Name      string     `json:"name"`
	Completed bool       `json:"completed"`
	Date      *time.Time `json:"date"`
}

type wireTracking struct {
	Status string     `json:"status"`
	Steps  []wireStep `json:"steps"`
}

type wireCancellation struct {
	Reason      string     `json:"reason"`
	Comment     string     `json:"comment,omitempty"`
	CancelledAt *time.Time `json:"cancelledAt,omitempty"`
}

// wireOrder orden tal como la envía y devuelve POST/GET /orders
type wireOrder struct {
	ID                 string            `json:"id,omitempty"`
	MongoID            string            `json:"_id,omitempty"`
	Date               *time.Time        `json:"date,omitempty"`
	CreatedAt          *time.Time        `json:"createdAt,omitempty"`
	Items              []wireLineItem    `json:"items"`
	Total              money             `json:"total"`
	Status             string            `json:"status"`
	Tracking           *wireTracking     `json:"tracking,omitempty"`
	PaymentMethod      string            `json:"paymentMethod"`
	Address            string            `json:"address"`
	CancellationReason *wireCancellation `json:"cancellationReason,omitempty"`
}

// wireStatusUpdate body de PUT /orders/{id}
type wireStatusUpdate struct {
	Status             string            `json:"status"`
	Tracking           wireTracking      `json:"tracking"`
	CancellationReason *wireCancellation `json:"cancellationReason,omitempty"`
}

// toWireOrder arma el body de creación a partir de la orden local
func toWireOrder(o *entity.Order) wireOrder {
	items := make([]wireLineItem, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, wireLineItem{
			ID:    item.ProductID,
			Name:  item.Name,
			Price: money{item.UnitPrice},
			Qty:   item.Quantity,
			Image: item.ImageRef,
		})
	}
	createdAt := o.CreatedAt
	tracking := toWireTracking(o.Tracking)

	return wireOrder{
		ID:            o.ID,
		Date:          &createdAt,
		Items:         items,
		Total:         money{o.Total},
		Status:        string(o.Status),
		Tracking:      &tracking,
		PaymentMethod: o.PaymentMethod,
		Address:       o.ShippingAddress,
	}
}

// toWireStatusUpdate arma el body de actualización de estado
func toWireStatusUpdate(o *entity.Order) wireStatusUpdate {
	update := wireStatusUpdate{
		Status:   string(o.Status),
		Tracking: toWireTracking(o.Tracking),
	}
	if o.Status == entity.OrderStatusCancelled && o.Cancellation != nil {
		cancelledAt := o.Cancellation.CancelledAt
		update.CancellationReason = &wireCancellation{
			Reason:      string(o.Cancellation.Reason),
			Comment:     o.Cancellation.Comment,
			CancelledAt: &cancelledAt,
		}
	}
	return update
}

func toWireTracking(t entity.Tracking) wireTracking {
	steps := make([]wireStep, 0, len(t.Steps))
	for _, s := range t.Steps {
		ws := wireStep{Name: s.Name, Completed: s.Completed}
		if s.CompletedAt != nil {
			at := *s.CompletedAt
			ws.Date = &at
		}
		steps = append(steps, ws)
	}
	return wireTracking{Status: string(t.Status), Steps: steps}
}
