package model

import "time"

type ShipmentStatus string

const (
	ShipmentPendingLabel ShipmentStatus = "Pending Label"
	ShipmentLabelCreated ShipmentStatus = "Label Created"
	ShipmentShipped      ShipmentStatus = "Shipped"
	ShipmentDelivered    ShipmentStatus = "Delivered"
	ShipmentCancelled    ShipmentStatus = "Cancelled"
)

var ShipmentStatuses = []ShipmentStatus{
	ShipmentPendingLabel, ShipmentLabelCreated, ShipmentShipped, ShipmentDelivered, ShipmentCancelled,
}

// PendingShipmentStatuses are the states that still need action from the seller.
var PendingShipmentStatuses = []ShipmentStatus{ShipmentPendingLabel, ShipmentLabelCreated}

// Shipment tracks the dispatch of one sale.
type Shipment struct {
	Record
	SaleID           *string        `json:"sale_id" gorm:"column:sale_id;size:36;index"`
	Sale             *Sale          `json:"sale,omitempty" gorm:"foreignKey:SaleID"`
	Status           ShipmentStatus `json:"status" gorm:"column:status;size:32;index"`
	TrackingNumber   string         `json:"tracking_number" gorm:"column:tracking_number"`
	Carrier          string         `json:"carrier" gorm:"column:carrier"`
	DispatchDeadline *time.Time     `json:"dispatch_deadline" gorm:"column:dispatch_deadline;type:date"`
	ShippedDate      *time.Time     `json:"shipped_date" gorm:"column:shipped_date;type:date"`
	DeliveredDate    *time.Time     `json:"delivered_date" gorm:"column:delivered_date;type:date"`
	Notes            string         `json:"notes" gorm:"column:notes;type:text"`
}

func (Shipment) TableName() string {
	return "shipments"
}
