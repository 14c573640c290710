package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type ReturnStatus string

const (
	ReturnOpened     ReturnStatus = "Opened"
	ReturnInProgress ReturnStatus = "In Progress"
	ReturnResolved   ReturnStatus = "Resolved"
	ReturnClosed     ReturnStatus = "Closed"
)

var ReturnStatuses = []ReturnStatus{ReturnOpened, ReturnInProgress, ReturnResolved, ReturnClosed}

// OpenReturnStatuses are cases that are still being worked.
var OpenReturnStatuses = []ReturnStatus{ReturnOpened, ReturnInProgress}

// ReturnCase is a return or dispute opened against an order.
type ReturnCase struct {
	Record
	OrderID      string          `json:"order_id" gorm:"column:order_id;size:128;index"`
	Reason       string          `json:"reason" gorm:"column:reason"`
	Status       ReturnStatus    `json:"status" gorm:"column:status;size:32;index"`
	DateOpened   time.Time       `json:"date_opened" gorm:"column:date_opened;type:date"`
	ExpectedLoss decimal.Decimal `json:"expected_loss" gorm:"column:expected_loss;type:numeric(12,2);not null"`
	Notes        string          `json:"notes" gorm:"column:notes;type:text"`
}

func (ReturnCase) TableName() string {
	return "returns"
}
