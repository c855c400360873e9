package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Conference struct {
	ID          int             `json:"id"`
	Topic       string          `json:"topic"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
	TimeStart   string          `json:"time_start"`
	TimeEnd     string          `json:"time_end"`
	Capacity    int             `json:"capacity"`
	Price       decimal.Decimal `json:"price"`
}
