package model

import "time"

// Sale is an append-only financial record used for reporting. It carries
// denormalized display strings rather than foreign keys: a package sale
// yields several future credit-funded bookings, none of which get a Sale
// of their own.
type Sale struct {
	Base
	ServiceName string    `json:"service_name"`
	ClientName  string    `json:"client_name"`
	Amount      float64   `json:"amount"`
	Date        time.Time `json:"date"`
}
