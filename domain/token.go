package domain

import (
	"time"
)

type CarrierToken struct {
	Token     string
	ExpiresAt time.Time
}
