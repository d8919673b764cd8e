package result

//go:generate go-union -p oneof result.go

import (
	"time"
)

type oneofResult struct {
	Value   string
	Failure error
	Timeout time.Duration
	Pending struct{}
}
