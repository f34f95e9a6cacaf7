package tui

import (
	"errors"

	"github.com/jask/cupcake/internal/database/repository"
)

var errNoOrderStore = errors.New("no order store configured")

type (
	flavorChangedMsg string
	pickupChangedMsg string
	cancelOrderMsg   struct{}
	nextMsg          struct{ from screenID }
	orderSentMsg     struct{ order repository.Order }
	errMsg           struct{ err error }
)
