package httphandler

import (
	"github.com/gaze-network/dot721-indexer/core/indexer"
	"github.com/gaze-network/dot721-indexer/modules/dot721/datagateway"
)

// StatusProvider reports the progress of the block scanner.
type StatusProvider interface {
	Status() indexer.Status
}

type handler struct {
	dot721Dg datagateway.DOT721ReaderDataGateway
	scanner  StatusProvider
}

func New(datagateway datagateway.DOT721ReaderDataGateway, scanner StatusProvider) *handler {
	return &handler{
		dot721Dg: datagateway,
		scanner:  scanner,
	}
}
